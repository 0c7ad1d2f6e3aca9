package printers

import (
	"fmt"
	"io"
	"net/netip"

	"github.com/gookit/color"

	"github.com/rpollard00/tcpt/statistics"
)

// Colors used when printing information
var (
	colorSuccess    = color.LightGreen
	colorFailure    = color.Red
	colorStatistics = color.Yellow
	colorError      = color.Red
)

// ColorPrinter prints the same lines as PlainPrinter, colorized.
type ColorPrinter struct {
	opts options
}

type ColorPrinterOption = func(*ColorPrinter)

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{opts: defaultOptions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ColorPrinter) options() *options {
	return &p.opts
}

func (p *ColorPrinter) print(c color.Color, s string) {
	io.WriteString(p.opts.out, c.Sprint(s))
}

// PrintProbeSuccess prints a successful probe in light green.
func (p *ColorPrinter) PrintProbeSuccess(addr netip.AddrPort, hostname string, seq, rtt uint64) {
	p.print(colorSuccess, successLine(addr, hostname, seq, rtt))
}

// PrintProbeFailure prints a failed probe in red.
func (p *ColorPrinter) PrintProbeFailure(addr netip.AddrPort, hostname string) {
	p.print(colorFailure, failureLine(addr, hostname))
}

// PrintStatistics prints the summary line in yellow.
func (p *ColorPrinter) PrintStatistics(s *statistics.Statistics) {
	p.print(colorStatistics, statisticsLine(s))
}

// PrintError prints error messages in red.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	p.print(colorError, fmt.Sprintf(format+"\n", args...))
}

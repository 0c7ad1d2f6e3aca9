package printers

import (
	"fmt"
	"io"
	"net/netip"

	"github.com/rpollard00/tcpt/statistics"
)

// PlainPrinter prints results as uncolored text lines.
type PlainPrinter struct {
	opts options
}

type PlainPrinterOption = func(*PlainPrinter)

// NewPlainPrinter creates a new PlainPrinter writing to standard output unless
// WithWriter says otherwise.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{opts: defaultOptions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PlainPrinter) options() *options {
	return &p.opts
}

func (p *PlainPrinter) print(s string) {
	io.WriteString(p.opts.out, s)
}

// PrintProbeSuccess prints the address, hostname, sequence number and RTT of a successful probe.
func (p *PlainPrinter) PrintProbeSuccess(addr netip.AddrPort, hostname string, seq, rtt uint64) {
	p.print(successLine(addr, hostname, seq, rtt))
}

// PrintProbeFailure prints a failed probe. There is no timing to report.
func (p *PlainPrinter) PrintProbeFailure(addr netip.AddrPort, hostname string) {
	p.print(failureLine(addr, hostname))
}

// PrintStatistics prints the summary line.
func (p *PlainPrinter) PrintStatistics(s *statistics.Statistics) {
	p.print(statisticsLine(s))
}

// PrintError prints error messages.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	p.print(fmt.Sprintf(format+"\n", args...))
}

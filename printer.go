package tcpt

import (
	"io"
	"net/netip"
	"os"

	"golang.org/x/term"

	"github.com/rpollard00/tcpt/printers"
	"github.com/rpollard00/tcpt/statistics"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify data or perform calculations.
type Printer interface {
	// PrintProbeSuccess prints one line per successful probe with the
	// connect time in milliseconds.
	PrintProbeSuccess(addr netip.AddrPort, hostname string, seq, rtt uint64)

	// PrintProbeFailure prints one line per failed probe.
	PrintProbeFailure(addr netip.AddrPort, hostname string)

	// PrintStatistics prints the summary. It is called exactly once, on exit,
	// and must not modify s.
	PrintStatistics(s *statistics.Statistics)

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	// Writer receives the output. Defaults to os.Stdout.
	Writer  io.Writer
	NoColor bool
}

// NewPrinter returns a ColorPrinter when the output is a terminal and
// color was not disabled, and a PlainPrinter otherwise.
func NewPrinter(cfg PrinterConfig) Printer {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	if !cfg.NoColor && isTerminal(w) {
		return printers.NewColorPrinter(printers.WithWriter[*printers.ColorPrinter](w))
	}

	return printers.NewPlainPrinter(printers.WithWriter[*printers.PlainPrinter](w))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

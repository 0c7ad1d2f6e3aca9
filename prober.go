package tcpt

import (
	"context"
	"time"

	"github.com/rpollard00/tcpt/option"
	"github.com/rpollard00/tcpt/pingers"
	"github.com/rpollard00/tcpt/printers"
	"github.com/rpollard00/tcpt/statistics"
)

const (
	DefaultInterval = 1000 * time.Millisecond
	DefaultTimeout  = pingers.DefaultTimeout
)

// Prober drives the connect/measure/record/sleep cycle against one address.
type Prober struct {
	pinger   Pinger
	printer  Printer
	running  *RunningFlag
	sleep    func(time.Duration)
	hostname string

	Interval time.Duration
	Timeout  time.Duration
}

type ProberOption = option.Option[Prober]

// WithInterval configures the pause after each attempt. The pause does not
// account for how long the attempt took.
func WithInterval(interval time.Duration) ProberOption {
	return func(p *Prober) {
		p.Interval = interval
	}
}

// WithTimeout sets the longest connect time still counted as a success.
// It should match the pinger's own dial timeout.
func WithTimeout(timeout time.Duration) ProberOption {
	return func(p *Prober) {
		p.Timeout = timeout
	}
}

// WithPrinter configures the printer for probe output formatting.
func WithPrinter(printer Printer) ProberOption {
	return func(p *Prober) {
		p.printer = printer
	}
}

// WithHostname sets the name shown next to the address in each line.
func WithHostname(hostname string) ProberOption {
	return func(p *Prober) {
		p.hostname = hostname
	}
}

// WithRunningFlag sets the flag observed at the top of every iteration.
func WithRunningFlag(flag *RunningFlag) ProberOption {
	return func(p *Prober) {
		p.running = flag
	}
}

// WithSleep replaces time.Sleep between iterations.
func WithSleep(sleep func(time.Duration)) ProberOption {
	return func(p *Prober) {
		p.sleep = sleep
	}
}

// NewProber creates a new prober with the given pinger and optional configuration.
func NewProber(p Pinger, opts ...ProberOption) *Prober {
	pr := Prober{
		pinger:   p,
		printer:  printers.NewPlainPrinter(),
		running:  NewRunningFlag(),
		sleep:    time.Sleep,
		hostname: p.Address().Addr().String(),
		Interval: DefaultInterval,
		Timeout:  DefaultTimeout,
	}
	option.Apply(&pr, opts...)
	return &pr
}

// Probe runs until the running flag is observed false at the start of an
// iteration, or ctx is done, and returns the accumulated statistics.
//
// Neither the connection attempt nor the sleep is cut short by the flag;
// cancelling ctx aborts an in-flight attempt, which then counts as lost.
func (p *Prober) Probe(ctx context.Context) statistics.Statistics {
	stats := statistics.New()

	for p.running.Running() && ctx.Err() == nil {
		outcome := p.attempt(ctx)
		stats.Record(outcome)

		if outcome.Success {
			p.printer.PrintProbeSuccess(p.pinger.Address(), p.hostname, stats.Seq, outcome.RTT)
		} else {
			p.printer.PrintProbeFailure(p.pinger.Address(), p.hostname)
		}

		p.sleep(p.Interval)
		stats.Next()
	}

	return stats
}

// attempt times a single ping. A connection that took longer than the
// timeout is reported as lost even if it eventually succeeded.
func (p *Prober) attempt(ctx context.Context) statistics.Outcome {
	start := time.Now()
	err := p.pinger.Ping(ctx)
	elapsed := time.Since(start)

	if err != nil || elapsed > p.Timeout {
		return statistics.Failure()
	}

	return statistics.Success(statistics.DurationToMilliseconds(elapsed))
}

// Package app wires the command line, signal handling and output around the prober.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/rpollard00/tcpt"
	"github.com/rpollard00/tcpt/dns"
	"github.com/rpollard00/tcpt/pingers"
	"github.com/rpollard00/tcpt/statistics"
)

// Exit codes
const (
	ExitOK                = 0
	ExitResolutionFailure = 1
	ExitStartupFailure    = 1
	ExitUsage             = 2
)

// ErrSignalRegistration indicates the interrupt handler could not be installed.
var ErrSignalRegistration = errors.New("register interrupt handler")

// notifyInterrupt subscribes c to the interrupt signals.
var notifyInterrupt = func(c chan<- os.Signal) error {
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	return nil
}

var resolver = dns.NewResolver()

// Run executes tcpt with the given arguments and returns an exit code
func Run(args []string) int {
	return run(context.Background(), args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	setupLogging(stderr)

	config, err := ProcessUserInput(args)
	if err != nil {
		return handleError(err, stdout, stderr)
	}

	log.WithFields(logrus.Fields{
		"hostname": config.Hostname,
		"port":     config.Port,
		"interval": config.Interval,
	}).Debug("parsed arguments")

	printer := tcpt.NewPrinter(tcpt.PrinterConfig{
		Writer:  stdout,
		NoColor: os.Getenv("NO_COLOR") != "",
	})

	running := tcpt.NewRunningFlag()

	stopHandler, err := installInterruptHandler(running)
	if err != nil {
		printer.PrintError("%v", err)
		return ExitStartupFailure
	}
	defer stopHandler()

	stats, code := probe(ctx, config, printer, running)

	printer.PrintStatistics(&stats)

	return code
}

// probe resolves the target and runs the prober. Without a hostname, or
// when resolution fails, it returns untouched statistics.
func probe(ctx context.Context, config Config, printer tcpt.Printer, running *tcpt.RunningFlag) (statistics.Statistics, int) {
	if config.Hostname == "" {
		log.Debug("no hostname given, nothing to probe")
		return statistics.New(), ExitOK
	}

	addr, err := resolver.Resolve(ctx, config.Hostname, config.Port)
	if err != nil {
		log.WithError(err).Warn("resolution failed")
		printer.PrintError("%v", err)
		return statistics.New(), ExitResolutionFailure
	}

	log.WithField("address", addr.String()).Debug("resolved target")

	pinger := pingers.NewTCPPinger(addr.Addr, pingers.WithTimeout(tcpt.DefaultTimeout))

	prober := tcpt.NewProber(pinger,
		tcpt.WithPrinter(printer),
		tcpt.WithInterval(config.Interval),
		tcpt.WithTimeout(tcpt.DefaultTimeout),
		tcpt.WithHostname(addr.Hostname),
		tcpt.WithRunningFlag(running),
	)

	stats := prober.Probe(ctx)
	log.WithField("attempts", stats.Attempts()).Debug("probe loop stopped")

	return stats, ExitOK
}

// installInterruptHandler clears running on the first interrupt. The
// handler goroutine does nothing else. The returned func unsubscribes.
func installInterruptHandler(running *tcpt.RunningFlag) (func(), error) {
	sigChan := make(chan os.Signal, 1)
	if err := notifyInterrupt(sigChan); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignalRegistration, err)
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-sigChan:
			running.Stop()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}, nil
}

func handleError(err error, stdout, stderr io.Writer) int {
	if errors.Is(err, ErrUsageRequested) {
		PrintUsage(stdout)
		return ExitOK
	}

	if errors.Is(err, ErrVersionRequested) {
		PrintVersion(stdout)
		return ExitOK
	}

	fmt.Fprintf(stderr, "error: %v\n\n", err)
	PrintUsage(stderr)
	return ExitUsage
}

package app

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"
)

var (
	// ErrUsageRequested indicates usage help was requested
	ErrUsageRequested = errors.New("usage requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrInvalidArgument indicates the command line could not be parsed
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	// DefaultPort is used when only a hostname is given.
	DefaultPort uint16 = 443

	defaultIntervalMs uint64 = 1000

	// maxIntervalMs is the longest interval a time.Duration can hold.
	maxIntervalMs uint64 = math.MaxInt64 / uint64(time.Millisecond)
)

// Config is the parsed command line.
type Config struct {
	// Hostname is empty when no target was given; nothing is probed then.
	Hostname string
	Port     uint16
	Interval time.Duration
}

type userInput struct {
	intervalMs  uint64
	showHelp    bool
	showVersion bool
}

func newFlagSet(in *userInput) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.Uint64VarP(&in.intervalMs, "interval", "i", defaultIntervalMs, "milliseconds to wait after each probe")
	fs.BoolVarP(&in.showHelp, "help", "h", false, "print help")
	fs.BoolVarP(&in.showVersion, "version", "V", false, "print version")

	return fs
}

// ProcessUserInput parses command-line arguments (without the program name).
// Returns ErrUsageRequested or ErrVersionRequested for special control flow.
func ProcessUserInput(args []string) (Config, error) {
	var in userInput
	fs := newFlagSet(&in)

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if in.showHelp {
		return Config{}, ErrUsageRequested
	}

	if in.showVersion {
		return Config{}, ErrVersionRequested
	}

	if in.intervalMs > maxIntervalMs {
		return Config{}, fmt.Errorf("%w: interval %d exceeds %d ms", ErrInvalidArgument, in.intervalMs, maxIntervalMs)
	}

	config := Config{
		Port:     DefaultPort,
		Interval: time.Duration(in.intervalMs) * time.Millisecond,
	}

	positional := fs.Args()
	switch len(positional) {
	case 0:
	case 2:
		port, err := parsePort(positional[1])
		if err != nil {
			return Config{}, err
		}
		config.Port = port
		fallthrough
	case 1:
		config.Hostname = positional[0]
	default:
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgument, positional[2])
	}

	return config, nil
}

// parsePort accepts any 16-bit value, including 0.
func parsePort(portStr string) (uint16, error) {
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: port %q must be a number in 0..65535", ErrInvalidArgument, portStr)
	}
	return uint16(port), nil
}

package app

import (
	"fmt"
	"io"
)

// Version is set at compile time
var Version = "dev"

const programName = "tcpt"

// PrintUsage prints how tcpt should be run
func PrintUsage(w io.Writer) {
	fs := newFlagSet(&userInput{})

	fmt.Fprintf(w, "%s %s\n", programName, Version)
	fmt.Fprintf(w, "Repeatedly connects to a TCP port and reports the connect time.\n\n")
	fmt.Fprintf(w, "Usage: %s [OPTIONS] [HOSTNAME] [PORT]\n\n", programName)
	fmt.Fprintf(w, "Arguments:\n")
	fmt.Fprintf(w, "  [HOSTNAME]  host name or IP address to probe\n")
	fmt.Fprintf(w, "  [PORT]      TCP port (default %d)\n\n", DefaultPort)
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, fs.FlagUsages())
}

// PrintVersion displays the version
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", programName, Version)
}

// Package printers contains the logic for printing information
package printers

import (
	"fmt"
	"net/netip"

	"github.com/rpollard00/tcpt/statistics"
)

func successLine(addr netip.AddrPort, hostname string, seq, rtt uint64) string {
	return fmt.Sprintf("Connected to [%s] %s seq=%d time=%d ms\n", addr, hostname, seq, rtt)
}

func failureLine(addr netip.AddrPort, hostname string) string {
	return fmt.Sprintf("Failed to connect to [%s] %s...\n", addr, hostname)
}

// statisticsLine renders the summary. Total is the sequence number, which
// is one past the number of attempts made.
func statisticsLine(s *statistics.Statistics) string {
	return fmt.Sprintf("\nTotal: %d Avg: %dms Min: %sms Max: %dms Lost: %d\n",
		s.Seq,
		s.Average,
		s.MinStr(),
		s.Max,
		s.Lost)
}

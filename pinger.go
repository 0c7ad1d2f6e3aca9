// Package tcpt repeatedly opens TCP connections to a single address and
// reports the connect time of each attempt along with summary statistics.
package tcpt

import (
	"context"
	"net/netip"

	"github.com/rpollard00/tcpt/pingers"
)

var (
	// List of compile time checks for all pingers
	_ Pinger = (*pingers.TCPPinger)(nil)
)

// Pinger performs a single connection attempt against a fixed address.
type Pinger interface {
	Ping(ctx context.Context) error
	Address() netip.AddrPort
}

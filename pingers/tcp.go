// Package pingers implements the TCP connect step used to measure reachability.
package pingers

import (
	"context"
	"net"
	"net/netip"
	"time"

	"github.com/rpollard00/tcpt/option"
)

// DefaultTimeout bounds a single connection attempt.
const DefaultTimeout = 3 * time.Second

const tcp = "tcp"

// TCPPinger opens and immediately closes TCP connections to a fixed address.
type TCPPinger struct {
	dialer *net.Dialer
	addr   netip.AddrPort
}

type TCPOptions = option.Option[TCPPinger]

// NewTCPPinger creates a new TCP pinger for the given address with optional configuration.
func NewTCPPinger(addr netip.AddrPort, opts ...TCPOptions) *TCPPinger {
	t := &TCPPinger{
		addr: addr,
		dialer: &net.Dialer{
			Timeout: DefaultTimeout,
		},
	}
	option.Apply(t, opts...)
	return t
}

// WithDialer configures a custom net.Dialer for TCP connections.
func WithDialer(dialer *net.Dialer) TCPOptions {
	return func(t *TCPPinger) {
		t.dialer = dialer
	}
}

// WithTimeout configures the connection timeout for TCP dial operations.
func WithTimeout(timeout time.Duration) TCPOptions {
	return func(t *TCPPinger) {
		if t.dialer == nil {
			t.dialer = &net.Dialer{}
		}
		t.dialer.Timeout = timeout
	}
}

// Address implements tcpt.Pinger.
func (t *TCPPinger) Address() netip.AddrPort {
	return t.addr
}

// Timeout returns the per-attempt connect timeout.
func (t *TCPPinger) Timeout() time.Duration {
	return t.dialer.Timeout
}

// Ping implements tcpt.Pinger. Only the handshake is measured: nothing is
// written and the connection is closed as soon as it is established.
func (t *TCPPinger) Ping(ctx context.Context) error {
	conn, err := t.dialer.DialContext(ctx, tcp, t.addr.String())
	if err != nil {
		return err
	}
	return conn.Close()
}

package pingers_test

import (
	"context"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpollard00/tcpt/pingers"
)

// startListener accepts and immediately closes connections until the test ends.
func startListener(t *testing.T) netip.AddrPort {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "start test server")
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	return listener.Addr().(*net.TCPAddr).AddrPort()
}

// closedPort returns a loopback port with nothing listening on it.
func closedPort(t *testing.T) netip.AddrPort {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().(*net.TCPAddr).AddrPort()
	require.NoError(t, listener.Close())

	return addr
}

func TestNewTCPPinger(t *testing.T) {
	addr := netip.MustParseAddrPort("192.168.1.1:80")

	pinger := pingers.NewTCPPinger(addr)

	require.NotNil(t, pinger)
	assert.Equal(t, addr, pinger.Address())
	assert.Equal(t, pingers.DefaultTimeout, pinger.Timeout())
}

func TestNewTCPPinger_Options(t *testing.T) {
	addr := netip.MustParseAddrPort("[::1]:443")

	tests := []struct {
		name string
		opts []pingers.TCPOptions
		want time.Duration
	}{
		{
			name: "timeout",
			opts: []pingers.TCPOptions{pingers.WithTimeout(2 * time.Second)},
			want: 2 * time.Second,
		},
		{
			name: "dialer",
			opts: []pingers.TCPOptions{pingers.WithDialer(&net.Dialer{Timeout: time.Second})},
			want: time.Second,
		},
		{
			name: "dialer then timeout",
			opts: []pingers.TCPOptions{
				pingers.WithDialer(&net.Dialer{Timeout: time.Second}),
				pingers.WithTimeout(500 * time.Millisecond),
			},
			want: 500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := pingers.NewTCPPinger(addr, tt.opts...)
			assert.Equal(t, tt.want, pinger.Timeout())
			assert.Equal(t, addr, pinger.Address())
		})
	}
}

func TestTCPPinger_Ping_Localhost(t *testing.T) {
	pinger := pingers.NewTCPPinger(startListener(t))

	assert.NoError(t, pinger.Ping(t.Context()))
}

func TestTCPPinger_Ping_Refused(t *testing.T) {
	pinger := pingers.NewTCPPinger(closedPort(t), pingers.WithTimeout(time.Second))

	assert.Error(t, pinger.Ping(t.Context()))
}

func TestTCPPinger_Ping_ContextCancellation(t *testing.T) {
	addr := netip.MustParseAddrPort("192.0.2.1:80") // RFC 5737 documentation prefix
	pinger := pingers.NewTCPPinger(addr, pingers.WithTimeout(5*time.Second))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	assert.Error(t, pinger.Ping(ctx))
}

func TestTCPPinger_Ping_Timeout(t *testing.T) {
	addr := netip.MustParseAddrPort("192.0.2.1:80") // non-routable for timeout test
	pinger := pingers.NewTCPPinger(addr, pingers.WithTimeout(10*time.Millisecond))

	start := time.Now()
	err := pinger.Ping(t.Context())
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, 500*time.Millisecond, "expected ~10ms timeout")
}

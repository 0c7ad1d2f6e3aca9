// Package dns handles all hostname resolution logic
package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/rpollard00/tcpt/option"
)

var (
	// ErrResolutionFailed is returned when the system resolver itself errors,
	// e.g. malformed names or no DNS response.
	ErrResolutionFailed = errors.New("unable to resolve hostname")

	// ErrNoAddressFound is returned when resolution succeeds with zero candidates.
	ErrNoAddressFound = errors.New("no addresses found for hostname")
)

// ResolvedAddress is the concrete socket address selected for a target,
// together with the hostname the user asked for.
type ResolvedAddress struct {
	Addr     netip.AddrPort
	Hostname string
}

// String returns the socket address, e.g. "127.0.0.1:443" or "[::1]:443".
func (r ResolvedAddress) String() string {
	return r.Addr.String()
}

// LookupFunc returns every address known for host on the given network.
type LookupFunc func(ctx context.Context, network, host string) ([]netip.Addr, error)

// Resolver handles hostname resolution with configurable options
type Resolver struct {
	timeout time.Duration
	lookup  LookupFunc
}

type ResolverOption = option.Option[Resolver]

// WithTimeout sets the DNS resolution timeout
func WithTimeout(timeout time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.timeout = timeout
	}
}

// WithLookup replaces the system resolver.
func WithLookup(lookup LookupFunc) ResolverOption {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

const (
	defaultTimeout = 5 * time.Second
	ipv4OrIPv6     = "ip" // allows LookupNetIP to use both IPv4 and IPv6
)

// NewResolver creates a new DNS resolver with optional configuration
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		timeout: defaultTimeout,
		lookup:  net.DefaultResolver.LookupNetIP,
	}
	option.Apply(r, opts...)
	return r
}

// Resolve maps hostname and port to exactly one address. The first
// candidate returned by the lookup wins; there is no family preference
// and no fallback to later candidates.
func (r *Resolver) Resolve(ctx context.Context, hostname string, port uint16) (ResolvedAddress, error) {
	if hostname == "" {
		return ResolvedAddress{}, fmt.Errorf("%w: empty hostname", ErrResolutionFailed)
	}

	if ip, err := netip.ParseAddr(hostname); err == nil {
		return newResolvedAddress(ip, port, hostname), nil
	}

	lctx := ctx
	if _, ok := ctx.Deadline(); !ok && r.timeout > 0 {
		var cancel context.CancelFunc
		lctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	ipAddrs, err := r.lookup(lctx, ipv4OrIPv6, hostname)
	if err != nil {
		return ResolvedAddress{}, fmt.Errorf("%w: %s: %w", ErrResolutionFailed, hostname, err)
	}

	if len(ipAddrs) == 0 {
		return ResolvedAddress{}, fmt.Errorf("%w: %s", ErrNoAddressFound, hostname)
	}

	return newResolvedAddress(ipAddrs[0], port, hostname), nil
}

// Resolve is a package-level convenience function that uses default settings
func Resolve(ctx context.Context, hostname string, port uint16) (ResolvedAddress, error) {
	return NewResolver().Resolve(ctx, hostname, port)
}

// newResolvedAddress unmaps ip, since static builds (CGO=0) return
// IPv4-mapped IPv6 addresses.
func newResolvedAddress(ip netip.Addr, port uint16, hostname string) ResolvedAddress {
	return ResolvedAddress{
		Addr:     netip.AddrPortFrom(ip.Unmap(), port),
		Hostname: hostname,
	}
}

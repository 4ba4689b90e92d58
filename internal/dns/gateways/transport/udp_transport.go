package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/multierr"

	"github.com/haukened/dnsping/internal/dns/common/clock"
	"github.com/haukened/dnsping/internal/dns/common/log"
	"github.com/haukened/dnsping/internal/dns/domain"
	"github.com/haukened/dnsping/internal/dns/services/prober"
)

// DialFunc opens a UDP socket bound to laddr and connected to raddr.
// net.DialUDP satisfies it once wrapped to return net.Conn.
type DialFunc func(network string, laddr, raddr *net.UDPAddr) (net.Conn, error)

// dialUDP is the default DialFunc.
func dialUDP(network string, laddr, raddr *net.UDPAddr) (net.Conn, error) {
	return net.DialUDP(network, laddr, raddr)
}

// Options configures a UDPExchanger.
type Options struct {
	// Family forces the socket family. FamilyAuto follows the endpoint.
	Family domain.AddressFamily
	// Dial replaces the socket constructor, mainly for tests.
	Dial DialFunc
	// Clock measures the round trip. Defaults to the real clock.
	Clock  clock.Clock
	Logger log.Logger
}

// UDPExchanger sends each query from a fresh UDP socket and waits for a
// single response datagram.
type UDPExchanger struct {
	family domain.AddressFamily
	dial   DialFunc
	clock  clock.Clock
	logger log.Logger
}

// NewUDPExchanger creates a new UDPExchanger.
func NewUDPExchanger(opts Options) *UDPExchanger {
	if opts.Dial == nil {
		opts.Dial = dialUDP
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &UDPExchanger{
		family: opts.Family,
		dial:   opts.Dial,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
}

// Exchange sends query to endpoint and returns the first datagram received
// together with the time between send and receive. The wait is bounded by
// timeout (DefaultTimeout if not positive) and by the deadline of ctx.
// The socket is closed before Exchange returns, on every path.
func (x *UDPExchanger) Exchange(ctx context.Context, endpoint domain.Endpoint, query []byte, timeout time.Duration) (ex domain.Exchange, err error) {
	if !endpoint.IsValid() {
		return domain.Exchange{}, fmt.Errorf("%w: invalid endpoint %q", ErrIO, endpoint)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	network, laddr := bindAddr(x.family, endpoint)
	conn, err := x.dial(network, laddr, endpoint.UDPAddr())
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("%w: bind %s: %w", ErrIO, network, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: close: %w", ErrIO, cerr))
		}
	}()

	// Socket deadlines are wall-clock instants.
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return domain.Exchange{}, fmt.Errorf("%w: set deadline: %w", ErrIO, err)
	}

	buf := make([]byte, maxMessageSize)
	start := x.clock.Now()
	if _, err := conn.Write(query); err != nil {
		return domain.Exchange{}, fmt.Errorf("%w: send to %s: %w", ErrIO, endpoint, err)
	}
	n, err := conn.Read(buf)
	elapsed := x.clock.Now().Sub(start)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return domain.Exchange{}, fmt.Errorf("%w: no response from %s within %s: %w", ErrIO, endpoint, timeout, err)
		}
		return domain.Exchange{}, fmt.Errorf("%w: receive from %s: %w", ErrIO, endpoint, err)
	}

	x.logger.Debug(map[string]any{
		"server":  endpoint.String(),
		"network": network,
		"sent":    len(query),
		"recv":    n,
		"rtt_us":  elapsed.Microseconds(),
	}, "UDP exchange complete")

	return domain.Exchange{Elapsed: elapsed, Payload: buf[:n]}, nil
}

// bindAddr returns the network and wildcard local address for the probe
// socket. A forced family wins over the family of the endpoint.
func bindAddr(family domain.AddressFamily, endpoint domain.Endpoint) (string, *net.UDPAddr) {
	if family == domain.FamilyAuto {
		family = endpoint.Family()
	}
	if family == domain.FamilyIPv6 {
		return "udp6", &net.UDPAddr{IP: net.IPv6unspecified}
	}
	return "udp4", &net.UDPAddr{IP: net.IPv4zero}
}

var _ prober.Exchanger = (*UDPExchanger)(nil)

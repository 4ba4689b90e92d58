// Package address resolves the user-supplied nameserver string into the
// single endpoint a probe run talks to.
package address

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/haukened/dnsping/internal/dns/common/log"
	"github.com/haukened/dnsping/internal/dns/domain"
	"github.com/haukened/dnsping/internal/dns/services/prober"
)

var (
	// ErrUnresolvable means the server string produced no usable address.
	ErrUnresolvable = errors.New("server address did not resolve")
	// ErrLookup means the name lookup itself failed.
	ErrLookup = errors.New("server address lookup failed")
)

// Error message constants for consistent error handling
const (
	errEmptyServer  = "%w: empty server address"
	errZeroPort     = "%w: %s: port 0"
	errWrongFamily  = "%w: %s is not an %s address"
	errNoCandidates = "%w: %s has no usable address (family %s)"
	errLookupFailed = "%w: %s: %w"
	errBadHost      = "%w: %s is neither an address nor a host name"
)

const defaultTimeout = 5 * time.Second

// HostLookup resolves a host name to addresses. *net.Resolver satisfies it.
type HostLookup interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// Options configures a Resolver.
type Options struct {
	// Family restricts the candidates; FamilyAuto accepts both.
	Family domain.AddressFamily
	// Timeout bounds the lookup when ctx carries no deadline.
	Timeout time.Duration
	// options to inject for testing purposes
	Lookup HostLookup
	Logger log.Logger
}

// Resolver turns "host", "host:port", "v4", "v6" or "[v6]:port" into an endpoint.
type Resolver struct {
	family  domain.AddressFamily
	timeout time.Duration
	lookup  HostLookup
	logger  log.Logger
}

// NewResolver creates a Resolver. Lookups default to net.DefaultResolver and
// a 5 second timeout.
func NewResolver(opts Options) *Resolver {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Lookup == nil {
		opts.Lookup = net.DefaultResolver
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Resolver{
		family:  opts.Family,
		timeout: opts.Timeout,
		lookup:  opts.Lookup,
		logger:  opts.Logger,
	}
}

// target is the host and port read from the server string.
type target struct {
	host string
	port uint16
}

// Resolve returns the endpoint for server. A port carried by server wins
// over defaultPort. When several addresses match, the first is used.
// IP literals are never looked up.
func (r *Resolver) Resolve(ctx context.Context, server string, defaultPort uint16) (domain.Endpoint, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return domain.Endpoint{}, fmt.Errorf(errEmptyServer, ErrUnresolvable)
	}

	ctx, cancel := r.ensureContextDeadline(ctx)
	if cancel != nil {
		defer cancel()
	}

	t := parseTarget(server, defaultPort)
	ep, err := r.resolveTarget(ctx, t)
	if err != nil {
		r.logger.Debug(map[string]any{
			"host":  t.host,
			"port":  t.port,
			"error": err.Error(),
		}, "Server address rejected")
		return domain.Endpoint{}, err
	}
	r.logger.Debug(map[string]any{
		"server":   server,
		"endpoint": ep.String(),
		"family":   r.family.String(),
	}, "Resolved server address")
	return ep, nil
}

// ensureContextDeadline adds the resolver's timeout if ctx has no deadline.
func (r *Resolver) ensureContextDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, r.timeout)
	}
	return ctx, nil
}

// parseTarget reads server as a complete host:port first. Anything else is
// a bare host, optionally bracketed, used with defaultPort.
func parseTarget(server string, defaultPort uint16) target {
	if host, portStr, err := net.SplitHostPort(server); err == nil {
		if port, err := strconv.ParseUint(portStr, 10, 16); err == nil {
			return target{host: host, port: uint16(port)}
		}
	}
	host := server
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}
	return target{host: host, port: defaultPort}
}

func (r *Resolver) resolveTarget(ctx context.Context, t target) (domain.Endpoint, error) {
	if t.port == 0 {
		return domain.Endpoint{}, fmt.Errorf(errZeroPort, ErrUnresolvable, t.host)
	}

	if addr, err := netip.ParseAddr(t.host); err == nil {
		if !r.family.Allows(addr) {
			return domain.Endpoint{}, fmt.Errorf(errWrongFamily, ErrUnresolvable, t.host, r.family)
		}
		return domain.NewEndpoint(addr, t.port), nil
	}
	if strings.ContainsAny(t.host, ":[]") {
		return domain.Endpoint{}, fmt.Errorf(errBadHost, ErrUnresolvable, t.host)
	}

	addrs, err := r.lookup.LookupNetIP(ctx, r.family.Network(), t.host)
	if err != nil {
		var dnsErr *net.DNSError
		if !errors.As(err, &dnsErr) || !dnsErr.IsNotFound {
			return domain.Endpoint{}, fmt.Errorf(errLookupFailed, ErrLookup, t.host, err)
		}
		addrs = nil
	}
	for _, addr := range addrs {
		if r.family.Allows(addr) {
			return domain.NewEndpoint(addr, t.port), nil
		}
	}
	return domain.Endpoint{}, fmt.Errorf(errNoCandidates, ErrUnresolvable, t.host, r.family)
}

var _ prober.AddressResolver = (*Resolver)(nil)

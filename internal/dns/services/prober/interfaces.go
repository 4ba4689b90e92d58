package prober

import (
	"context"
	"time"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// AddressResolver turns the user's server string into the single endpoint
// every probe of a run is sent to.
type AddressResolver interface {
	Resolve(ctx context.Context, server string, defaultPort uint16) (domain.Endpoint, error)
}

// Codec builds query messages and decodes response messages.
type Codec interface {
	EncodeQuery(q domain.Question) ([]byte, error)
	// DecodeResponse returns an error matching domain.ErrUnsupportedType when
	// the response is intact but of a type it cannot render, and one matching
	// domain.ErrMalformed for every other failure.
	DecodeResponse(data []byte, expectedID uint16) (domain.Response, error)
}

// Exchanger performs one timed query/response round trip.
type Exchanger interface {
	Exchange(ctx context.Context, endpoint domain.Endpoint, query []byte, timeout time.Duration) (domain.Exchange, error)
}

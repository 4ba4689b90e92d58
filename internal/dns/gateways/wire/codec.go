package wire

import (
	"github.com/haukened/dnsping/internal/dns/domain"
	"github.com/haukened/dnsping/internal/dns/services/prober"
)

// Decode failures. Both are matched with errors.Is; the returned error
// carries the detail.
var (
	ErrMalformed       = domain.ErrMalformed
	ErrUnsupportedType = domain.ErrUnsupportedType
)

const (
	headerLen   = 12
	maxLabelLen = 63
	maxNameLen  = 255
)

var _ prober.Codec = (*UDPCodec)(nil)

package rrdata

import (
	"strings"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// TXT holds the character-strings of a TXT record, RFC 1035 §3.3.14.
type TXT struct {
	Segments []string
}

// String concatenates all segments without a separator.
func (t TXT) String() string {
	return strings.Join(t.Segments, "")
}

func decodeTXTData(b []byte) (domain.RData, error) {
	if len(b) == 0 {
		return nil, invalid("TXT record has no character-string")
	}
	var segments []string
	for i := 0; i < len(b); {
		n := int(b[i])
		i++
		if i+n > len(b) {
			return nil, invalid("TXT segment overruns rdata")
		}
		segments = append(segments, string(b[i:i+n]))
		i += n
	}
	return TXT{Segments: segments}, nil
}

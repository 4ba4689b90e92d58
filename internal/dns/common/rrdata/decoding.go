package rrdata

import (
	"slices"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// Decode decodes the rdata of type t occupying msg[off:off+length]. The whole
// message is needed because names inside rdata may be compressed.
func Decode(t domain.RRType, msg []byte, off, length int) (domain.RData, error) {
	end := off + length
	if off < 0 || length < 0 || end > len(msg) {
		return nil, invalid("rdata of %d octets at offset %d overruns message of %d", length, off, len(msg))
	}
	b := msg[off:end]

	switch t {
	case domain.RRTypeA: // 1
		return decodeAData(b)
	case domain.RRTypeNS: // 2
		return decodeNSData(msg, off, end)
	case domain.RRTypeCNAME: // 5
		return decodeCNAMEData(msg, off, end)
	case domain.RRTypeSOA: // 6
		return decodeSOAData(msg, off, end)
	case domain.RRTypePTR: // 12
		return decodePTRData(msg, off, end)
	case domain.RRTypeMX: // 15
		return decodeMXData(msg, off, end)
	case domain.RRTypeTXT: // 16
		return decodeTXTData(b)
	case domain.RRTypeAAAA: // 28
		return decodeAAAAData(b)
	case domain.RRTypeSRV: // 33
		return decodeSRVData(msg, off, end)
	case domain.RRTypeCAA: // 257
		return decodeCAAData(b)
	default:
		return Opaque{Type: t, Data: slices.Clone(b)}, nil
	}
}

package rrdata

import (
	"net/netip"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// AAAA is the address of an AAAA record.
type AAAA struct {
	Addr netip.Addr
}

func (a AAAA) String() string {
	return a.Addr.String()
}

func decodeAAAAData(b []byte) (domain.RData, error) {
	if len(b) != 16 {
		return nil, invalid("AAAA data length %d, want 16", len(b))
	}
	return AAAA{Addr: netip.AddrFrom16([16]byte(b))}, nil
}

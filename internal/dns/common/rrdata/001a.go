package rrdata

import (
	"net/netip"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// A is the address of an A record.
type A struct {
	Addr netip.Addr
}

func (a A) String() string {
	return a.Addr.String()
}

func decodeAData(b []byte) (domain.RData, error) {
	if len(b) != 4 {
		return nil, invalid("A data length %d, want 4", len(b))
	}
	return A{Addr: netip.AddrFrom4([4]byte(b))}, nil
}

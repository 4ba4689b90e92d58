package rrdata

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// SOA holds the start-of-authority fields in wire order.
type SOA struct {
	PrimaryNS  string
	Mailbox    string
	Serial     uint32
	Refresh    uint32
	Retry      uint32
	Expire     uint32
	MinimumTTL uint32
}

func (s SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", s.PrimaryNS, s.Mailbox, s.Serial, s.Refresh, s.Retry, s.Expire, s.MinimumTTL)
}

func decodeSOAData(msg []byte, off, end int) (domain.RData, error) {
	mname, off, err := readNameWithin(msg, off, end)
	if err != nil {
		return nil, fmt.Errorf("SOA mname: %w", err)
	}
	rname, off, err := readNameWithin(msg, off, end)
	if err != nil {
		return nil, fmt.Errorf("SOA rname: %w", err)
	}
	if end-off != 20 {
		return nil, invalid("SOA has %d octets of counters, want 20", end-off)
	}

	// serial, refresh, retry, expire, minimum
	var u32 [5]uint32
	for i := range u32 {
		u32[i] = binary.BigEndian.Uint32(msg[off+i*4:])
	}
	return SOA{
		PrimaryNS:  mname,
		Mailbox:    rname,
		Serial:     u32[0],
		Refresh:    u32[1],
		Retry:      u32[2],
		Expire:     u32[3],
		MinimumTTL: u32[4],
	}, nil
}

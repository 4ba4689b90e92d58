package rrdata

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// SRV locates a service, RFC 2782.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (s SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", s.Priority, s.Weight, s.Port, s.Target)
}

func decodeSRVData(msg []byte, off, end int) (domain.RData, error) {
	if end-off < 7 {
		return nil, invalid("SRV data length %d", end-off)
	}
	// The target must not be compressed per RFC 2782, but many servers do
	// it anyway, so pointers are followed.
	target, err := singleName(msg, off+6, end)
	if err != nil {
		return nil, fmt.Errorf("SRV target: %w", err)
	}
	return SRV{
		Priority: binary.BigEndian.Uint16(msg[off:]),
		Weight:   binary.BigEndian.Uint16(msg[off+2:]),
		Port:     binary.BigEndian.Uint16(msg[off+4:]),
		Target:   target,
	}, nil
}

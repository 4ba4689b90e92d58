package rrdata

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// MX is a mail exchange and its preference.
type MX struct {
	Preference uint16
	Exchange   string
}

func (m MX) String() string {
	return fmt.Sprintf("%d %s", m.Preference, m.Exchange)
}

func decodeMXData(msg []byte, off, end int) (domain.RData, error) {
	if end-off < 3 {
		return nil, invalid("MX data length %d", end-off)
	}
	pref := binary.BigEndian.Uint16(msg[off:])
	exchange, err := singleName(msg, off+2, end)
	if err != nil {
		return nil, fmt.Errorf("MX exchange: %w", err)
	}
	return MX{Preference: pref, Exchange: exchange}, nil
}

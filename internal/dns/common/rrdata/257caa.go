package rrdata

import (
	"fmt"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// CAA is a certification authority authorization, RFC 8659.
type CAA struct {
	Flags uint8
	Tag   string
	Value string
}

func (c CAA) String() string {
	return fmt.Sprintf("%d %s %q", c.Flags, c.Tag, c.Value)
}

func decodeCAAData(b []byte) (domain.RData, error) {
	if len(b) < 2 {
		return nil, invalid("CAA data length %d", len(b))
	}
	tagLen := int(b[1])
	if tagLen == 0 || 2+tagLen > len(b) {
		return nil, invalid("CAA tag length %d", tagLen)
	}
	// The value is opaque, so it is passed through unchanged.
	return CAA{
		Flags: b[0],
		Tag:   string(b[2 : 2+tagLen]),
		Value: string(b[2+tagLen:]),
	}, nil
}

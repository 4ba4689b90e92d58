package rrdata

import "github.com/haukened/dnsping/internal/dns/domain"

// CNAME is the canonical name an alias points to.
type CNAME struct {
	Target string
}

func (c CNAME) String() string {
	return c.Target
}

func decodeCNAMEData(msg []byte, off, end int) (domain.RData, error) {
	target, err := singleName(msg, off, end)
	if err != nil {
		return nil, err
	}
	return CNAME{Target: target}, nil
}

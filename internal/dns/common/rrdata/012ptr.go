package rrdata

import "github.com/haukened/dnsping/internal/dns/domain"

// PTR is the target of a reverse mapping.
type PTR struct {
	Target string
}

func (p PTR) String() string {
	return p.Target
}

func decodePTRData(msg []byte, off, end int) (domain.RData, error) {
	target, err := singleName(msg, off, end)
	if err != nil {
		return nil, err
	}
	return PTR{Target: target}, nil
}

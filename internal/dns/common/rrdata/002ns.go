package rrdata

import "github.com/haukened/dnsping/internal/dns/domain"

// NS names an authoritative name server.
type NS struct {
	Host string
}

func (n NS) String() string {
	return n.Host
}

func decodeNSData(msg []byte, off, end int) (domain.RData, error) {
	host, err := singleName(msg, off, end)
	if err != nil {
		return nil, err
	}
	return NS{Host: host}, nil
}

// singleName decodes rdata that consists of exactly one domain name.
func singleName(msg []byte, off, end int) (string, error) {
	name, next, err := readNameWithin(msg, off, end)
	if err != nil {
		return "", err
	}
	if next != end {
		return "", invalid("%d trailing octets after name", end-next)
	}
	return name, nil
}

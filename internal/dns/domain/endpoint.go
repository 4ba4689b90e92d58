package domain

import (
	"net"
	"net/netip"
)

// AddressFamily selects which IP family a probe uses.
type AddressFamily int

const (
	// FamilyAuto follows the family of the resolved server address.
	FamilyAuto AddressFamily = iota
	// FamilyIPv4 forces IPv4.
	FamilyIPv4
	// FamilyIPv6 forces IPv6.
	FamilyIPv6
)

// String returns the textual representation of the AddressFamily.
func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "auto"
	}
}

// Network returns the name lookup network for the family ("ip", "ip4" or "ip6").
func (f AddressFamily) Network() string {
	switch f {
	case FamilyIPv4:
		return "ip4"
	case FamilyIPv6:
		return "ip6"
	default:
		return "ip"
	}
}

// Allows reports whether addr belongs to the family.
func (f AddressFamily) Allows(addr netip.Addr) bool {
	addr = addr.Unmap()
	switch f {
	case FamilyIPv4:
		return addr.Is4()
	case FamilyIPv6:
		return addr.Is6()
	default:
		return addr.IsValid()
	}
}

// Endpoint is the resolved address of the probed nameserver.
type Endpoint struct {
	AddrPort netip.AddrPort
}

// NewEndpoint returns the Endpoint for addr and port. IPv4-mapped IPv6
// addresses are unmapped so they count as IPv4.
func NewEndpoint(addr netip.Addr, port uint16) Endpoint {
	return Endpoint{AddrPort: netip.AddrPortFrom(addr.Unmap(), port)}
}

// IsValid reports whether the endpoint holds an address and a non-zero port.
func (e Endpoint) IsValid() bool {
	return e.AddrPort.IsValid() && e.AddrPort.Port() != 0
}

// Family returns FamilyIPv4 or FamilyIPv6 according to the endpoint address.
func (e Endpoint) Family() AddressFamily {
	if e.AddrPort.Addr().Is4() {
		return FamilyIPv4
	}
	return FamilyIPv6
}

// UDPAddr converts the endpoint for use with the net package.
func (e Endpoint) UDPAddr() *net.UDPAddr {
	return net.UDPAddrFromAddrPort(e.AddrPort)
}

func (e Endpoint) String() string {
	return e.AddrPort.String()
}

package domain

import (
	"net/netip"
	"testing"
)

func TestNewEndpoint_Family(t *testing.T) {
	cases := []struct {
		addr   string
		family AddressFamily
		text   string
	}{
		{"8.8.8.8", FamilyIPv4, "8.8.8.8:53"},
		{"::ffff:8.8.8.8", FamilyIPv4, "8.8.8.8:53"},
		{"2001:4860:4860::8888", FamilyIPv6, "[2001:4860:4860::8888]:53"},
	}
	for _, tc := range cases {
		ep := NewEndpoint(netip.MustParseAddr(tc.addr), 53)
		if !ep.IsValid() {
			t.Errorf("%s: endpoint should be valid", tc.addr)
		}
		if got := ep.Family(); got != tc.family {
			t.Errorf("%s: Family() = %s, want %s", tc.addr, got, tc.family)
		}
		if got := ep.String(); got != tc.text {
			t.Errorf("%s: String() = %q, want %q", tc.addr, got, tc.text)
		}
		if got := ep.UDPAddr().Port; got != 53 {
			t.Errorf("%s: UDPAddr().Port = %d", tc.addr, got)
		}
	}
}

func TestEndpoint_IsValid(t *testing.T) {
	if (Endpoint{}).IsValid() {
		t.Error("zero endpoint should be invalid")
	}
	if NewEndpoint(netip.MustParseAddr("127.0.0.1"), 0).IsValid() {
		t.Error("endpoint without port should be invalid")
	}
}

func TestAddressFamily(t *testing.T) {
	v4 := netip.MustParseAddr("192.0.2.1")
	v6 := netip.MustParseAddr("2001:db8::1")
	mapped := netip.MustParseAddr("::ffff:192.0.2.1")

	cases := []struct {
		f       AddressFamily
		network string
		name    string
		v4, v6  bool
	}{
		{FamilyAuto, "ip", "auto", true, true},
		{FamilyIPv4, "ip4", "ipv4", true, false},
		{FamilyIPv6, "ip6", "ipv6", false, true},
	}
	for _, tc := range cases {
		if got := tc.f.Network(); got != tc.network {
			t.Errorf("%s: Network() = %q, want %q", tc.name, got, tc.network)
		}
		if got := tc.f.String(); got != tc.name {
			t.Errorf("String() = %q, want %q", got, tc.name)
		}
		if got := tc.f.Allows(v4); got != tc.v4 {
			t.Errorf("%s: Allows(v4) = %v", tc.name, got)
		}
		if got := tc.f.Allows(mapped); got != tc.v4 {
			t.Errorf("%s: Allows(mapped v4) = %v", tc.name, got)
		}
		if got := tc.f.Allows(v6); got != tc.v6 {
			t.Errorf("%s: Allows(v6) = %v", tc.name, got)
		}
	}
}

package rrdata

import (
	"net/netip"
	"testing"

	"github.com/haukened/dnsping/internal/dns/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SwitchCoverage(t *testing.T) {
	tests := []struct {
		name   string
		rrType domain.RRType
		wire   []byte
		want   domain.RData
		render string
	}{
		{"A", domain.RRTypeA, []byte{192, 0, 2, 1},
			A{Addr: netip.MustParseAddr("192.0.2.1")}, "192.0.2.1"},
		{"NS", domain.RRTypeNS, wireName("ns.example.com"),
			NS{Host: "ns.example.com"}, "ns.example.com"},
		{"CNAME", domain.RRTypeCNAME, wireName("alias.example.com"),
			CNAME{Target: "alias.example.com"}, "alias.example.com"},
		{"PTR", domain.RRTypePTR, wireName("ptr.example.com"),
			PTR{Target: "ptr.example.com"}, "ptr.example.com"},
		{"MX", domain.RRTypeMX, append([]byte{0, 10}, wireName("mail.example.com")...),
			MX{Preference: 10, Exchange: "mail.example.com"}, "10 mail.example.com"},
		{"TXT", domain.RRTypeTXT, append([]byte{11}, "hello world"...),
			TXT{Segments: []string{"hello world"}}, "hello world"},
		{"AAAA", domain.RRTypeAAAA, []byte{32, 1, 13, 184, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			AAAA{Addr: netip.MustParseAddr("2001:db8::1")}, "2001:db8::1"},
		{"SRV", domain.RRTypeSRV, append([]byte{0, 1, 0, 2, 0, 80}, wireName("target.example.com")...),
			SRV{Priority: 1, Weight: 2, Port: 80, Target: "target.example.com"}, "1 2 80 target.example.com"},
		{"CAA", domain.RRTypeCAA, append([]byte{0, 5}, "issueletsencrypt.org"...),
			CAA{Flags: 0, Tag: "issue", Value: "letsencrypt.org"}, `0 issue "letsencrypt.org"`},
		{"HTTPS falls back to opaque", domain.RRTypeHTTPS, []byte{0x00, 0x01, 0x00},
			Opaque{Type: domain.RRTypeHTTPS, Data: []byte{0x00, 0x01, 0x00}}, `\# 3 000100`},
		{"unknown type falls back to opaque", domain.RRType(9999), []byte("raw"),
			Opaque{Type: domain.RRType(9999), Data: []byte("raw")}, `\# 3 726177`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.rrType, tt.wire, 0, len(tt.wire))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.render, got.String())
		})
	}
}

func TestDecode_RdataInsideMessage(t *testing.T) {
	// Owner name "example.com" at offset 0, then MX rdata whose exchange is
	// "mail" plus a pointer back to the owner.
	msg := wireName("example.com")
	off := len(msg)
	rdata := []byte{0, 5, 4, 'm', 'a', 'i', 'l', 0xC0, 0x00}
	msg = append(msg, rdata...)

	got, err := Decode(domain.RRTypeMX, msg, off, len(rdata))
	require.NoError(t, err)
	assert.Equal(t, MX{Preference: 5, Exchange: "mail.example.com"}, got)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		rrType domain.RRType
		wire   []byte
		length int
	}{
		{"A too short", domain.RRTypeA, []byte{192, 0, 2}, 3},
		{"MX missing exchange", domain.RRTypeMX, []byte{0, 10}, 2},
		{"TXT empty", domain.RRTypeTXT, nil, 0},
		{"length overruns message", domain.RRTypeA, []byte{1, 2, 3, 4}, 8},
		{"negative length", domain.RRTypeA, []byte{1, 2, 3, 4}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.rrType, tt.wire, 0, tt.length)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidData)
			assert.Nil(t, got)
		})
	}
}

package domain

import (
	"fmt"
	"strings"
)

// Header flag bits, RFC 1035 §4.1.1 and RFC 4035 §3.2.
const (
	flagQR uint16 = 1 << 15
	flagAA uint16 = 1 << 10
	flagTC uint16 = 1 << 9
	flagRD uint16 = 1 << 8
	flagRA uint16 = 1 << 7
	flagAD uint16 = 1 << 5
	flagCD uint16 = 1 << 4
)

// Flags holds the boolean header bits of a DNS message.
type Flags struct {
	Response           bool // QR
	Authoritative      bool // AA
	Truncated          bool // TC
	RecursionDesired   bool // RD
	RecursionAvailable bool // RA
	AuthenticatedData  bool // AD
	CheckingDisabled   bool // CD
}

// FlagsFromWire extracts the flag bits from the 16-bit header flags word.
func FlagsFromWire(v uint16) Flags {
	return Flags{
		Response:           v&flagQR != 0,
		Authoritative:      v&flagAA != 0,
		Truncated:          v&flagTC != 0,
		RecursionDesired:   v&flagRD != 0,
		RecursionAvailable: v&flagRA != 0,
		AuthenticatedData:  v&flagAD != 0,
		CheckingDisabled:   v&flagCD != 0,
	}
}

// Wire returns the flag bits as they appear in the header flags word.
// Opcode and RCode bits are left zero.
func (f Flags) Wire() uint16 {
	var v uint16
	if f.Response {
		v |= flagQR
	}
	if f.Authoritative {
		v |= flagAA
	}
	if f.Truncated {
		v |= flagTC
	}
	if f.RecursionDesired {
		v |= flagRD
	}
	if f.RecursionAvailable {
		v |= flagRA
	}
	if f.AuthenticatedData {
		v |= flagAD
	}
	if f.CheckingDisabled {
		v |= flagCD
	}
	return v
}

// String renders the set flags in dig order, e.g. "qr rd ra".
func (f Flags) String() string {
	names := make([]string, 0, 7)
	for _, fl := range []struct {
		set  bool
		name string
	}{
		{f.Response, "qr"},
		{f.Authoritative, "aa"},
		{f.Truncated, "tc"},
		{f.RecursionDesired, "rd"},
		{f.RecursionAvailable, "ra"},
		{f.AuthenticatedData, "ad"},
		{f.CheckingDisabled, "cd"},
	} {
		if fl.set {
			names = append(names, fl.name)
		}
	}
	return strings.Join(names, " ")
}

// Opcode is the kind of query carried by a message.
type Opcode uint8

// String returns the textual representation of the Opcode.
func (o Opcode) String() string {
	switch o {
	case 0:
		return "QUERY"
	case 1:
		return "IQUERY"
	case 2:
		return "STATUS"
	case 4:
		return "NOTIFY"
	case 5:
		return "UPDATE"
	default:
		return fmt.Sprintf("OPCODE%d", uint8(o))
	}
}

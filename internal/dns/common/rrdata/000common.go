package rrdata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidData is wrapped by every decode failure in this package.
var ErrInvalidData = errors.New("invalid record data")

const (
	maxNameLen  = 255 // wire octets, including length bytes and the root label
	maxPointers = 64  // compression hops before a name is considered looping
)

// ReadName decodes the domain name starting at msg[off], following
// compression pointers (RFC 1035 §4.1.4). The name is returned without a
// trailing dot, or as "." for the root. The returned offset is the position
// just past the name where it started, not where a pointer led.
func ReadName(msg []byte, off int) (string, int, error) {
	var (
		labels  []string
		wireLen = 1 // root label
		next    = -1
		hops    int
	)
	for {
		if off < 0 || off >= len(msg) {
			return "", 0, invalid("name truncated at offset %d", off)
		}
		c := int(msg[off])
		switch c & 0xC0 {
		case 0x00:
			off++
			if c == 0 {
				if next < 0 {
					next = off
				}
				if len(labels) == 0 {
					return ".", next, nil
				}
				return strings.Join(labels, "."), next, nil
			}
			if off+c > len(msg) {
				return "", 0, invalid("label truncated at offset %d", off-1)
			}
			wireLen += c + 1
			if wireLen > maxNameLen {
				return "", 0, invalid("name exceeds %d octets", maxNameLen)
			}
			labels = append(labels, string(msg[off:off+c]))
			off += c
		case 0xC0:
			if off+1 >= len(msg) {
				return "", 0, invalid("compression pointer truncated at offset %d", off)
			}
			hops++
			if hops > maxPointers {
				return "", 0, invalid("compression loop at offset %d", off)
			}
			if next < 0 {
				next = off + 2
			}
			off = int(binary.BigEndian.Uint16(msg[off:]) & 0x3FFF)
		default:
			// 0x40 and 0x80 are extended and reserved label types
			return "", 0, invalid("unsupported label type 0x%02x at offset %d", c&0xC0, off)
		}
	}
}

// readNameWithin reads a name that must end at or before end.
func readNameWithin(msg []byte, off, end int) (string, int, error) {
	name, next, err := ReadName(msg, off)
	if err != nil {
		return "", 0, err
	}
	if next > end {
		return "", 0, invalid("name overruns rdata")
	}
	return name, next, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, fmt.Sprintf(format, args...))
}

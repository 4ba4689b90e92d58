package rrdata

import (
	"net/netip"
	"testing"
)

func TestDecodeAData_Valid(t *testing.T) {
	tests := []struct {
		input    []byte
		expected string
	}{
		{[]byte{192, 168, 0, 1}, "192.168.0.1"},
		{[]byte{8, 8, 8, 8}, "8.8.8.8"},
		{[]byte{127, 0, 0, 1}, "127.0.0.1"},
	}

	for _, tt := range tests {
		got, err := decodeAData(tt.input)
		if err != nil {
			t.Errorf("decodeAData(%v) returned error: %v", tt.input, err)
			continue
		}
		if got != (A{Addr: netip.MustParseAddr(tt.expected)}) {
			t.Errorf("decodeAData(%v) = %v, want %s", tt.input, got, tt.expected)
		}
		if got.String() != tt.expected {
			t.Errorf("A.String() = %q, want %q", got.String(), tt.expected)
		}
	}
}

func TestDecodeAData_InvalidLength(t *testing.T) {
	invalidInputs := [][]byte{
		nil,
		{127, 0, 1},
		{127, 0, 0, 1, 0},
		make([]byte, 16),
	}

	for _, input := range invalidInputs {
		got, err := decodeAData(input)
		if err == nil {
			t.Errorf("decodeAData(%v) expected error, got nil", input)
		}
		if got != nil {
			t.Errorf("decodeAData(%v) expected nil, got %v", input, got)
		}
	}
}

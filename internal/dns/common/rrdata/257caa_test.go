package rrdata

import "testing"

func TestDecodeCAAData(t *testing.T) {
	tests := []struct {
		input    []byte
		expected CAA
		render   string
	}{
		{append([]byte{0, 5}, "issueletsencrypt.org"...), CAA{Flags: 0, Tag: "issue", Value: "letsencrypt.org"}, `0 issue "letsencrypt.org"`},
		{append([]byte{128, 5}, "iodefmailto:sec@example.com"...), CAA{Flags: 128, Tag: "iodef", Value: "mailto:sec@example.com"}, `128 iodef "mailto:sec@example.com"`},
		{append([]byte{0, 9}, "issuewild"...), CAA{Flags: 0, Tag: "issuewild", Value: ""}, `0 issuewild ""`},
	}

	for _, tt := range tests {
		got, err := decodeCAAData(tt.input)
		if err != nil {
			t.Errorf("decodeCAAData(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("decodeCAAData(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
		if got.String() != tt.render {
			t.Errorf("CAA.String() = %q, want %q", got.String(), tt.render)
		}
	}
}

func TestDecodeCAAData_Invalid(t *testing.T) {
	invalidInputs := [][]byte{
		nil,
		{0},
		{0, 0},
		{0, 9, 'i', 's'},
	}

	for _, input := range invalidInputs {
		got, err := decodeCAAData(input)
		if err == nil {
			t.Errorf("decodeCAAData(%v) expected error, got nil", input)
		}
		if got != nil {
			t.Errorf("decodeCAAData(%v) expected nil, got %v", input, got)
		}
	}
}

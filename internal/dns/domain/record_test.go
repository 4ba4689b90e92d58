package domain

import "testing"

type stringData string

func (s stringData) String() string { return string(s) }

func TestResourceRecord_String(t *testing.T) {
	rr := ResourceRecord{
		Name:  "example.com",
		Type:  RRTypeA,
		Class: RRClassIN,
		TTL:   300,
		Data:  stringData("192.0.2.1"),
	}
	if got, want := rr.String(), "example.com 300 IN A 192.0.2.1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	rr.Data = nil
	if got, want := rr.String(), "example.com 300 IN A "; got != want {
		t.Errorf("String() without data = %q, want %q", got, want)
	}
}

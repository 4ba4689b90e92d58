package rrdata

import (
	"testing"

	"github.com/haukened/dnsping/internal/dns/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTXTData_ConcatenatesSegments(t *testing.T) {
	b := []byte{5, 'h', 'e', 'l', 'l', 'o', 0, 6, ' ', 'w', 'o', 'r', 'l', 'd'}

	got, err := Decode(domain.RRTypeTXT, b, 0, len(b))
	require.NoError(t, err)

	txt, ok := got.(TXT)
	require.True(t, ok)
	assert.Equal(t, []string{"hello", "", " world"}, txt.Segments)
	assert.Equal(t, "hello world", txt.String())
}

func TestTXT_StringNoSeparator(t *testing.T) {
	assert.Equal(t, "v=spf1 -all", TXT{Segments: []string{"v=spf1", " -all"}}.String())
	assert.Equal(t, "ab", TXT{Segments: []string{"a", "b"}}.String())
}

func TestOpaque_String(t *testing.T) {
	assert.Equal(t, `\# 0`, Opaque{Type: domain.RRType(99)}.String())
	assert.Equal(t, `\# 2 0aff`, Opaque{Type: domain.RRType(99), Data: []byte{0x0a, 0xff}}.String())
}

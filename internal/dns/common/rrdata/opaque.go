package rrdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// Opaque is rdata of a type without a dedicated decoder, kept as raw bytes.
type Opaque struct {
	Type domain.RRType
	Data []byte
}

// String renders the data in the RFC 3597 generic form, e.g. `\# 2 0a0b`.
func (o Opaque) String() string {
	if len(o.Data) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %s`, len(o.Data), hex.EncodeToString(o.Data))
}

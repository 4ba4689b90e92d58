package domain

import "fmt"

// RData is the decoded payload of a resource record. Implementations render
// themselves in zone-file presentation form.
type RData interface {
	fmt.Stringer
}

// ResourceRecord is one record of the answer section of a response.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  RData
}

// String renders the record as "name ttl class type data".
func (rr ResourceRecord) String() string {
	data := ""
	if rr.Data != nil {
		data = rr.Data.String()
	}
	return fmt.Sprintf("%s %d %s %s %s", rr.Name, rr.TTL, rr.Class, rr.Type, data)
}

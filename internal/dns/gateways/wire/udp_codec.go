// Package wire provides encoding and decoding of DNS messages for UDP transport.
// It handles the DNS wire format as specified in RFC 1035.
package wire

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/net/idna"

	"github.com/haukened/dnsping/internal/dns/common/log"
	"github.com/haukened/dnsping/internal/dns/common/rrdata"
	"github.com/haukened/dnsping/internal/dns/domain"
)

// UDPCodec encodes probe queries and decodes their responses.
type UDPCodec struct {
	logger log.Logger
}

// NewUDPCodec creates and returns a new UDPCodec using the provided logger.
func NewUDPCodec(logger log.Logger) *UDPCodec {
	return &UDPCodec{
		logger: logger,
	}
}

// EncodeQuery serializes a Question into a recursion-desired query message.
//
// A name that does not fit the wire limits is not an error: encoding stops
// before the first label that would break a limit, the name is terminated
// there and the TC bit is set on the query, which is still sent.
func (c *UDPCodec) EncodeQuery(query domain.Question) ([]byte, error) {
	if !query.Type.IsValid() {
		return nil, fmt.Errorf("unsupported RRType: %d", query.Type)
	}
	class := query.Class
	if class == 0 {
		class = domain.RRClassIN
	}

	qname, complete := encodeName(asciiName(query.Name))
	flags := domain.Flags{RecursionDesired: true, Truncated: !complete}
	if !complete {
		c.logger.Warn(map[string]any{
			"name":    query.Name,
			"encoded": len(qname),
		}, "Query name exceeds wire limits, sending truncated name")
	}

	buf := make([]byte, headerLen, headerLen+len(qname)+4)
	binary.BigEndian.PutUint16(buf[0:], query.ID)
	binary.BigEndian.PutUint16(buf[2:], flags.Wire())
	binary.BigEndian.PutUint16(buf[4:], 1) // QDCOUNT
	buf = append(buf, qname...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(query.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(class))

	c.logger.Debug(map[string]any{
		"id":   query.ID,
		"name": query.Name,
		"type": query.Type.String(),
		"size": len(buf),
	}, "Encoded query")
	return buf, nil
}

// asciiName converts an internationalized name to its A-label form. Names
// IDNA refuses are sent as given.
func asciiName(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			if ascii, err := idna.Lookup.ToASCII(name); err == nil {
				return ascii
			}
			return name
		}
	}
	return name
}

// encodeName returns the wire form of name and whether all labels fit.
func encodeName(name string) ([]byte, bool) {
	name = strings.TrimSuffix(name, ".")
	encoded := make([]byte, 0, len(name)+2)
	if name == "" {
		return append(encoded, 0), true
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		// +1 length octet now, +1 for the root label still to come
		if len(label) > maxLabelLen || len(encoded)+len(label)+2 > maxNameLen {
			return append(encoded, 0), false
		}
		encoded = append(encoded, byte(len(label)))
		encoded = append(encoded, label...)
	}
	return append(encoded, 0), true
}

// DecodeResponse parses a raw DNS response, validating the response ID and
// decoding the question and answer sections. Authority and additional
// records are counted, not parsed.
func (c *UDPCodec) DecodeResponse(data []byte, expectedID uint16) (domain.Response, error) {
	if len(data) < headerLen {
		return domain.Response{}, fmt.Errorf("%w: response of %d octets is shorter than the header", ErrMalformed, len(data))
	}
	id := binary.BigEndian.Uint16(data[0:2])
	if id != expectedID {
		return domain.Response{}, fmt.Errorf("%w: ID mismatch: expected %d, got %d", ErrMalformed, expectedID, id)
	}

	flags := binary.BigEndian.Uint16(data[2:4])
	resp := domain.Response{
		ID:              id,
		Opcode:          domain.Opcode((flags >> 11) & 0x0F),
		Flags:           domain.FlagsFromWire(flags),
		RCode:           domain.RCode(flags & 0x000F),
		QuestionCount:   binary.BigEndian.Uint16(data[4:6]),
		AuthorityCount:  binary.BigEndian.Uint16(data[8:10]),
		AdditionalCount: binary.BigEndian.Uint16(data[10:12]),
	}
	anCount := int(binary.BigEndian.Uint16(data[6:8]))

	offset := headerLen
	for i := 0; i < int(resp.QuestionCount); i++ {
		q, next, err := parseQuestion(data, offset)
		if err != nil {
			return domain.Response{}, fmt.Errorf("question %d: %w", i, err)
		}
		if i == 0 {
			q.ID = id
			resp.Question = q
		}
		offset = next
	}

	resp.Answers = make([]domain.ResourceRecord, 0, anCount)
	for i := 0; i < anCount; i++ {
		rr, next, err := parseResourceRecord(data, offset)
		if err != nil {
			return domain.Response{}, fmt.Errorf("answer %d: %w", i, err)
		}
		resp.Answers = append(resp.Answers, rr)
		offset = next
	}

	c.logger.Debug(map[string]any{
		"id":      id,
		"rcode":   resp.RCode.String(),
		"answers": len(resp.Answers),
		"size":    len(data),
	}, "Decoded response")
	return resp, nil
}

// parseQuestion decodes one question entry.
func parseQuestion(data []byte, offset int) (domain.Question, int, error) {
	name, offset, err := rrdata.ReadName(data, offset)
	if err != nil {
		return domain.Question{}, 0, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if offset+4 > len(data) {
		return domain.Question{}, 0, fmt.Errorf("%w: truncated question", ErrMalformed)
	}
	q := domain.Question{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(data[offset:])),
		Class: domain.RRClass(binary.BigEndian.Uint16(data[offset+2:])),
	}
	if !q.Type.IsValid() {
		return domain.Question{}, 0, fmt.Errorf("%w: question type %s", ErrUnsupportedType, q.Type)
	}
	if !q.Class.IsValid() {
		return domain.Question{}, 0, fmt.Errorf("%w: question class %s", ErrUnsupportedType, q.Class)
	}
	return q, offset + 4, nil
}

// parseResourceRecord extracts a single resource record from DNS response data.
func parseResourceRecord(data []byte, offset int) (domain.ResourceRecord, int, error) {
	name, offset, err := rrdata.ReadName(data, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: record name: %w", ErrMalformed, err)
	}
	if offset+10 > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: truncated record header", ErrMalformed)
	}

	rrtype := domain.RRType(binary.BigEndian.Uint16(data[offset:]))
	rrclass := domain.RRClass(binary.BigEndian.Uint16(data[offset+2:]))
	ttl := binary.BigEndian.Uint32(data[offset+4:])
	rdLen := int(binary.BigEndian.Uint16(data[offset+8:]))
	offset += 10

	if !rrclass.IsValid() {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: record class %s", ErrUnsupportedType, rrclass)
	}
	if offset+rdLen > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: truncated rdata", ErrMalformed)
	}
	rd, err := rrdata.Decode(rrtype, data, offset, rdLen)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: %s rdata: %w", ErrMalformed, rrtype, err)
	}

	return domain.ResourceRecord{
		Name:  name,
		Type:  rrtype,
		Class: rrclass,
		TTL:   ttl,
		Data:  rd,
	}, offset + rdLen, nil
}

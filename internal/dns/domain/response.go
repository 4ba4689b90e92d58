package domain

import "fmt"

// Response is a decoded DNS response message.
// Only the answer section is decoded; the authority and additional
// sections are reported by count.
type Response struct {
	ID              uint16
	Opcode          Opcode
	Flags           Flags
	RCode           RCode
	Question        Question
	QuestionCount   uint16
	Answers         []ResourceRecord
	AuthorityCount  uint16
	AdditionalCount uint16
}

// Header renders the two dig-style header lines of the response.
func (r Response) Header() string {
	return fmt.Sprintf(";; opcode: %s, status: %s, id: %d\n;; flags: %s; QUERY: %d, ANSWER: %d, AUTHORITY: %d, ADDITIONAL: %d",
		r.Opcode, r.RCode, r.ID,
		r.Flags, r.QuestionCount, len(r.Answers), r.AuthorityCount, r.AdditionalCount)
}

package domain

import "errors"

// Decode outcomes shared by the wire codec and its callers.
var (
	// ErrMalformed means the message could not be parsed.
	ErrMalformed = errors.New("malformed DNS message")

	// ErrUnsupportedType means the message is well framed but carries a
	// record type or class the codec does not recognise.
	ErrUnsupportedType = errors.New("unsupported record type")
)

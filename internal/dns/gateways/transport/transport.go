// Package transport performs the network half of a probe: one DNS query sent
// over UDP and one response received, timed from send to receive.
package transport

import (
	"errors"
	"time"
)

// ErrIO is wrapped by every failure to bind, send, receive or close.
var ErrIO = errors.New("I/O error")

const (
	// DefaultTimeout bounds the wait for a response when none is given.
	DefaultTimeout = 2 * time.Second

	// maxMessageSize is the receive buffer; longer datagrams are truncated.
	maxMessageSize = 4096
)

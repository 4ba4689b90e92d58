package prober

import (
	"errors"
	"fmt"
)

// ErrServerFailure means the server answered with an rcode other than
// NOERROR or NXDOMAIN.
var ErrServerFailure = errors.New("server failed to answer")

// Stage identifies where a probe run was aborted.
type Stage int

const (
	StageResolve Stage = iota + 1
	StageEncode
	StageTransport
	StageDecode
	StageProtocol
)

var stageTags = map[Stage]string{
	StageResolve:   "ErrAddress",
	StageEncode:    "ErrDNSBuilder",
	StageTransport: "ErrIO",
	StageDecode:    "ErrDNSParser",
	StageProtocol:  "ErrProtocol",
}

// Tag returns the short error kind printed for the stage.
func (s Stage) Tag() string {
	if tag, ok := stageTags[s]; ok {
		return tag
	}
	return fmt.Sprintf("Err%d", int(s))
}

// Error is the error returned by Runner.Run when a run is aborted.
type Error struct {
	Stage Stage
	// Seq is the probe being sent; it is meaningless for StageResolve.
	Seq int
	Err error
}

func (e *Error) Error() string {
	if e.Stage == StageResolve {
		return fmt.Sprintf("%s: %v", e.Stage.Tag(), e.Err)
	}
	return fmt.Sprintf("%s: seq=%d: %v", e.Stage.Tag(), e.Seq, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

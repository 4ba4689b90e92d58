package domain

import "time"

// ProbeConfig is the validated, immutable configuration of one probe run.
type ProbeConfig struct {
	// Hostname is the name asked about in every query.
	Hostname string
	// Server is the nameserver as given by the user: an IP literal or a
	// hostname, optionally carrying its own port.
	Server string
	// Port is used when Server does not carry a port.
	Port uint16
	// Type is the record type queried.
	Type RRType
	// Count is the number of probes; zero is valid and sends nothing.
	Count int
	// Interval is the pause between consecutive probes.
	Interval time.Duration
	// Timeout bounds the wait for each response.
	Timeout time.Duration
	// Verbose prints the decoded response of every probe.
	Verbose bool
	// Family forces the IP family of the probe socket.
	Family AddressFamily
}

// Exchange is the raw outcome of one query/response round trip.
type Exchange struct {
	Elapsed time.Duration
	Payload []byte
}

// ProbeResult is the recorded outcome of one successful probe.
type ProbeResult struct {
	Seq     int
	Elapsed time.Duration
	Bytes   int
	Answers int
	// Decoded is false when the response was timed but could not be
	// decoded because it carried an unsupported record type.
	Decoded bool
}

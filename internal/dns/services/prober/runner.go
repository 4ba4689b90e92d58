// Package prober runs the probe loop: resolve the server once, then send
// Count timed queries and summarize their latency.
package prober

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/haukened/dnsping/internal/dns/common/clock"
	"github.com/haukened/dnsping/internal/dns/common/log"
	"github.com/haukened/dnsping/internal/dns/domain"
)

// Error message constants for consistent error handling
const (
	errResolverRequired  = "address resolver is required"
	errCodecRequired     = "DNS codec is required"
	errExchangerRequired = "exchanger is required"
	errNegativeCount     = "count must not be negative: %d"
)

// maxPreallocatedResults caps the up-front capacity of the result slice.
const maxPreallocatedResults = 1024

// Options wires a Runner. Resolver, Codec and Exchanger are required.
type Options struct {
	Config    domain.ProbeConfig
	Resolver  AddressResolver
	Codec     Codec
	Exchanger Exchanger
	// optional, defaulting to the real clock, no logging and stdout
	Clock  clock.Clock
	Logger log.Logger
	Out    io.Writer
}

// Runner executes one probe run. It is not safe for concurrent use.
type Runner struct {
	cfg       domain.ProbeConfig
	resolver  AddressResolver
	codec     Codec
	exchanger Exchanger
	clock     clock.Clock
	logger    log.Logger
	out       io.Writer
}

// NewRunner creates a Runner from opts.
func NewRunner(opts Options) (*Runner, error) {
	switch {
	case opts.Resolver == nil:
		return nil, errors.New(errResolverRequired)
	case opts.Codec == nil:
		return nil, errors.New(errCodecRequired)
	case opts.Exchanger == nil:
		return nil, errors.New(errExchangerRequired)
	case opts.Config.Count < 0:
		return nil, fmt.Errorf(errNegativeCount, opts.Config.Count)
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Runner{
		cfg:       opts.Config,
		resolver:  opts.Resolver,
		codec:     opts.Codec,
		exchanger: opts.Exchanger,
		clock:     opts.Clock,
		logger:    opts.Logger,
		out:       opts.Out,
	}, nil
}

// Run resolves the server, sends the configured number of probes and
// returns their latency summary. The first failing probe aborts the run with
// an *Error and no summary line is printed. Cancelling ctx stops the run
// before the next probe; the probes already finished are summarized and no
// error is returned.
func (r *Runner) Run(ctx context.Context) (domain.Summary, error) {
	endpoint, err := r.resolver.Resolve(ctx, r.cfg.Server, r.cfg.Port)
	if err != nil {
		return domain.Summary{}, &Error{Stage: StageResolve, Err: err}
	}
	r.logger.Info(map[string]any{
		"server":   r.cfg.Server,
		"endpoint": endpoint.String(),
		"name":     r.cfg.Hostname,
		"type":     r.cfg.Type.String(),
		"count":    r.cfg.Count,
	}, "Starting probe run")

	if r.cfg.Count == 0 {
		r.logger.Info(nil, "Count is zero, nothing to send")
		return domain.Summary{}, nil
	}
	fmt.Fprintf(r.out, "dnsping server: %s, hostname: %s\n", r.cfg.Server, r.cfg.Hostname)

	results := make([]domain.ProbeResult, 0, min(r.cfg.Count, maxPreallocatedResults))
	for seq := 0; seq < r.cfg.Count; seq++ {
		if err := ctx.Err(); err != nil {
			r.logger.Warn(map[string]any{
				"completed": len(results),
				"reason":    err.Error(),
			}, "Probe run interrupted")
			break
		}

		result, err := r.probe(ctx, endpoint, seq)
		if err != nil {
			return domain.Summary{}, err
		}
		results = append(results, result)

		if seq < r.cfg.Count-1 && r.cfg.Interval > 0 {
			r.clock.Sleep(r.cfg.Interval)
		}
	}

	summary := domain.Summarize(results)
	if summary.Count > 0 {
		fmt.Fprintln(r.out, summary)
	}
	return summary, nil
}

// probe sends query number seq and prints its outcome.
func (r *Runner) probe(ctx context.Context, endpoint domain.Endpoint, seq int) (domain.ProbeResult, error) {
	//gosec:disable G115 -- IDs wrap after 65535 probes.
	id := uint16(seq + 1)
	question, err := domain.NewQuestion(id, r.cfg.Hostname, r.cfg.Type)
	if err != nil {
		return domain.ProbeResult{}, &Error{Stage: StageEncode, Seq: seq, Err: err}
	}
	query, err := r.codec.EncodeQuery(question)
	if err != nil {
		return domain.ProbeResult{}, &Error{Stage: StageEncode, Seq: seq, Err: err}
	}

	ex, err := r.exchanger.Exchange(ctx, endpoint, query, r.cfg.Timeout)
	if err != nil {
		return domain.ProbeResult{}, &Error{Stage: StageTransport, Seq: seq, Err: err}
	}

	result := domain.ProbeResult{
		Seq:     seq,
		Elapsed: ex.Elapsed.Truncate(time.Microsecond),
		Bytes:   len(ex.Payload),
		Decoded: true,
	}

	resp, err := r.codec.DecodeResponse(ex.Payload, id)
	switch {
	case errors.Is(err, domain.ErrUnsupportedType):
		result.Decoded = false
		r.logger.Info(map[string]any{
			"seq":   seq,
			"error": err.Error(),
		}, "Response not decoded, recording timing only")
	case err != nil:
		return domain.ProbeResult{}, &Error{Stage: StageDecode, Seq: seq, Err: err}
	case !resp.RCode.Answered():
		return domain.ProbeResult{}, &Error{Stage: StageProtocol, Seq: seq, Err: fmt.Errorf("%w: %s", ErrServerFailure, resp.RCode)}
	default:
		result.Answers = len(resp.Answers)
		if r.cfg.Verbose {
			r.printResponse(resp)
		}
	}

	fields := map[string]any{
		"seq":     seq,
		"id":      id,
		"bytes":   result.Bytes,
		"rtt_us":  result.Elapsed.Microseconds(),
		"decoded": result.Decoded,
	}
	if result.Decoded {
		fields["rcode"] = resp.RCode.String()
	}
	r.logger.Debug(fields, "Probe complete")

	fmt.Fprintf(r.out, "%d bytes from %s: seq=%d time=%.3f ms\n", result.Bytes, r.cfg.Server, seq, domain.Millis(result.Elapsed))
	return result, nil
}

func (r *Runner) printResponse(resp domain.Response) {
	fmt.Fprintln(r.out, resp.Header())
	fmt.Fprintf(r.out, "got %d answers:\n", len(resp.Answers))
	for _, rr := range resp.Answers {
		fmt.Fprintln(r.out, rr)
	}
}

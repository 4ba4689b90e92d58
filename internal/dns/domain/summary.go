package domain

import (
	"fmt"
	"time"
)

// Summary holds aggregate latency statistics over a run.
type Summary struct {
	Count int
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Summarize computes min, max and arithmetic mean of the elapsed times.
// An empty slice yields the zero Summary.
func Summarize(results []ProbeResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(results),
		Min:   results[0].Elapsed,
		Max:   results[0].Elapsed,
	}
	var total time.Duration
	for _, r := range results {
		s.Min = min(s.Min, r.Elapsed)
		s.Max = max(s.Max, r.Elapsed)
		total += r.Elapsed
	}
	s.Avg = total / time.Duration(len(results))
	return s
}

// String renders the summary line, e.g. "min=1.200 ms, max=3.400 ms, avg=2.300 ms".
func (s Summary) String() string {
	return fmt.Sprintf("min=%.3f ms, max=%.3f ms, avg=%.3f ms", Millis(s.Min), Millis(s.Max), Millis(s.Avg))
}

// Millis converts d to fractional milliseconds at microsecond resolution.
func Millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

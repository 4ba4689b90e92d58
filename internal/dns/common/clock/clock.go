// Package clock abstracts wall-clock reads and the pause between probes so
// the probe loop can be driven deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock tells the time and pauses the caller.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock uses the time package.
type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d. It is not interruptible.
func (c RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// MockClock never blocks: Sleep advances CurrentTime and records the
// requested duration.
type MockClock struct {
	mu          sync.Mutex
	CurrentTime time.Time
	Sleeps      []time.Duration
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CurrentTime
}

func (c *MockClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sleeps = append(c.Sleeps, d)
	c.CurrentTime = c.CurrentTime.Add(d)
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Slept returns a copy of the durations passed to Sleep so far.
func (c *MockClock) Slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.Sleeps...)
}

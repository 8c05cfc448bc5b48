package animation

import (
	"sync"
	"time"
)

// Clock provides time for tickers. The default implementation uses system
// time. Replay and tests install a FrameClock via SetClock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = realClock{}
)

// SetClock replaces the package clock and returns the previous one so
// callers can restore it. A nil c restores system time.
func SetClock(c Clock) Clock {
	if c == nil {
		c = realClock{}
	}
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}

// FrameClock is a Clock that only moves when stepped, one frame at a time.
type FrameClock struct {
	mu       sync.Mutex
	now      time.Time
	interval time.Duration
}

// NewFrameClock returns a clock that advances 1/fps seconds per Step.
// A non-positive fps is treated as 60.
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{
		now:      time.Unix(0, 0),
		interval: time.Second / time.Duration(fps),
	}
}

// Now returns the clock's current time.
func (c *FrameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Interval returns the frame duration.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// Step advances the clock by one frame.
func (c *FrameClock) Step() {
	c.mu.Lock()
	c.now = c.now.Add(c.interval)
	c.mu.Unlock()
}

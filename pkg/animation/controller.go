package animation

import (
	"fmt"
	"time"
)

// Status is the state of a Controller.
//
//	         Forward()            elapsed >= Duration
//	Idle ──────────────► Running ─────────────────────► Completed
//	  ▲                                                     │
//	  └──────────────────────── Reset() ────────────────────┘
type Status int

const (
	// StatusIdle means the controller is at 0 and not running.
	StatusIdle Status = iota
	// StatusRunning means the controller advances on every frame.
	StatusRunning
	// StatusCompleted means the controller reached 1 and stopped.
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller advances Value from 0 to 1 over Duration, one frame at a time.
// Listeners run on every frame with the eased value; the last frame always
// delivers exactly 1.
//
// A Controller is not safe for concurrent use. Frames are delivered on the
// goroutine that calls StepTickers.
type Controller struct {
	// Value is the eased progress in [0, 1] as of the last frame.
	Value float64
	// Duration is the length of the run.
	Duration time.Duration
	// Curve eases linear progress. Nil means Linear.
	Curve Curve

	status          Status
	ticker          *Ticker
	elapsed         time.Duration
	listeners       map[int]func(elapsed time.Duration, value float64)
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates an idle controller.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:        duration,
		Curve:           Linear,
		listeners:       make(map[int]func(time.Duration, float64)),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward starts the run from the beginning. The first frame fires on the
// next StepTickers call.
func (c *Controller) Forward() {
	c.Stop()
	c.Value = 0
	c.elapsed = 0
	c.setStatus(StatusRunning)
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	c.elapsed = elapsed
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}

	c.Value = progress
	if c.Curve != nil && progress < 1 {
		c.Value = c.Curve(progress)
	}
	for _, listener := range c.listeners {
		listener(elapsed, c.Value)
	}

	if progress >= 1 {
		c.Stop()
		c.setStatus(StatusCompleted)
	}
}

// Elapsed returns the time covered by the last frame.
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}

// Stop halts the run at the current value.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Reset stops the run and returns to idle at 0.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = 0
	c.elapsed = 0
	c.setStatus(StatusIdle)
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsRunning reports whether frames are still being delivered.
func (c *Controller) IsRunning() bool {
	return c.ticker != nil
}

// AddListener registers fn for every frame and returns an unsubscribe func.
func (c *Controller) AddListener(fn func(elapsed time.Duration, value float64)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// AddStatusListener registers fn for status changes and returns an
// unsubscribe func.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() { delete(c.statusListeners, id) }
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

// Dispose stops the controller and drops its listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}

package core

import (
	"fmt"
	"time"
)

// FixedStep accumulates elapsed time and reports how many fixed-length
// updates are due. Leftover time carries over to the next call.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting ups updates per
// second.
func NewFixedStep(ups int) (*FixedStep, error) {
	fs := &FixedStep{}
	if err := fs.SetUPS(ups); err != nil {
		return nil, err
	}
	return fs, nil
}

// SetUPS changes the update rate. Accumulated time is kept.
func (f *FixedStep) SetUPS(ups int) error {
	if ups <= 0 {
		return fmt.Errorf("%w: updates per second must be positive, got %d", ErrConfiguration, ups)
	}
	f.step = time.Second / time.Duration(ups)
	return nil
}

// Step returns the duration of one update.
func (f *FixedStep) Step() time.Duration { return f.step }

// Waiting returns the accumulated time not yet consumed by an update.
func (f *FixedStep) Waiting() time.Duration { return f.accumulator }

// Add banks elapsed time. Negative values are ignored.
func (f *FixedStep) Add(elapsed time.Duration) {
	if elapsed > 0 {
		f.accumulator += elapsed
	}
}

// Consume takes one update's worth of time from the accumulator and reports
// whether enough was banked.
func (f *FixedStep) Consume() bool {
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	return true
}

// Reset drops any banked time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Clock measures wall time between successive Lap calls.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock returns a Clock started at the current time.
func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.last = c.now()
	return c
}

// Lap returns the time since the previous Lap (or since NewClock).
func (c *Clock) Lap() time.Duration {
	now := c.now()
	delta := now.Sub(c.last)
	c.last = now
	return delta
}

package dragdrop

import "time"

// Clock reports monotonic elapsed time since a fixed origin. Hold-to-drag
// deadlines and snap-back tweens are measured against it.
type Clock interface {
	Elapsed() time.Duration
}

// NewClock returns a Clock measuring wall time from now.
func NewClock() Clock {
	return &realClock{start: time.Now()}
}

type realClock struct {
	start time.Time
}

func (c *realClock) Elapsed() time.Duration { return time.Since(c.start) }

// ManualClock is a Clock advanced from code, for tests and replays.
type ManualClock struct {
	Now time.Duration
}

// Elapsed returns the current manual time.
func (c *ManualClock) Elapsed() time.Duration { return c.Now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.Now += d }

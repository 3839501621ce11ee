package claylake

import (
	"math"
	"time"
)

// NormalizedTime converts elapsed wall-clock time into loop progress in
// [0, 1): (elapsed seconds mod LoopSeconds) / LoopSeconds.
func NormalizedTime(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return WrapTime(math.Mod(ms/1000, LoopSeconds) / LoopSeconds)
}

// Clock measures elapsed time since the scene was mounted. It can be paused
// and seeked, which is how capture scripts pin exact frames.
type Clock struct {
	now    func() time.Time
	start  time.Time
	paused bool
	frozen time.Duration
}

// NewClock returns a running clock that starts now.
func NewClock() *Clock {
	return newClockWithSource(time.Now)
}

func newClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now, start: now()}
}

// Elapsed returns the running time, excluding time spent paused.
func (c *Clock) Elapsed() time.Duration {
	if c.paused {
		return c.frozen
	}
	return c.now().Sub(c.start)
}

// T returns the normalized loop time.
func (c *Clock) T() float64 {
	return NormalizedTime(c.Elapsed())
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// Pause freezes elapsed time. Pausing a paused clock is a no-op.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.frozen = c.Elapsed()
	c.paused = true
}

// Resume continues from the frozen elapsed time.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.start = c.now().Add(-c.frozen)
	c.paused = false
}

// Toggle flips between paused and running.
func (c *Clock) Toggle() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

// Seek sets the elapsed time, keeping the paused state.
func (c *Clock) Seek(elapsed time.Duration) {
	if c.paused {
		c.frozen = elapsed
		return
	}
	c.start = c.now().Add(-elapsed)
}

// SeekT seeks to normalized loop time t within the first loop.
func (c *Clock) SeekT(t float64) {
	c.Seek(time.Duration(math.Round(WrapTime(t) * LoopSeconds * float64(time.Second))))
}

package claylake

import "time"

// frameStats holds per-painter timings for one frame. Only populated when
// the scene is in debug mode.
type frameStats struct {
	background time.Duration
	water      time.Duration
	characters time.Duration
}

func (s frameStats) total() time.Duration {
	return s.background + s.water + s.characters
}

// RenderFrame paints one complete frame at normalized time t and returns the
// animation state it drew. It is a pure function of (sz, t): nothing is
// carried over from previous frames.
func RenderFrame(c Canvas, sz Size, t float64) Frame {
	frame, _ := renderFrame(c, sz, t, false)
	return frame
}

func renderFrame(c Canvas, sz Size, t float64, timed bool) (Frame, frameStats) {
	var stats frameStats
	var t0 time.Time
	if timed {
		t0 = time.Now()
	}

	PaintBackground(c, sz, t)
	if timed {
		stats.background = time.Since(t0)
		t0 = time.Now()
	}

	PaintWater(c, sz, t)
	if timed {
		stats.water = time.Since(t0)
		t0 = time.Now()
	}

	frame := Animate(t, sz)
	PaintEagle(c, frame.Eagle, frame.Flap, sz)
	if frame.Ripple.Visible {
		PaintRipples(c, frame.Ripple.X, frame.Ripple.Y, frame.Ripple.Phase, sz)
	}
	PaintFish(c, frame.Fish, sz)
	if timed {
		stats.characters = time.Since(t0)
	}
	return frame, stats
}

package claylake

import "math"

const rippleRings = 4

// PaintRipples draws rippleRings concentric ellipses expanding from (x, y).
// phase in [0, 1) drives the expansion; each ring is offset by a quarter so
// one ring is always being born as another fades out.
func PaintRipples(c Canvas, x, y, phase float64, sz Size) {
	u := sz.Unit()
	for i := 0; i < rippleRings; i++ {
		q := math.Mod(phase+float64(i)/rippleRings, 1)
		rx := (8 + 46*q) * u
		a := (1 - q) * 0.45 * (1 - 0.2*float64(i))
		ring := NewPath().Ellipse(x, y, rx, rx*0.28)
		c.Stroke(ring, SolidPaint(rippleColor.WithAlpha(a)), 1.5*u)
	}
}

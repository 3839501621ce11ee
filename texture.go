package claylake

import "math"

// RingTexture returns a value in [0, 1] from two sine terms of the radial
// distance of (x, y) from the origin. Painters use it to modulate opacity so
// surfaces look thumb-pressed without any per-frame randomness. Inputs are in
// design units so the pattern scales with the surface.
func RingTexture(x, y float64) float64 {
	d := math.Hypot(x, y)
	return 0.5 + 0.3*math.Sin(0.35*d) + 0.2*math.Sin(0.11*d+1.3)
}

package claylake

import "github.com/tanema/gween/ease"

// applyEase evaluates a gween easing curve over the unit interval. gween
// works in float32, which is far below a pixel at any realistic size.
func applyEase(fn ease.TweenFunc, k float64) float64 {
	switch {
	case k <= 0:
		return 0
	case k >= 1:
		return 1
	}
	return float64(fn(float32(k), 0, 1, 1))
}

func easeInOut(k float64) float64 { return applyEase(ease.InOutSine, k) }
func easeIn(k float64) float64    { return applyEase(ease.InQuad, k) }
func easeOut(k float64) float64   { return applyEase(ease.OutQuad, k) }

// smoothstep is the cubic Hermite ramp 3k²−2k³, clamped to [0, 1].
func smoothstep(k float64) float64 {
	k = clamp01(k)
	return k * k * (3 - 2*k)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

package claylake

import "math"

// LoopSeconds is the length of one full animation cycle.
const LoopSeconds = 12

// referenceBase is the short side of the reference 360x640 viewport. Absolute
// distances are authored against it and scaled by Size.Unit.
const referenceBase = 360

// waterLine is the fraction of the surface height where the lake begins.
const waterLine = 0.62

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// premultiplied returns the color as premultiplied float32 components, the
// layout Kage uniforms and ebiten vertices expect.
func (c Color) premultiplied() []float32 {
	a := clamp01(c.A)
	return []float32{
		float32(clamp01(c.R) * a),
		float32(clamp01(c.G) * a),
		float32(clamp01(c.B) * a),
		float32(a),
	}
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Size is the logical size of the drawing surface in device-independent units.
type Size struct {
	Width, Height float64
}

// Base returns min(Width, Height). Every character and texture proportion
// derives from it.
func (s Size) Base() float64 {
	return math.Min(s.Width, s.Height)
}

// Unit returns the design unit: one reference pixel at the 360x640 viewport.
func (s Size) Unit() float64 {
	return s.Base() / referenceBase
}

// WaterTop returns the y coordinate of the lake surface.
func (s Size) WaterTop() float64 {
	return waterLine * s.Height
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package claylake

import "math"

var (
	eagleWing    = RGB(0x5a, 0x3a, 0x22)
	eagleWingTip = RGB(0x3b, 0x25, 0x16)
	eagleBody    = RGB(0x6e, 0x47, 0x2a)
	eagleHead    = RGB(0xf7, 0xf3, 0xe8)
	eagleBeak    = RGB(0xf2, 0xb7, 0x2e)
	eagleTalon   = RGB(0xd9, 0x9a, 0x1e)
	eagleEye     = RGB(0x1f, 0x16, 0x10)
	featherLine  = RGB(0x2a, 0x1a, 0x0f)
)

// eagleSpan is the eagle's reference size as a fraction of min(width, height).
const eagleSpan = 0.22

// feathers is the number of texture strokes along each wing.
const feathers = 5

// PaintEagle draws the eagle at pose with wings opened by flap radians. The
// eagle faces +x.
func PaintEagle(c Canvas, pose Pose, flap float64, sz Size) {
	if !pose.Visible {
		return
	}
	e := eagleSpan * sz.Base()
	u := sz.Unit()
	line := 0.012 * e

	c.Save()
	defer c.Restore()
	c.Translate(pose.X, pose.Y)
	c.Rotate(pose.Rotation)
	c.Scale(pose.ScaleX, pose.ScaleY)

	// Far wing first so the body covers its root.
	paintWing(c, e, u, line, -flap-0.25, 0.8)

	tail := NewPath().
		MoveTo(-0.26*e, -0.03*e).
		LineTo(-0.48*e, -0.09*e).
		LineTo(-0.50*e, 0.07*e).
		LineTo(-0.26*e, 0.05*e).
		Close()
	c.Fill(tail, SolidPaint(eagleWingTip))

	body := NewPath().Ellipse(0, 0, 0.30*e, 0.11*e)
	c.Fill(body, LinearGradient(0, -0.11*e, 0, 0.11*e,
		ColorStop{0, eagleBody},
		ColorStop{1, eagleWingTip},
	))

	for i := 0; i < 3; i++ {
		x := 0.08*e - 0.06*e*float64(i)
		talon := NewPath().
			MoveTo(x, 0.08*e).
			LineTo(x+0.01*e, 0.17*e).
			LineTo(x+0.04*e, 0.19*e)
		c.Stroke(talon, SolidPaint(eagleTalon), line*1.8)
	}

	c.Fill(NewPath().Circle(0.30*e, -0.06*e, 0.085*e), SolidPaint(eagleHead))
	beak := NewPath().
		MoveTo(0.37*e, -0.09*e).
		CubicTo(0.44*e, -0.09*e, 0.47*e, -0.05*e, 0.45*e, -0.01*e).
		LineTo(0.41*e, -0.04*e).
		LineTo(0.37*e, -0.03*e).
		Close()
	c.Fill(beak, SolidPaint(eagleBeak))
	c.Fill(NewPath().Circle(0.33*e, -0.08*e, 0.014*e), SolidPaint(eagleEye))

	paintWing(c, e, u, line, -flap, 1)
}

// paintWing draws one wing rooted on the body's back, rotated by angle and
// shaded by alpha so the far wing reads as further away.
func paintWing(c Canvas, e, u, line, angle, alpha float64) {
	c.Save()
	defer c.Restore()
	c.Translate(0.02*e, -0.05*e)
	c.Rotate(angle)

	wing := NewPath().
		MoveTo(0.10*e, 0).
		CubicTo(0.02*e, -0.28*e, -0.22*e, -0.44*e, -0.46*e, -0.40*e).
		CubicTo(-0.32*e, -0.26*e, -0.20*e, -0.08*e, -0.14*e, 0.02*e).
		Close()
	c.Fill(wing, LinearGradient(0, 0, -0.46*e, -0.40*e,
		ColorStop{0, eagleWing.WithAlpha(alpha)},
		ColorStop{1, eagleWingTip.WithAlpha(alpha)},
	))

	for i := 0; i < feathers; i++ {
		f := float64(i) / (feathers - 1)
		x := lerp(-0.12*e, -0.40*e, f)
		y := lerp(-0.02*e, -0.33*e, f)
		a := alpha * (0.15 + 0.35*RingTexture(x/u, y/u))
		dx, dy := math.Cos(0.9)*0.08*e, math.Sin(0.9)*0.08*e
		c.Stroke(NewPath().MoveTo(x, y).LineTo(x+dx, y+dy), SolidPaint(featherLine.WithAlpha(a)), line)
	}
}

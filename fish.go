package claylake

var (
	fishBack  = RGB(0xf2, 0x8c, 0x38)
	fishBelly = RGB(0xfb, 0xd0, 0x8a)
	fishTail  = RGB(0xe0, 0x6a, 0x2a)
	fishRing  = RGB(0xa8, 0x4a, 0x18)
	fishEye   = RGB(0xfd, 0xfb, 0xf4)
	fishPupil = RGB(0x2a, 0x1e, 0x1a)
)

// fishLength is the body length as a fraction of min(width, height).
const fishLength = 0.13

// PaintFish draws the fish at pose. The fish faces -x; its tail is at +x.
func PaintFish(c Canvas, pose Pose, sz Size) {
	if !pose.Visible {
		return
	}
	l := fishLength * sz.Base()
	h := l * 0.56
	u := sz.Unit()
	line := 0.012 * l

	c.Save()
	defer c.Restore()
	c.Translate(pose.X, pose.Y)
	c.Rotate(pose.Rotation)
	c.Scale(pose.ScaleX, pose.ScaleY)

	tail := NewPath().
		MoveTo(0.36*l, 0).
		LineTo(0.70*l, -0.46*h).
		CubicTo(0.60*l, -0.12*h, 0.60*l, 0.12*h, 0.70*l, 0.46*h).
		Close()
	c.Fill(tail, LinearGradient(0.36*l, 0, 0.70*l, 0,
		ColorStop{0, fishBack},
		ColorStop{1, fishTail},
	))

	fin := NewPath().Ellipse(0.02*l, -0.44*h, 0.16*l, 0.12*h)
	c.Fill(fin, SolidPaint(fishTail))

	body := NewPath().RoundRect(-0.5*l, -0.5*h, l, h, 0.5*h)
	c.Fill(body, LinearGradient(0, -0.5*h, 0, 0.5*h,
		ColorStop{0, fishBack},
		ColorStop{0.55, fishBack},
		ColorStop{1, fishBelly},
	))

	// Thumb-pressed rings centered behind the gill.
	for i := 1; i <= 3; i++ {
		r := 0.13 * h * float64(i)
		a := 0.10 + 0.18*RingTexture(r/u, 0)
		ring := NewPath().Ellipse(0.05*l, 0, r*1.3, r)
		c.Stroke(ring, SolidPaint(fishRing.WithAlpha(a)), line)
	}

	gill := NewPath().
		MoveTo(-0.22*l, -0.28*h).
		CubicTo(-0.14*l, -0.1*h, -0.14*l, 0.1*h, -0.22*l, 0.28*h)
	c.Stroke(gill, SolidPaint(fishRing.WithAlpha(0.5)), line*1.4)

	c.Fill(NewPath().Circle(-0.31*l, -0.12*h, 0.12*h), SolidPaint(fishEye))
	c.Fill(NewPath().Circle(-0.33*l, -0.12*h, 0.06*h), SolidPaint(fishPupil))

	mouth := NewPath().
		MoveTo(-0.49*l, 0.06*h).
		CubicTo(-0.45*l, 0.14*h, -0.40*l, 0.15*h, -0.36*l, 0.10*h)
	c.Stroke(mouth, SolidPaint(fishPupil.WithAlpha(0.8)), line*1.6)
}

package claylake

import "math"

var (
	lakeTop     = RGB(0x6f, 0xb3, 0xc4)
	lakeBottom  = RGB(0x2f, 0x5d, 0x7a)
	rippleColor = RGB(0xe8, 0xf6, 0xf8)
	printColor  = RGB(0x1c, 0x3f, 0x55)
)

const (
	rippleLines   = 20
	rippleSpacing = 12
	rippleSample  = 3
	printCount    = 220
	printStepX    = 37.7
	printStepY    = 53.3
)

// rippleY returns the y of ripple stroke i at horizontal position x. x and
// the returned offset are in design units; centerY is absolute.
func rippleY(i int, x, centerY, u, t float64) float64 {
	fi := float64(i)
	amp := (5 + 0.2*fi) * u
	k := 0.015 + 0.0008*fi
	phase := twoPi * t * (0.2 + 0.01*fi)
	return centerY + amp*(0.6*math.Sin(k*x+phase)+0.3*math.Sin(0.5*k*x+1.7*phase))
}

// fingerprint returns the center and radius of fingerprint circle i. The
// tiling is fixed, so the pattern never flickers between frames.
func fingerprint(i int, sz Size) (cx, cy, r float64) {
	u := sz.Unit()
	top := sz.WaterTop()
	cx = math.Mod(float64(i)*printStepX*u, sz.Width)
	cy = top + math.Mod(float64(i)*printStepY*u, sz.Height-top)
	r = float64(22+(i%5)*9) * u
	return cx, cy, r
}

// PaintWater paints the lake body, its ripple strokes and the fingerprint
// overlay. Everything below the water line is clipped to the lake rectangle.
func PaintWater(c Canvas, sz Size, t float64) {
	w, h := sz.Width, sz.Height
	u := sz.Unit()
	top := sz.WaterTop()
	lake := Rect{X: 0, Y: top, Width: w, Height: h - top}

	c.Fill(NewPath().RoundRect(lake.X, lake.Y, lake.Width, lake.Height, 0),
		LinearGradient(0, top, 0, h,
			ColorStop{0, lakeTop},
			ColorStop{1, lakeBottom},
		))

	c.Save()
	c.ClipRect(lake)

	step := rippleSample * u
	for i := 0; i < rippleLines; i++ {
		centerY := top + rippleSpacing*u*float64(i)
		p := NewPath()
		for x := 0.0; x <= w+step; x += step {
			y := rippleY(i, x/u, centerY, u, t)
			if x == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
		c.Stroke(p, SolidPaint(rippleColor.WithAlpha(0.22-0.006*float64(i))), 1.4*u)
	}

	for i := 0; i < printCount; i++ {
		cx, cy, r := fingerprint(i, sz)
		a := 0.025 + 0.05*RingTexture(cx/u, (cy-top)/u)
		c.Fill(NewPath().Circle(cx, cy, r), SolidPaint(printColor.WithAlpha(a)))
	}
	c.Restore()
}

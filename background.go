package claylake

import "math"

var (
	skyTop     = RGB(0x8e, 0xc5, 0xe8)
	skyMid     = RGB(0xc9, 0xe3, 0xee)
	skyHorizon = RGB(0xf6, 0xdc, 0xb8)
	sunCore    = RGB(0xff, 0xd2, 0x7a)
	sunGlow    = RGB(0xff, 0xe3, 0xa3)
	skyLine    = RGB(0xff, 0xff, 0xff)
)

// mountainLayer is a fixed silhouette. Heights are fractions of the surface
// height; seed shifts the phase of each sine term.
type mountainLayer struct {
	color    Color
	seed     float64
	baseFrac float64
	ampFrac  float64
}

// mountainLayers are drawn back to front.
var mountainLayers = [3]mountainLayer{
	{color: RGB(0x9d, 0xa8, 0xc7), seed: 1.3, baseFrac: 0.50, ampFrac: 0.12},
	{color: RGB(0x7f, 0x95, 0x9e), seed: 3.7, baseFrac: 0.56, ampFrac: 0.09},
	{color: RGB(0x5f, 0x7f, 0x6a), seed: 7.1, baseFrac: 0.61, ampFrac: 0.06},
}

const (
	mountainSteps  = 200
	sunRadiusFrac  = 0.08
	sunGlowScale   = 2.2
	skyLineSpacing = 6
	skyLineAlpha   = 0.12
	skyLineWobble  = 4
)

// mountainHeight returns the silhouette y at normalized horizontal position x.
func mountainHeight(x, baseY, amp, seed float64) float64 {
	return baseY - amp*(0.6*math.Sin(2.3*x+0.1*seed)+
		0.3*math.Sin(4.7*x+0.23*seed)+
		0.1*math.Sin(9.1*x+0.47*seed))
}

// PaintBackground paints the sky gradient, sun glow, sky line texture and the
// three mountain layers. Output depends only on (sz, t).
func PaintBackground(c Canvas, sz Size, t float64) {
	w, h := sz.Width, sz.Height
	u := sz.Unit()

	c.Fill(NewPath().RoundRect(0, 0, w, h, 0), LinearGradient(0, 0, 0, h,
		ColorStop{0, skyTop},
		ColorStop{0.55, skyMid},
		ColorStop{1, skyHorizon},
	))

	cx, cy := 0.25*w, 0.18*h
	r := sunRadiusFrac * sz.Base()
	glow := NewPath().Circle(cx, cy, sunGlowScale*r)
	c.Fill(glow, RadialGradient(cx, cy, 0, sunGlowScale*r,
		ColorStop{0, sunGlow.WithAlpha(0.85)},
		ColorStop{1, sunGlow.WithAlpha(0)},
	))
	c.Fill(NewPath().Circle(cx, cy, r), SolidPaint(sunCore))

	c.Save()
	c.SetAlpha(skyLineAlpha)
	step := skyLineSpacing * u
	for y := 0.0; y <= h; y += step {
		off := skyLineWobble * u * math.Sin(6*(y/h-0.5)+twoPi*t)
		line := NewPath().MoveTo(off-step, y).LineTo(w+off+step, y)
		c.Stroke(line, SolidPaint(skyLine), u)
	}
	c.Restore()

	for _, layer := range mountainLayers {
		paintMountain(c, sz, layer)
	}
}

func paintMountain(c Canvas, sz Size, layer mountainLayer) {
	w, h := sz.Width, sz.Height
	baseY := layer.baseFrac * h
	amp := layer.ampFrac * h

	p := NewPath().MoveTo(0, h)
	for i := 0; i <= mountainSteps; i++ {
		x := float64(i) / mountainSteps
		p.LineTo(x*w, mountainHeight(x, baseY, amp, layer.seed))
	}
	p.LineTo(w, h).Close()
	c.Fill(p, LinearGradient(0, baseY-amp, 0, sz.WaterTop(),
		ColorStop{0, layer.color},
		ColorStop{1, mixColor(layer.color, skyHorizon, 0.25)},
	))
}

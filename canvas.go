package claylake

// Canvas is the 2D drawing context every painter draws through. It mirrors
// the small subset of an immediate-mode 2D context the scene needs: a
// transform stack, a global alpha, rectangular clipping, and path fill/stroke.
//
// All coordinates passed to a Canvas are logical units; the implementation
// maps them to backing-store pixels.
type Canvas interface {
	// Save pushes the current transform, alpha and clip.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()

	Translate(x, y float64)
	Rotate(theta float64)
	Scale(sx, sy float64)

	// SetAlpha sets the global alpha multiplied into every subsequent draw.
	SetAlpha(a float64)
	// ClipRect intersects the clip region with r, given in current
	// coordinates. Only translate and scale transforms are supported.
	ClipRect(r Rect)

	Fill(p *Path, paint Paint)
	Stroke(p *Path, paint Paint, width float64)
}

// PaintKind selects how a Paint computes color.
type PaintKind uint8

const (
	PaintSolid  PaintKind = iota // single color
	PaintLinear                  // gradient along Start→End
	PaintRadial                  // gradient between circles of Radius0 and Radius1 around Start
)

// ColorStop is a color at a normalized offset along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// maxStops is the number of stops the gradient shader supports.
const maxStops = 3

// Paint describes how a filled or stroked region is colored. Gradient
// geometry is in the coordinate space current at the time of the draw call.
type Paint struct {
	Kind             PaintKind
	Start, End       Vec2
	Radius0, Radius1 float64
	Stops            []ColorStop
}

// SolidPaint returns a single-color paint.
func SolidPaint(c Color) Paint {
	return Paint{Kind: PaintSolid, Stops: []ColorStop{{Offset: 0, Color: c}}}
}

// LinearGradient returns a paint interpolating stops along (x0,y0)→(x1,y1).
func LinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) Paint {
	return Paint{
		Kind:  PaintLinear,
		Start: Vec2{x0, y0},
		End:   Vec2{x1, y1},
		Stops: stops,
	}
}

// RadialGradient returns a paint interpolating stops from radius r0 to r1
// around (cx, cy).
func RadialGradient(cx, cy, r0, r1 float64, stops ...ColorStop) Paint {
	return Paint{
		Kind:    PaintRadial,
		Start:   Vec2{cx, cy},
		Radius0: r0,
		Radius1: r1,
		Stops:   stops,
	}
}

// normalizedStops returns exactly maxStops stops with non-decreasing offsets
// in [0, 1]. Missing trailing stops repeat the last color; an empty paint is
// transparent black. Extra stops beyond maxStops are dropped.
func (p Paint) normalizedStops() [maxStops]ColorStop {
	var out [maxStops]ColorStop
	if len(p.Stops) == 0 {
		for i := range out {
			out[i].Offset = 1
		}
		return out
	}
	n := min(len(p.Stops), maxStops)
	prev := 0.0
	for i := 0; i < n; i++ {
		s := p.Stops[i]
		s.Offset = clamp01(s.Offset)
		if s.Offset < prev {
			s.Offset = prev
		}
		prev = s.Offset
		out[i] = s
	}
	last := out[n-1]
	for i := n; i < maxStops; i++ {
		out[i] = ColorStop{Offset: 1, Color: last.Color}
	}
	if p.Kind == PaintSolid {
		for i := range out {
			out[i] = ColorStop{Offset: 1, Color: out[0].Color}
		}
	}
	return out
}

// colorAt evaluates the paint at gradient parameter s in [0, 1]. It is the
// CPU mirror of the gradient shader and is what recorders and tests use.
func (p Paint) colorAt(s float64) Color {
	st := p.normalizedStops()
	s = clamp01(s)
	if p.Kind == PaintSolid || s <= st[0].Offset {
		return st[0].Color
	}
	for i := 1; i < maxStops; i++ {
		if s <= st[i].Offset {
			span := st[i].Offset - st[i-1].Offset
			if span <= 0 {
				return st[i].Color
			}
			return mixColor(st[i-1].Color, st[i].Color, (s-st[i-1].Offset)/span)
		}
	}
	return st[maxStops-1].Color
}

func mixColor(a, b Color, k float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*k,
		G: a.G + (b.G-a.G)*k,
		B: a.B + (b.B-a.B)*k,
		A: a.A + (b.A-a.A)*k,
	}
}

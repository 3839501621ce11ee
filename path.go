package claylake

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

// kappa is the cubic Bézier control-point distance, as a fraction of the
// radius, that best approximates a quarter circle.
const kappa = 0.5523

type pathOp uint8

const (
	opMoveTo pathOp = iota
	opLineTo
	opCubicTo
	opClose
)

// pathCmd is one path command. Only the first n points are meaningful:
// MoveTo/LineTo use 1, CubicTo uses 3, Close uses 0.
type pathCmd struct {
	op  pathOp
	pts [3]Vec2
}

// Path is a retained list of drawing commands in local (untransformed)
// coordinates. Canvas implementations apply their current transform when the
// path is filled or stroked.
type Path struct {
	cmds []pathCmd
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.cmds = append(p.cmds, pathCmd{op: opMoveTo, pts: [3]Vec2{{x, y}}})
	return p
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.cmds = append(p.cmds, pathCmd{op: opLineTo, pts: [3]Vec2{{x, y}}})
	return p
}

// CubicTo adds a cubic Bézier segment with control points (x1, y1), (x2, y2)
// ending at (x, y).
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) *Path {
	p.cmds = append(p.cmds, pathCmd{op: opCubicTo, pts: [3]Vec2{{x1, y1}, {x2, y2}, {x, y}}})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.cmds = append(p.cmds, pathCmd{op: opClose})
	return p
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.cmds)
}

// RoundRect adds a closed rounded rectangle. The corner radius is clamped to
// half the shorter side, so RoundRect(x, y, w, h, min(w,h)/2) yields a
// stadium and, when w == h, a circle.
func (p *Path) RoundRect(x, y, w, h, r float64) *Path {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	return p.roundRect(x, y, w, h, r, r)
}

// Ellipse adds a closed ellipse centered at (cx, cy) built from four cubic
// segments.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	return p.roundRect(cx-rx, cy-ry, 2*rx, 2*ry, rx, ry)
}

// Circle adds a closed circle.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// roundRect emits a rectangle with elliptical corners of radii (rx, ry),
// starting at the top edge and running clockwise.
func (p *Path) roundRect(x, y, w, h, rx, ry float64) *Path {
	kx := rx * kappa
	ky := ry * kappa
	right := x + w
	bottom := y + h

	p.MoveTo(x+rx, y)
	p.LineTo(right-rx, y)
	p.CubicTo(right-rx+kx, y, right, y+ry-ky, right, y+ry)
	p.LineTo(right, bottom-ry)
	p.CubicTo(right, bottom-ry+ky, right-rx+kx, bottom, right-rx, bottom)
	p.LineTo(x+rx, bottom)
	p.CubicTo(x+rx-kx, bottom, x, bottom-ry+ky, x, bottom-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	return p.Close()
}

// bounds returns the bounding box of every point (control points included)
// after mapping through m. Control points bound the curve, so the result
// contains the drawn shape.
func (p *Path) bounds(m [6]float64) Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for i := range p.cmds {
		c := &p.cmds[i]
		for j := 0; j < c.op.numPoints(); j++ {
			x, y := transformPoint(m, c.pts[j].X, c.pts[j].Y)
			if first {
				minX, maxX, minY, maxY = x, x, y, y
				first = false
				continue
			}
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (op pathOp) numPoints() int {
	switch op {
	case opMoveTo, opLineTo:
		return 1
	case opCubicTo:
		return 3
	default:
		return 0
	}
}

// appendTo writes the path into dst, mapping every point through m.
// Affine maps preserve Bézier curves, so transforming control points is exact.
func (p *Path) appendTo(dst *vector.Path, m [6]float64) {
	for i := range p.cmds {
		c := &p.cmds[i]
		switch c.op {
		case opMoveTo:
			x, y := transformPoint(m, c.pts[0].X, c.pts[0].Y)
			dst.MoveTo(float32(x), float32(y))
		case opLineTo:
			x, y := transformPoint(m, c.pts[0].X, c.pts[0].Y)
			dst.LineTo(float32(x), float32(y))
		case opCubicTo:
			x1, y1 := transformPoint(m, c.pts[0].X, c.pts[0].Y)
			x2, y2 := transformPoint(m, c.pts[1].X, c.pts[1].Y)
			x3, y3 := transformPoint(m, c.pts[2].X, c.pts[2].Y)
			dst.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
		case opClose:
			dst.Close()
		}
	}
}

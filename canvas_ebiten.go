package claylake

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type canvasState struct {
	transform [6]float64
	alpha     float64
	clip      image.Rectangle
}

// imageCanvas is the Canvas backed by an *ebiten.Image. Fills are tessellated
// in device space; strokes are tessellated in local space and then mapped,
// so non-uniform scale stretches stroke width the way a 2D context does.
type imageCanvas struct {
	root   *ebiten.Image
	shader *ebiten.Shader
	state  canvasState
	stack  []canvasState

	verts    []ebiten.Vertex
	inds     []uint16
	uniforms map[string]any
	triOp    ebiten.DrawTrianglesShaderOptions
}

// newImageCanvas wraps dst with a base transform that maps logical units to
// pixels. It fails only when the gradient shader cannot be compiled.
func newImageCanvas(dst *ebiten.Image, pixelScale float64) (*imageCanvas, error) {
	shader, err := ensureGradientShader()
	if err != nil {
		return nil, err
	}
	c := &imageCanvas{
		root:     dst,
		shader:   shader,
		uniforms: make(map[string]any, 10),
	}
	c.state = canvasState{
		transform: scaleAffine(identityTransform, pixelScale, pixelScale),
		alpha:     1,
		clip:      dst.Bounds(),
	}
	c.triOp.Uniforms = c.uniforms
	c.triOp.FillRule = ebiten.FillRuleNonZero
	c.triOp.AntiAlias = true
	return c, nil
}

func (c *imageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *imageCanvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *imageCanvas) Translate(x, y float64) {
	c.state.transform = translateAffine(c.state.transform, x, y)
}

func (c *imageCanvas) Rotate(theta float64) {
	c.state.transform = rotateAffine(c.state.transform, theta)
}

func (c *imageCanvas) Scale(sx, sy float64) {
	c.state.transform = scaleAffine(c.state.transform, sx, sy)
}

func (c *imageCanvas) SetAlpha(a float64) {
	c.state.alpha = clamp01(a)
}

func (c *imageCanvas) ClipRect(r Rect) {
	dev := transformRect(c.state.transform, r)
	rect := image.Rect(
		int(math.Floor(dev.X)), int(math.Floor(dev.Y)),
		int(math.Ceil(dev.X+dev.Width)), int(math.Ceil(dev.Y+dev.Height)),
	)
	c.state.clip = c.state.clip.Intersect(rect)
}

// target returns the image to draw into, narrowed to the current clip.
// ok is false when the clip is empty.
func (c *imageCanvas) target() (dst *ebiten.Image, ok bool) {
	if c.state.clip.Empty() {
		return nil, false
	}
	if c.state.clip == c.root.Bounds() {
		return c.root, true
	}
	return c.root.SubImage(c.state.clip).(*ebiten.Image), true
}

func (c *imageCanvas) Fill(p *Path, paint Paint) {
	if p.Len() == 0 || c.state.alpha <= 0 {
		return
	}
	var vp vector.Path
	p.appendTo(&vp, c.state.transform)
	// FillPath takes no shader, so the deprecated tessellation API stays.
	c.verts, c.inds = vp.AppendVerticesAndIndicesForFilling(c.verts[:0], c.inds[:0])
	c.tint(c.verts)
	c.submit(paint)
}

func (c *imageCanvas) Stroke(p *Path, paint Paint, width float64) {
	if p.Len() == 0 || c.state.alpha <= 0 || width <= 0 {
		return
	}
	var vp vector.Path
	p.appendTo(&vp, identityTransform)
	// StrokePath takes no shader, so the deprecated tessellation API stays.
	c.verts, c.inds = vp.AppendVerticesAndIndicesForStroke(c.verts[:0], c.inds[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	transformVertices(c.verts, c.state.transform)
	c.tint(c.verts)
	c.submit(paint)
}

// tint writes the global alpha into every vertex color (premultiplied white).
func (c *imageCanvas) tint(verts []ebiten.Vertex) {
	a := float32(c.state.alpha)
	for i := range verts {
		v := &verts[i]
		v.SrcX, v.SrcY = 0, 0
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = a, a, a, a
	}
}

func (c *imageCanvas) submit(paint Paint) {
	if len(c.inds) == 0 {
		return
	}
	dst, ok := c.target()
	if !ok {
		return
	}
	gradientUniforms(c.uniforms, paint, c.state.transform, dst.Bounds().Min)
	dst.DrawTrianglesShader(c.verts, c.inds, c.shader, &c.triOp)
}

// transformVertices applies an affine transform to vertex positions in place.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func transformVertices(verts []ebiten.Vertex, transform [6]float64) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	for i := range verts {
		v := &verts[i]
		ox := float64(v.DstX)
		oy := float64(v.DstY)
		v.DstX = float32(a*ox + c*oy + tx)
		v.DstY = float32(b*ox + d*oy + ty)
	}
}

package claylake

import (
	"image"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newTestImageCanvas builds an imageCanvas without compiling the shader, so
// state handling can be checked without drawing.
func newTestImageCanvas(w, h int, pixelScale float64) *imageCanvas {
	img := ebiten.NewImage(w, h)
	return &imageCanvas{
		root:     img,
		uniforms: make(map[string]any, 10),
		state: canvasState{
			transform: scaleAffine(identityTransform, pixelScale, pixelScale),
			alpha:     1,
			clip:      img.Bounds(),
		},
	}
}

func uniformFloats(t *testing.T, u map[string]any, name string) []float32 {
	t.Helper()
	v, ok := u[name].([]float32)
	if !ok {
		t.Fatalf("uniform %s = %T, want []float32", name, u[name])
	}
	return v
}

// shaderPaintPoint mirrors the first lines of the gradient shader: dst is a
// texture position, texOrigin the image's texture origin.
func shaderPaintPoint(u map[string]any, t *testing.T, dst, texOrigin Vec2) Vec2 {
	t.Helper()
	inv := uniformFloats(t, u, "Inverse")
	origin := uniformFloats(t, u, "Origin")
	qx := dst.X - texOrigin.X + float64(origin[0])
	qy := dst.Y - texOrigin.Y + float64(origin[1])
	return Vec2{
		X: float64(inv[0])*qx + float64(inv[2])*qy + float64(inv[4]),
		Y: float64(inv[1])*qx + float64(inv[3])*qy + float64(inv[5]),
	}
}

// --- gradientUniforms ---

func TestGradientUniformsInverseUndoesTransform(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
	}{
		{"identity", identityTransform},
		{"retina", scaleAffine(identityTransform, 2, 2)},
		{"translated", translateAffine(scaleAffine(identityTransform, 1.5, 1.5), 40, -12)},
		{"rotated", rotateAffine(translateAffine(scaleAffine(identityTransform, 2, 2), 90, 160), 0.3)},
	}
	pts := []Vec2{{0, 0}, {90, 115.2}, {360, 640}, {-7.5, 33}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := make(map[string]any)
			gradientUniforms(u, SolidPaint(Color{A: 1}), tt.m, image.Point{})
			for _, p := range pts {
				dx, dy := transformPoint(tt.m, p.X, p.Y)
				got := shaderPaintPoint(u, t, Vec2{dx, dy}, Vec2{})
				assertWithin(t, tt.name+" x", got.X, p.X, 1e-3)
				assertWithin(t, tt.name+" y", got.Y, p.Y, 1e-3)
			}
		})
	}
}

func TestGradientUniformsTextureAndClipOrigin(t *testing.T) {
	// A clipped sub-image at (0, 397) of an image placed at (512, 256) on
	// its texture: the texture origin of the sub-image is the sum.
	m := scaleAffine(identityTransform, 2, 2)
	clip := image.Pt(0, 397)
	texOrigin := Vec2{512, 256 + 397}

	u := make(map[string]any)
	gradientUniforms(u, RadialGradient(90, 115.2, 0, 80), m, clip)

	sun := Vec2{90, 115.2}
	dx, dy := transformPoint(m, sun.X, sun.Y)
	got := shaderPaintPoint(u, t, Vec2{dx + 512, dy + 256}, texOrigin)
	assertWithin(t, "sun x", got.X, sun.X, 1e-3)
	assertWithin(t, "sun y", got.Y, sun.Y, 1e-3)

	origin := uniformFloats(t, u, "Origin")
	if origin[0] != 0 || origin[1] != 397 {
		t.Errorf("Origin = %v, want [0 397]", origin)
	}
}

func TestGradientUniformsStops(t *testing.T) {
	red := Color{R: 1, A: 1}
	blue := Color{B: 1, A: 0.5}
	tests := []struct {
		name string
		p    Paint
	}{
		{"solid", SolidPaint(red)},
		{"linear two stops", LinearGradient(0, 0, 0, 100, ColorStop{0, red}, ColorStop{1, blue})},
		{"radial three stops", RadialGradient(10, 10, 2, 40,
			ColorStop{0, red}, ColorStop{0.4, blue}, ColorStop{1, red.WithAlpha(0)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := make(map[string]any)
			gradientUniforms(u, tt.p, identityTransform, image.Point{})
			st := tt.p.normalizedStops()

			offsets := uniformFloats(t, u, "Offsets")
			for i := range st {
				assertWithin(t, "offset", float64(offsets[i]), st[i].Offset, 1e-6)
			}
			for i, name := range []string{"Color0", "Color1", "Color2"} {
				got := uniformFloats(t, u, name)
				want := st[i].Color.premultiplied()
				for j := range want {
					if got[j] != want[j] {
						t.Errorf("%s[%d] = %v, want %v", name, j, got[j], want[j])
					}
				}
			}

			wantRadial := float32(0)
			if tt.p.Kind == PaintRadial {
				wantRadial = 1
			}
			if got := u["Radial"]; got != wantRadial {
				t.Errorf("Radial = %v, want %v", got, wantRadial)
			}
		})
	}
}

// --- transformVertices ---

func TestTransformVertices(t *testing.T) {
	m := rotateAffine(translateAffine(scaleAffine(identityTransform, 2, 3), 5, -4), math.Pi/6)
	src := []Vec2{{0, 0}, {1, 0}, {0, 1}, {12.5, -3.25}}
	verts := make([]ebiten.Vertex, len(src))
	for i, p := range src {
		verts[i].DstX, verts[i].DstY = float32(p.X), float32(p.Y)
		verts[i].ColorA = 0.7
	}

	transformVertices(verts, m)
	for i, p := range src {
		wx, wy := transformPoint(m, p.X, p.Y)
		assertWithin(t, "x", float64(verts[i].DstX), wx, 1e-4)
		assertWithin(t, "y", float64(verts[i].DstY), wy, 1e-4)
		if verts[i].ColorA != 0.7 {
			t.Errorf("vertex %d color changed: %v", i, verts[i].ColorA)
		}
	}
}

// --- imageCanvas state ---

func TestImageCanvasClipRect(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		scale float64
		clips []Rect
		want  image.Rectangle
	}{
		{"whole pixels", 100, 100, 1, []Rect{{X: 10, Y: 20, Width: 30, Height: 40}}, image.Rect(10, 20, 40, 60)},
		{"rounds outward", 100, 100, 1, []Rect{{X: 10.4, Y: 20.6, Width: 5.2, Height: 5.1}}, image.Rect(10, 20, 16, 26)},
		{"device scale", 720, 1280, 2, []Rect{{X: 0, Y: 198.4, Width: 360, Height: 241.5}}, image.Rect(0, 396, 720, 880)},
		{"intersects previous", 100, 100, 1, []Rect{
			{X: 0, Y: 0, Width: 50, Height: 50},
			{X: 25, Y: 25, Width: 50, Height: 50},
		}, image.Rect(25, 25, 50, 50)},
		{"clamped to image", 100, 100, 1, []Rect{{X: -10, Y: -10, Width: 500, Height: 500}}, image.Rect(0, 0, 100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestImageCanvas(tt.w, tt.h, tt.scale)
			for _, r := range tt.clips {
				c.ClipRect(r)
			}
			if c.state.clip != tt.want {
				t.Errorf("clip = %v, want %v", c.state.clip, tt.want)
			}
		})
	}
}

func TestImageCanvasClipEmpty(t *testing.T) {
	c := newTestImageCanvas(100, 100, 1)
	c.ClipRect(Rect{X: 0, Y: 0, Width: 10, Height: 10})
	c.ClipRect(Rect{X: 50, Y: 50, Width: 10, Height: 10})
	if _, ok := c.target(); ok {
		t.Error("disjoint clips should leave nothing to draw into")
	}
}

func TestImageCanvasTarget(t *testing.T) {
	c := newTestImageCanvas(100, 100, 1)
	dst, ok := c.target()
	if !ok || dst != c.root {
		t.Fatal("unclipped target should be the root image")
	}

	c.ClipRect(Rect{X: 0, Y: 40, Width: 100, Height: 60})
	dst, ok = c.target()
	if !ok {
		t.Fatal("clipped target missing")
	}
	if got := dst.Bounds(); got != image.Rect(0, 40, 100, 100) {
		t.Errorf("target bounds = %v, want (0,40)-(100,100)", got)
	}
}

func TestImageCanvasSaveRestore(t *testing.T) {
	c := newTestImageCanvas(100, 100, 2)
	base := c.state

	c.Save()
	c.ClipRect(Rect{X: 0, Y: 0, Width: 20, Height: 20})
	c.Translate(10, 5)
	c.Rotate(0.5)
	c.SetAlpha(0.25)

	c.Save()
	c.Scale(3, 3)
	c.SetAlpha(2)
	assertNear(t, "clamped alpha", c.state.alpha, 1)
	c.Restore()

	assertNear(t, "inner restore alpha", c.state.alpha, 0.25)
	if c.state.clip != image.Rect(0, 0, 40, 40) {
		t.Errorf("inner restore clip = %v", c.state.clip)
	}

	c.Restore()
	assertMatrix(t, "restored transform", c.state.transform, base.transform)
	assertNear(t, "restored alpha", c.state.alpha, base.alpha)
	if c.state.clip != base.clip {
		t.Errorf("restored clip = %v, want %v", c.state.clip, base.clip)
	}
	if len(c.stack) != 0 {
		t.Errorf("stack depth = %d, want 0", len(c.stack))
	}

	// Unbalanced Restore is ignored.
	c.Restore()
	assertMatrix(t, "extra restore", c.state.transform, base.transform)
}

func TestImageCanvasSkipsInvisibleDraws(t *testing.T) {
	c := newTestImageCanvas(10, 10, 1)
	c.SetAlpha(0)
	c.Fill(NewPath().Circle(5, 5, 2), SolidPaint(Color{A: 1}))
	c.Stroke(NewPath().Circle(5, 5, 2), SolidPaint(Color{A: 1}), 1)
	if len(c.verts) != 0 || len(c.uniforms) != 0 {
		t.Error("zero alpha should not tessellate or set uniforms")
	}

	c.SetAlpha(1)
	c.Stroke(NewPath().Circle(5, 5, 2), SolidPaint(Color{A: 1}), 0)
	if len(c.verts) != 0 {
		t.Error("zero width stroke should not tessellate")
	}
}

package claylake

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// errNoSurface is reported when a frame is requested before the surface has a
// backing image.
var errNoSurface = errors.New("surface has no backing image")

// maxPixelScale caps the device scale factor to bound oversampling cost.
const maxPixelScale = 2

// Surface owns the backing image the scene is painted into. Its logical size
// follows the host container; the backing store is logical size × the capped
// device scale factor.
type Surface struct {
	size   Size
	scale  float64
	pixelW int
	pixelH int
	image  *ebiten.Image

	// canvasErr remembers why Canvas last failed so debug mode can report it
	// once instead of every frame.
	canvasErr error
}

// NewSurface creates an empty surface. It has no backing image until the
// first Resize.
func NewSurface() *Surface {
	return &Surface{scale: 1}
}

// surfaceMetrics derives the logical size, capped scale and backing pixel
// size for a container rectangle. Every dimension is at least 1.
func surfaceMetrics(container Rect, deviceScale float64) (Size, float64, int, int) {
	w := math.Max(1, container.Width)
	h := math.Max(1, container.Height)
	scale := deviceScale
	if !(scale > 0) {
		scale = 1
	}
	scale = math.Min(scale, maxPixelScale)
	pw := max(1, int(math.Floor(w*scale)))
	ph := max(1, int(math.Floor(h*scale)))
	return Size{Width: w, Height: h}, scale, pw, ph
}

// Resize adopts a new container rectangle. The backing image is reallocated
// only when the pixel size changes, so repeated calls with the same
// rectangle are idempotent. Reports whether anything changed.
func (s *Surface) Resize(container Rect, deviceScale float64) bool {
	size, scale, pw, ph := surfaceMetrics(container, deviceScale)
	changed := size != s.size || scale != s.scale || pw != s.pixelW || ph != s.pixelH
	s.size = size
	s.scale = scale
	if s.image != nil && pw == s.pixelW && ph == s.pixelH {
		return changed
	}
	if s.image != nil {
		s.image.Deallocate()
	}
	s.pixelW, s.pixelH = pw, ph
	s.image = ebiten.NewImage(pw, ph)
	return true
}

// Size returns the logical size.
func (s *Surface) Size() Size {
	return s.size
}

// Scale returns the capped device scale factor in effect.
func (s *Surface) Scale() float64 {
	return s.scale
}

// PixelSize returns the backing-store size in pixels.
func (s *Surface) PixelSize() (int, int) {
	return s.pixelW, s.pixelH
}

// Image returns the backing image, or nil before the first Resize and after
// Dispose.
func (s *Surface) Image() *ebiten.Image {
	return s.image
}

// Canvas clears the backing image and returns a fresh canvas whose transform
// maps logical units to pixels. ok is false when there is nothing usable to
// draw into; callers skip the frame.
func (s *Surface) Canvas() (Canvas, bool) {
	if s.image == nil {
		return nil, false
	}
	c, err := newImageCanvas(s.image, s.scale)
	if err != nil {
		s.canvasErr = err
		return nil, false
	}
	s.image.Clear()
	return c, true
}

// Dispose deallocates the backing image. The surface may be resized again
// afterwards, which allocates a new one.
func (s *Surface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
	s.pixelW, s.pixelH = 0, 0
}

package claylake

import "testing"

func TestSurfaceMetrics(t *testing.T) {
	tests := []struct {
		name         string
		container    Rect
		deviceScale  float64
		wantSize     Size
		wantScale    float64
		wantW, wantH int
	}{
		{"reference", Rect{Width: 360, Height: 640}, 1, Size{360, 640}, 1, 360, 640},
		{"retina", Rect{Width: 360, Height: 640}, 2, Size{360, 640}, 2, 720, 1280},
		{"capped", Rect{Width: 360, Height: 640}, 3, Size{360, 640}, 2, 720, 1280},
		{"fractional", Rect{Width: 301, Height: 201}, 1.5, Size{301, 201}, 1.5, 451, 301},
		{"zero scale", Rect{Width: 100, Height: 100}, 0, Size{100, 100}, 1, 100, 100},
		{"empty", Rect{}, 1, Size{1, 1}, 1, 1, 1},
		{"negative", Rect{Width: -5, Height: 10}, 1, Size{1, 10}, 1, 1, 10},
		{"tiny", Rect{Width: 0.2, Height: 0.2}, 0.5, Size{1, 1}, 0.5, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, scale, w, h := surfaceMetrics(tt.container, tt.deviceScale)
			if size != tt.wantSize {
				t.Errorf("size = %+v, want %+v", size, tt.wantSize)
			}
			if scale != tt.wantScale {
				t.Errorf("scale = %v, want %v", scale, tt.wantScale)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("pixels = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSurfaceResizeIdempotent(t *testing.T) {
	s := NewSurface()
	defer s.Dispose()

	if !s.Resize(Rect{Width: 360, Height: 640}, 2) {
		t.Fatal("first Resize should report a change")
	}
	img := s.Image()
	if img == nil {
		t.Fatal("Resize should allocate a backing image")
	}
	if s.Resize(Rect{Width: 360, Height: 640}, 2) {
		t.Error("repeated Resize should report no change")
	}
	if s.Image() != img {
		t.Error("repeated Resize should keep the backing image")
	}
	if w, h := s.PixelSize(); w != 720 || h != 1280 {
		t.Errorf("PixelSize = %dx%d, want 720x1280", w, h)
	}
}

func TestSurfaceResizeReallocates(t *testing.T) {
	s := NewSurface()
	defer s.Dispose()

	s.Resize(Rect{Width: 360, Height: 640}, 1)
	first := s.Image()
	if !s.Resize(Rect{Width: 400, Height: 640}, 1) {
		t.Fatal("Resize to a new size should report a change")
	}
	if s.Image() == first {
		t.Error("new pixel size should allocate a new image")
	}
	b := s.Image().Bounds()
	if b.Dx() != 400 || b.Dy() != 640 {
		t.Errorf("image bounds = %v, want 400x640", b)
	}
	if s.Size() != (Size{400, 640}) {
		t.Errorf("Size = %+v", s.Size())
	}
}

func TestSurfaceDispose(t *testing.T) {
	s := NewSurface()
	s.Resize(Rect{Width: 10, Height: 10}, 1)
	s.Dispose()
	s.Dispose() // safe twice
	if s.Image() != nil {
		t.Error("Dispose should drop the image")
	}
	if _, ok := s.Canvas(); ok {
		t.Error("Canvas should fail without a backing image")
	}
}

func TestSurfaceCanvasBeforeResize(t *testing.T) {
	s := NewSurface()
	if _, ok := s.Canvas(); ok {
		t.Error("Canvas should fail before the first Resize")
	}
	if s.Scale() != 1 {
		t.Errorf("initial Scale = %v, want 1", s.Scale())
	}
}

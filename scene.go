package claylake

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultScreenshotDir = "screenshots"

// Scene is the top-level object: it owns the surface, the clock and the
// per-frame overlays, and implements ebiten.Game. Every frame is painted from
// scratch from the clock's normalized time.
type Scene struct {
	// ShowFPS draws FPS and TPS in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is the directory Screenshot writes PNGs into.
	ScreenshotDir string
	// KeyboardEnabled turns on the Space/S/D/Escape shortcuts, Left/Right
	// scrubbing and pause on click or tap.
	KeyboardEnabled bool

	surface *Surface
	clock   *Clock
	overlay *overlay
	debug   bool
	closed  bool

	// deviceScale reports the monitor's device scale factor. Replaceable so
	// Layout can be exercised without a window.
	deviceScale func() float64

	frame     Frame
	drawn     int
	observer  PhaseObserver
	lastPhase Phase
	havePhase bool

	screenshotQueue []string
	screenshotSeq   int
	runner          *CaptureRunner
	canvasReported  bool
}

// NewScene creates a scene with a running clock and an unsized surface. The
// surface gets its size from the first Layout call.
func NewScene() *Scene {
	return &Scene{
		ScreenshotDir:   defaultScreenshotDir,
		KeyboardEnabled: true,
		surface:         NewSurface(),
		clock:           NewClock(),
		overlay:         newOverlay(),
		deviceScale:     monitorScale,
	}
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// tickSeconds is the duration of one Update tick.
func tickSeconds() float32 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float32(tps)
}

// Surface returns the scene's drawing surface.
func (s *Scene) Surface() *Surface {
	return s.surface
}

// Clock returns the clock that drives the animation.
func (s *Scene) Clock() *Clock {
	return s.clock
}

// Frame returns the animation state of the most recently drawn frame.
func (s *Scene) Frame() Frame {
	return s.frame
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// stats are logged to stderr and the phase overlay fades in.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.overlay.show(enabled)
}

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// Close tears the scene down: the next Update ends the game loop, Draw
// becomes a no-op and the surface is released. Safe to call more than once.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.surface.Dispose()
}

// Closed reports whether Close has been called.
func (s *Scene) Closed() bool {
	return s.closed
}

// Update handles input and capture-script steps. It returns
// ebiten.Termination once the scene is closed.
func (s *Scene) Update() error {
	if s.closed {
		return ebiten.Termination
	}
	if s.KeyboardEnabled {
		s.handleInput()
	}
	if s.runner != nil {
		s.runner.step(s)
	}
	s.overlay.update(tickSeconds(), s.ShowFPS)
	if s.closed {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the full scene into the surface at the clock's current time,
// then presents it on screen with any overlays.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.closed {
		return
	}
	c, ok := s.surface.Canvas()
	if !ok {
		s.reportCanvasFailure()
		return
	}

	frame, stats := renderFrame(c, s.surface.Size(), s.clock.T(), s.debug)
	s.frame = frame
	s.drawn++
	s.notifyPhase(frame)

	backing := s.surface.Image()
	s.flushScreenshots(backing)
	screen.DrawImage(backing, nil)

	if s.debug {
		s.debugLog(stats)
	}
	s.overlay.draw(screen, s)
}

// Layout is the container-size notification: the outside size is the
// window's size in device-independent pixels. The returned screen size is the
// surface's backing-store size so the scene is drawn 1:1 with device pixels.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.closed {
		// The surface is released; Layout must still report a positive size.
		w, h := s.surface.PixelSize()
		return max(w, 1), max(h, 1)
	}
	s.surface.Resize(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)}, s.deviceScale())
	return s.surface.PixelSize()
}

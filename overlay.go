package claylake

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFadeSeconds = 0.25
	hudFontSize    = 12
	hudLineSpacing = 16
	hudMarginX     = 8
	hudMarginY     = 40
)

var hudShadow = color.RGBA{0, 0, 0, 160}

// overlay draws the on-screen extras on top of the finished frame: the FPS
// readout and, in debug mode, a HUD with the current phase and poses.
type overlay struct {
	fps fpsWidget

	face     *text.GoTextFace
	faceErr  error
	alpha    float64
	visible  bool
	fade     *gween.Tween
	fadeDone bool
}

func newOverlay() *overlay {
	return &overlay{fadeDone: true}
}

// show starts fading the HUD in or out. Calling it with the current state is
// a no-op.
func (o *overlay) show(visible bool) {
	if visible == o.visible {
		return
	}
	o.visible = visible
	to := float32(0)
	if visible {
		to = 1
	}
	o.fade = gween.New(float32(o.alpha), to, hudFadeSeconds, ease.OutQuad)
	o.fadeDone = false
}

// update advances the fade by dt seconds and refreshes the FPS readout when
// it is enabled.
func (o *overlay) update(dt float32, showFPS bool) {
	if showFPS {
		o.fps.update(float64(dt))
	}
	if o.fade == nil || o.fadeDone {
		return
	}
	v, done := o.fade.Update(dt)
	o.alpha = clamp01(float64(v))
	o.fadeDone = done
}

// loadFace resolves the HUD font on first use. A failure is remembered so the
// HUD is skipped instead of retried every frame.
func (o *overlay) loadFace() *text.GoTextFace {
	if o.face != nil || o.faceErr != nil {
		return o.face
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		o.faceErr = fmt.Errorf("load hud font: %w", err)
		_, _ = fmt.Fprintf(os.Stderr, "[claylake] %v\n", o.faceErr)
		return nil
	}
	o.face = &text.GoTextFace{Source: src, Size: hudFontSize}
	return o.face
}

// hudText formats the debug HUD for frame.
func hudText(f Frame, paused bool) string {
	state := "playing"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  t=%.3f  k=%.2f  [%s]\nfish   %s\neagle  %s",
		f.Phase, f.T, f.K, state, describePose(f.Fish), describePose(f.Eagle))
}

func describePose(p Pose) string {
	if !p.Visible {
		return "hidden"
	}
	return fmt.Sprintf("(%.0f, %.0f) rot %.2f", p.X, p.Y, p.Rotation)
}

// draw renders the overlays onto screen. Coordinates are logical units scaled
// by the surface's pixel scale.
func (o *overlay) draw(screen *ebiten.Image, s *Scene) {
	scale := s.surface.Scale()
	if s.ShowFPS {
		o.fps.draw(screen, scale)
	}
	if o.alpha <= 0 {
		return
	}
	face := o.loadFace()
	if face == nil {
		return
	}
	msg := hudText(s.frame, s.clock.Paused())

	op := &text.DrawOptions{}
	op.LineSpacing = hudLineSpacing
	op.GeoM.Translate(hudMarginX+1, hudMarginY+1)
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleWithColor(hudShadow)
	op.ColorScale.ScaleAlpha(float32(o.alpha))
	text.Draw(screen, msg, face, op)

	op = &text.DrawOptions{}
	op.LineSpacing = hudLineSpacing
	op.GeoM.Translate(hudMarginX, hudMarginY)
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleAlpha(float32(o.alpha))
	text.Draw(screen, msg, face, op)
}

package claylake

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the FPS readout is redrawn.
const fpsRefresh = 0.5

// fpsWidget caches the FPS/TPS readout in a small image that is refreshed
// every fpsRefresh seconds rather than every frame.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
}

// update advances the refresh timer and redraws the readout when it is due.
func (w *fpsWidget) update(dt float64) {
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
		w.elapsed = fpsRefresh
	}
	w.elapsed += dt
	if w.elapsed < fpsRefresh {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// draw blits the readout into the top-left corner, scaled to the surface's
// pixel density.
func (w *fpsWidget) draw(screen *ebiten.Image, scale float64) {
	if w.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(w.img, &op)
}

package claylake

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a resizable window and runs scene until the window is closed or
// the scene is. It applies cfg to the scene first and loads cfg.Script if
// set. A clean shutdown returns nil.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	if err := scene.apply(cfg); err != nil {
		return err
	}
	defer scene.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// apply copies the scene-level settings of cfg onto s.
func (s *Scene) apply(cfg RunConfig) error {
	s.ShowFPS = cfg.ShowFPS
	s.ScreenshotDir = cfg.ScreenshotDir
	s.SetDebugMode(cfg.Debug)
	if cfg.Script == "" {
		return nil
	}
	data, err := os.ReadFile(cfg.Script)
	if err != nil {
		return fmt.Errorf("read capture script: %w", err)
	}
	runner, err := LoadCaptureScript(data)
	if err != nil {
		return err
	}
	s.SetCaptureRunner(runner)
	return nil
}

package claylake

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// scrubStep is how far Left/Right move the clock; Shift multiplies it.
	scrubStep      = 100 * time.Millisecond
	scrubShiftMult = 10
)

// KeyAction is what a keyboard shortcut does to the scene.
type KeyAction uint8

const (
	ActionNone KeyAction = iota
	ActionTogglePause
	ActionScreenshot
	ActionToggleDebug
	ActionScrubBack
	ActionScrubForward
	ActionClose
)

// keyBindings maps shortcut keys to actions.
var keyBindings = []struct {
	key    ebiten.Key
	action KeyAction
}{
	{ebiten.KeySpace, ActionTogglePause},
	{ebiten.KeyS, ActionScreenshot},
	{ebiten.KeyD, ActionToggleDebug},
	{ebiten.KeyArrowLeft, ActionScrubBack},
	{ebiten.KeyArrowRight, ActionScrubForward},
	{ebiten.KeyEscape, ActionClose},
}

func shiftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// handleInput polls the keyboard, mouse and touch screen and applies the
// matching actions. A click or tap anywhere toggles pause.
func (s *Scene) handleInput() {
	shift := shiftPressed()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			s.Apply(b.action, shift)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Apply(ActionTogglePause, false)
	}
	var touches [4]ebiten.TouchID
	if len(inpututil.AppendJustPressedTouchIDs(touches[:0])) > 0 {
		s.Apply(ActionTogglePause, false)
	}
}

// Apply performs a single shortcut action. large selects the coarse scrub
// step.
func (s *Scene) Apply(action KeyAction, large bool) {
	step := scrubStep
	if large {
		step *= scrubShiftMult
	}
	switch action {
	case ActionTogglePause:
		s.clock.Toggle()
	case ActionScreenshot:
		s.Screenshot("manual")
	case ActionToggleDebug:
		s.SetDebugMode(!s.debug)
	case ActionScrubBack:
		s.scrub(-step)
	case ActionScrubForward:
		s.scrub(step)
	case ActionClose:
		s.Close()
	}
}

// scrub moves the clock by d, wrapping within one loop.
func (s *Scene) scrub(d time.Duration) {
	loop := time.Duration(LoopSeconds) * time.Second
	e := (s.clock.Elapsed() + d) % loop
	if e < 0 {
		e += loop
	}
	s.clock.Seek(e)
}

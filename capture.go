package claylake

import (
	"encoding/json"
	"fmt"
	"time"
)

// captureStep is a single action in a capture script.
type captureStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	T      *float64 `json:"t,omitempty"`
	Ms     int64    `json:"ms,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// captureScript is the top-level JSON structure for a capture script.
type captureScript struct {
	Steps []captureStep `json:"steps"`
}

// CaptureRunner plays a capture script one step per frame: seeking the
// clock, pausing it, taking screenshots and finally closing the scene.
// Attach to a Scene via SetCaptureRunner.
type CaptureRunner struct {
	steps     []captureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadCaptureScript parses a JSON capture script and returns a runner ready
// to be attached to a Scene. A "sweep" step is expanded into a seek and a
// screenshot per frame, spread evenly over one loop.
//
//	{"steps": [
//	  {"action": "pause"},
//	  {"action": "seek", "t": 0.5},
//	  {"action": "screenshot", "label": "struggle"},
//	  {"action": "sweep", "frames": 24, "label": "loop"},
//	  {"action": "quit"}
//	]}
func LoadCaptureScript(jsonData []byte) (*CaptureRunner, error) {
	var script captureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse capture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse capture script: no steps")
	}

	steps := make([]captureStep, 0, len(script.Steps))
	for i, st := range script.Steps {
		switch st.Action {
		case "pause", "resume", "screenshot", "wait", "quit":
			steps = append(steps, st)
		case "seek":
			if st.T != nil && (*st.T < 0 || *st.T >= 1) {
				return nil, fmt.Errorf("parse capture script: step %d: t %v outside [0, 1)", i, *st.T)
			}
			if st.Ms < 0 {
				return nil, fmt.Errorf("parse capture script: step %d: negative ms", i)
			}
			steps = append(steps, st)
		case "sweep":
			if st.Frames < 1 {
				return nil, fmt.Errorf("parse capture script: step %d: sweep needs frames >= 1", i)
			}
			steps = append(steps, sweepSteps(st.Label, st.Frames)...)
		default:
			return nil, fmt.Errorf("parse capture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &CaptureRunner{steps: steps}, nil
}

// sweepSteps pauses the clock and captures n frames at t = i/n.
func sweepSteps(label string, n int) []captureStep {
	if label == "" {
		label = "sweep"
	}
	steps := make([]captureStep, 0, 2*n+1)
	steps = append(steps, captureStep{Action: "pause"})
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		steps = append(steps,
			captureStep{Action: "seek", T: &t},
			captureStep{Action: "screenshot", Label: fmt.Sprintf("%s_%03d", label, i)},
		)
	}
	return steps
}

// SetCaptureRunner attaches a CaptureRunner to the scene. The runner's step
// method is called from Scene.Update each frame.
func (s *Scene) SetCaptureRunner(runner *CaptureRunner) {
	s.runner = runner
}

// Done reports whether all steps in the capture script have been executed.
func (r *CaptureRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *CaptureRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "pause":
		s.clock.Pause()
	case "resume":
		s.clock.Resume()
	case "seek":
		if st.T != nil {
			s.clock.SeekT(*st.T)
		} else {
			s.clock.Seek(time.Duration(st.Ms) * time.Millisecond)
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		r.done = true
		s.Close()
		return
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

package claylake

import (
	"fmt"
	"os"
)

// debugLogInterval is how many drawn frames pass between two stats lines.
const debugLogInterval = 60

// debugLog prints painter timings and the current animation state to stderr.
// Only every debugLogInterval-th frame is reported.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug || s.drawn%debugLogInterval != 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[claylake] background: %v | water: %v | characters: %v | total: %v\n",
		stats.background, stats.water, stats.characters, stats.total())
	_, _ = fmt.Fprintf(os.Stderr,
		"[claylake] t: %.3f | phase: %s | k: %.2f | surface: %dx%d @%.2fx\n",
		s.frame.T, s.frame.Phase, s.frame.K,
		s.surface.pixelW, s.surface.pixelH, s.surface.Scale())
}

// reportCanvasFailure logs, once, why no drawing context could be obtained.
// Outside debug mode the frame is skipped silently.
func (s *Scene) reportCanvasFailure() {
	if !s.debug || s.canvasReported {
		return
	}
	s.canvasReported = true
	err := s.surface.canvasErr
	if err == nil {
		err = errNoSurface
	}
	_, _ = fmt.Fprintf(os.Stderr, "[claylake] skipping frame: %v\n", err)
}

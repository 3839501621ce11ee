package claylake

import "testing"

func TestReportCanvasFailureOnce(t *testing.T) {
	s := NewScene()
	s.reportCanvasFailure()
	if s.canvasReported {
		t.Error("failures outside debug mode should stay silent")
	}

	s.SetDebugMode(true)
	s.reportCanvasFailure()
	if !s.canvasReported {
		t.Fatal("debug mode should report the failure")
	}
	s.reportCanvasFailure() // second call is a no-op
}

func TestDrawWithoutSurfaceSkipsFrame(t *testing.T) {
	s, _ := newTestScene()
	s.SetDebugMode(true)
	s.Draw(nil)
	if s.drawn != 0 {
		t.Errorf("drawn = %d, want 0 without a surface", s.drawn)
	}
	if !s.canvasReported {
		t.Error("missing surface should be reported in debug mode")
	}
}

func TestFrameStatsTotal(t *testing.T) {
	st := frameStats{background: 3, water: 4, characters: 5}
	if st.total() != 12 {
		t.Errorf("total = %v, want 12", st.total())
	}
}

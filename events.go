package claylake

// PhaseEvent is emitted when a drawn frame lands in a different phase than
// the frame before it. T is the normalized time of the new frame.
type PhaseEvent struct {
	From Phase
	To   Phase
	T    float64
}

// PhaseObserver receives phase transitions from a Scene.
type PhaseObserver interface {
	PhaseChanged(PhaseEvent)
}

// PhaseObserverFunc adapts a plain function to PhaseObserver.
type PhaseObserverFunc func(PhaseEvent)

// PhaseChanged calls f(e).
func (f PhaseObserverFunc) PhaseChanged(e PhaseEvent) {
	f(e)
}

// SetPhaseObserver attaches an observer that is told about every phase
// change between consecutive drawn frames. Pass nil to detach.
func (s *Scene) SetPhaseObserver(o PhaseObserver) {
	s.observer = o
}

// notifyPhase compares frame against the previous drawn frame and emits a
// PhaseEvent when the phase changed. The first frame only records its phase.
func (s *Scene) notifyPhase(frame Frame) {
	prev, had := s.lastPhase, s.havePhase
	s.lastPhase, s.havePhase = frame.Phase, true
	if !had || prev == frame.Phase || s.observer == nil {
		return
	}
	s.observer.PhaseChanged(PhaseEvent{From: prev, To: frame.Phase, T: frame.T})
}

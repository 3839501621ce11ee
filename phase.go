package claylake

import "math"

// Phase names a sub-interval of the loop with its own pose rules.
type Phase uint8

const (
	PhaseRise     Phase = iota // fish lifts off the surface
	PhaseHover                 // fish bobs in place
	PhaseSwoop                 // eagle dives in and grabs the fish
	PhaseStruggle              // fish thrashes while carried
	PhaseFall                  // fish is dropped and accelerates downward
	PhaseSubmerge              // splash, then the fish is gone
	PhaseReset                 // fish resurfaces to its starting pose
)

var phaseNames = [...]string{
	PhaseRise:     "rise",
	PhaseHover:    "hover",
	PhaseSwoop:    "swoop",
	PhaseStruggle: "struggle",
	PhaseFall:     "fall",
	PhaseSubmerge: "submerge",
	PhaseReset:    "reset",
}

// String returns the phase's lowercase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

type phaseSpan struct {
	phase      Phase
	start, end float64
}

// phaseTable partitions [0, 1). Spans are right-exclusive and contiguous.
var phaseTable = [...]phaseSpan{
	{PhaseRise, 0.00, 0.14},
	{PhaseHover, 0.14, 0.30},
	{PhaseSwoop, 0.30, 0.50},
	{PhaseStruggle, 0.50, 0.66},
	{PhaseFall, 0.66, 0.80},
	{PhaseSubmerge, 0.80, 0.90},
	{PhaseReset, 0.90, 1.00},
}

// Bounds returns the phase's [start, end) interval of normalized time.
func (p Phase) Bounds() (start, end float64) {
	if int(p) >= len(phaseTable) {
		return 0, 0
	}
	s := phaseTable[p]
	return s.start, s.end
}

// PhaseAt returns the phase containing t and the linear progress k through
// it. t must already be wrapped into [0, 1); the final phase absorbs t == 1
// so k reaches exactly 1 there.
func PhaseAt(t float64) (Phase, float64) {
	for _, s := range phaseTable {
		if t < s.end {
			return s.phase, clamp01((t - s.start) / (s.end - s.start))
		}
	}
	return PhaseReset, 1
}

// WrapTime folds any real t into [0, 1).
func WrapTime(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	if t >= 1 {
		return 0
	}
	return t
}

package claylake

import "math"

// Pose is where a character is drawn for one frame.
type Pose struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians
	Visible        bool
}

// Fish choreography, in design units.
const (
	riseLift   = 16 // rise above the water line
	hoverBob   = 6  // hover amplitude
	swoopLift  = 40 // extra lift while caught
	carryX     = 20 // drift right while carried
	carryY     = 30 // climb while carried
	sinkDepth  = 10 // depth below the surface during submerge/reset
	gripOffset = 26 // eagle body above the fish it holds
)

// splashWindow is the fraction of submerge during which the fish is still
// drawn as it breaks the surface.
const splashWindow = 0.15

const twoPi = 2 * math.Pi

// fishOrigin is the fish's rest pose position: centered on the lake surface.
func fishOrigin(sz Size) (x, y float64) {
	return sz.Width / 2, sz.WaterTop()
}

// heldPosition is the un-oscillated fish position at struggle progress k: it
// starts where swoop leaves the fish and climbs up-right with the eagle.
func heldPosition(sz Size, k float64) (x, y float64) {
	u := sz.Unit()
	x0, y0 := fishOrigin(sz)
	return x0 + carryX*u*k, y0 - (riseLift+swoopLift)*u - carryY*u*k
}

// FishPose computes the fish pose at normalized time t. Every phase starts
// exactly where the previous one ends, and reset lands on the rise start pose,
// so the pose is continuous over the whole loop including the seam.
func FishPose(t float64, sz Size) Pose {
	u := sz.Unit()
	x0, y0 := fishOrigin(sz)
	p := Pose{X: x0, Y: y0, ScaleX: 1, ScaleY: 1, Visible: true}

	phase, k := PhaseAt(t)
	switch phase {
	case PhaseRise:
		p.Y = y0 - riseLift*u*easeInOut(k)

	case PhaseHover:
		bob := math.Sin(twoPi * 2 * k)
		p.Y = y0 - riseLift*u - hoverBob*u*bob
		p.Rotation = 0.08 * bob

	case PhaseSwoop:
		s := smoothstep(k)
		wobble := math.Sin(3*math.Pi*k) * s
		p.Y = y0 - riseLift*u - swoopLift*u*s
		p.ScaleX = 1 + 0.08*wobble
		p.ScaleY = 1 - 0.06*wobble
		p.Rotation = 0.25 * math.Sin(4*math.Pi*k) * s

	case PhaseStruggle:
		hx, hy := heldPosition(sz, k)
		squash := math.Sin(twoPi * 7 * k)
		p.X = hx + 4*u*math.Sin(twoPi*6*k)
		p.Y = hy + 3*u*math.Sin(twoPi*8*k)
		p.ScaleX = 1 + 0.10*squash
		p.ScaleY = 1 - 0.08*squash
		p.Rotation = 0.35 * math.Sin(twoPi*6*k)

	case PhaseFall:
		rx, ry := heldPosition(sz, 1)
		p.X = lerp(rx, x0, k)
		p.Y = ry + (y0-ry)*k*k
		p.Rotation = 1.2 * math.Sin(math.Pi*k)

	case PhaseSubmerge:
		p.Y = y0 + sinkDepth*u*k
		p.Visible = k < splashWindow

	case PhaseReset:
		p.Y = y0 + sinkDepth*u*(1-easeInOut(k))
	}
	return p
}

// eagleStart is where the swoop begins: above and left of the surface.
func eagleStart(sz Size) (x, y float64) {
	return -0.25 * sz.Width, 0.08 * sz.Height
}

// EaglePose computes the eagle pose at normalized time t. The eagle is
// visible from the start of swoop until the end of submerge, by which point it
// has flown off the surface.
func EaglePose(t float64, sz Size) Pose {
	u := sz.Unit()
	sx, sy := eagleStart(sz)
	p := Pose{X: sx, Y: sy, ScaleX: 1, ScaleY: 1, Rotation: 0.6}

	phase, k := PhaseAt(t)
	switch phase {
	case PhaseSwoop:
		gx, gy := heldPosition(sz, 0)
		gy -= gripOffset * u
		p.X = lerp(sx, gx, easeOut(k))
		p.Y = lerp(sy, gy, easeIn(k))
		p.Rotation = lerp(0.6, -0.3, k)
		p.Visible = true

	case PhaseStruggle:
		hx, hy := heldPosition(sz, k)
		p.X = hx + 2*u*math.Sin(twoPi*3*k)
		p.Y = hy - gripOffset*u + 3*u*math.Sin(twoPi*4*k)
		p.Rotation = -0.3 + 0.08*math.Sin(twoPi*3*k)
		p.Visible = true

	case PhaseFall:
		rx, ry := heldPosition(sz, 1)
		e := easeIn(k)
		p.X = rx + 0.8*sz.Width*e
		p.Y = ry - gripOffset*u - 0.4*sz.Height*e + 2*u*math.Sin(twoPi*2*k)
		p.Rotation = -0.3 - 0.25*e + 0.05*math.Sin(twoPi*2*k)
		p.Visible = true

	case PhaseSubmerge:
		rx, ry := heldPosition(sz, 1)
		p.X = rx + 0.8*sz.Width + 0.35*sz.Width*k
		p.Y = ry - gripOffset*u - 0.4*sz.Height - 0.15*sz.Height*k
		p.Rotation = -0.55
		p.Visible = true
	}
	return p
}

// WingFlap returns the eagle's wing angle offset at t. It completes a whole
// number of beats per loop so the seam is invisible.
func WingFlap(t float64) float64 {
	return 0.45 * math.Sin(twoPi*36*t)
}

// RippleState is the splash ring set drawn under a visible fish.
type RippleState struct {
	Visible bool
	X, Y    float64
	Phase   float64 // (7t) mod 1
}

// Frame is everything the character animator derives from t.
type Frame struct {
	T      float64
	Phase  Phase
	K      float64
	Fish   Pose
	Eagle  Pose
	Flap   float64
	Ripple RippleState
}

// Animate evaluates the phase table at t for a surface of size sz.
func Animate(t float64, sz Size) Frame {
	phase, k := PhaseAt(t)
	fish := FishPose(t, sz)
	return Frame{
		T:     t,
		Phase: phase,
		K:     k,
		Fish:  fish,
		Eagle: EaglePose(t, sz),
		Flap:  WingFlap(t),
		Ripple: RippleState{
			Visible: fish.Visible,
			X:       fish.X,
			Y:       sz.WaterTop(),
			Phase:   WrapTime(7 * t),
		},
	}
}

// Package claylake paints an animated claymation lake for [Ebitengine]: a
// fish leaps from the water, an eagle swoops down and grabs it, the fish
// struggles free and falls back in. The whole scene repeats every
// [LoopSeconds] seconds.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a resizable window
// and game loop for you:
//
//	claylake.Run(claylake.NewScene(), claylake.RunConfig{Debug: true})
//
// [Scene] implements [ebiten.Game], so it can also be driven directly by
// ebiten.RunGame or embedded in another game's Update/Draw/Layout.
//
// # Time and phases
//
// Every frame is a pure function of normalized time t in [0, 1) and the
// logical canvas size. [PhaseAt] splits the loop into seven phases (rise,
// hover, swoop, struggle, fall, submerge, reset) and [Animate] computes the
// fish and eagle [Pose] for any t. Poses are continuous across every phase
// boundary and across the loop seam.
//
// # Drawing
//
// Painters draw through the [Canvas] interface: a save/restore transform
// stack with solid, linear and radial gradient paints. The Ebitengine
// implementation tessellates paths with ebiten/v2/vector and shades
// gradients with a Kage shader. [Surface] owns the backing image and sizes
// it to the container times the device scale factor, capped at 2.
//
// All geometry is expressed in design units of min(width, height)/360, so a
// frame drawn at twice the size is the same picture at twice the scale.
//
// # Capture
//
// [Scene.Screenshot] writes PNGs of the painted frame. A JSON capture script
// ([LoadCaptureScript]) can pause the clock, seek to exact times and take
// screenshots, which is how loop frames are exported deterministically.
//
// # ECS integration
//
// [Scene.SetPhaseObserver] reports phase transitions. The claylake/ecs
// module forwards them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package claylake

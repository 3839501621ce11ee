// Package ecs provides ECS adapters for claylake.
//
// The primary adapter is [NewDonburiObserver], which bridges claylake phase
// transitions into a [Donburi] world as typed events. Subscribe to
// [PhaseEventType] in your ECS systems to receive them.
//
// Usage:
//
//	scene.SetPhaseObserver(ecs.NewDonburiObserver(world))
//	ecs.PhaseEventType.Subscribe(world, onPhase)
//	// each tick:
//	ecs.PhaseEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

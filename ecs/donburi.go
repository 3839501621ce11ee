package ecs

import (
	"github.com/phanxgames/claylake"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PhaseEventType is the Donburi event type for claylake phase transitions.
var PhaseEventType = events.NewEventType[claylake.PhaseEvent]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates a PhaseObserver backed by a Donburi world.
// Transitions are published to PhaseEventType and delivered by
// PhaseEventType.ProcessEvents.
func NewDonburiObserver(world donburi.World) claylake.PhaseObserver {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) PhaseChanged(event claylake.PhaseEvent) {
	PhaseEventType.Publish(o.world, event)
}

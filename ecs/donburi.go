package ecs

import (
	"github.com/phanxgames/gamebase"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MapEventType carries gamebase map events inside a Donburi world. Events are
// queued on Publish and delivered when the world's systems call ProcessEvents.
var MapEventType = events.NewEventType[gamebase.MapEvent]()

// worldSink forwards every map event into one Donburi world.
type worldSink struct {
	world donburi.World
}

// NewDonburiStore returns an EventStore for Map.SetEventStore. Entity
// additions, removals and map load/unload become MapEventType events in world.
func NewDonburiStore(world donburi.World) gamebase.EventStore {
	return worldSink{world: world}
}

func (s worldSink) EmitEvent(e gamebase.MapEvent) {
	MapEventType.Publish(s.world, e)
}

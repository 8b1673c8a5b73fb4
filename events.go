package gamebase

// EventStore is the interface for optional ECS integration.
// When set on a Map, lifecycle events are forwarded to it.
type EventStore interface {
	EmitEvent(event MapEvent)
}

// EventType identifies a kind of map lifecycle event.
type EventType uint8

const (
	EventEntityAdded     EventType = iota // entity joined the live set
	EventEntityDestroyed                  // RemoveEntity ran the destroy hook
	EventEntityRemoved                    // entity left the live set
	EventMapLoaded                        // LoadAll finished
	EventMapUnloaded                      // UnloadAll finished
)

// MapEvent carries lifecycle data for the ECS bridge. EntityID is 0 for
// map-level events and for entities destroyed before admission.
type MapEvent struct {
	Type     EventType
	EntityID uint32
	Entity   Entity
	Tick     uint64
}

func (m *Map) emit(t EventType, e Entity) {
	if m.store == nil {
		return
	}
	ev := MapEvent{Type: t, Entity: e, Tick: m.tick}
	if e != nil {
		ev.EntityID = e.Base().id
	}
	m.store.EmitEvent(ev)
}

// Package ecs provides ECS adapters for gamebase's map lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges gamebase map events
// (entity added, destroyed, removed, map loaded and unloaded) into a [Donburi]
// world as typed events. Subscribe to [MapEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	gameMap.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

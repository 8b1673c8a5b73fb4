// Package gamebase is a small 2D scene framework for [Ebitengine].
//
// A game is a set of maps. Each [Map] owns the entities placed on it, updates
// them once per tick, draws them in depth order through its viewports, and
// answers collision queries by entity kind.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the game loop for you:
//
//	world := gamebase.DefaultWorld()
//	m := gamebase.NewMap(world, 2000, 1200, nil)
//	// ... add entities ...
//	game := gamebase.NewGame(world, m)
//	gamebase.Run(game, world.RunConfig())
//
// For full control, call [Map.Update] and [Map.Draw] from your own
// [ebiten.Game].
//
// # Entities
//
// An entity is any type that embeds [GameObject] and implements Update and
// LoadContent:
//
//	type Ship struct {
//		gamebase.GameObject
//	}
//
//	func (s *Ship) Update(f gamebase.Frame)                 { s.Position.X += 2 }
//	func (s *Ship) LoadContent(c *gamebase.Content) error { return nil }
//
// Optional hooks ([Drawer], [ViewDrawer], [Destroyer], [Unloader]) are picked
// up by type assertion.
//
// Adding and removing entities is deferred. An entity added to a loaded map,
// or added while the map is updating, joins the map at the start of the next
// Update. A removed entity is disabled at once and leaves the map at the start
// of the next Update. Entity slices returned by the map are never mutated
// under a running loop.
//
// # Collision
//
// Attach a [RectangleMask] or [CircleMask], or any type implementing [Mask],
// and query with [CollidingWith]. The type parameter selects the kinds to
// test, so an interface type acts as a capability filter:
//
//	for _, w := range gamebase.CollidingWith[Wall](m, player) {
//		// ...
//	}
//
// The built-in masks sample the outline of the receiving shape. Query from
// the smaller shape when one may sit entirely inside the other.
//
// # Viewports
//
// A [Viewport] shows a region of the map on a region of the screen. Entities
// are culled and clipped per viewport. Entities with StaticView set skip the
// viewports and draw in screen space on top. Viewports scroll with tweens
// (via [gween]) and can follow an entity.
//
// # Configuration and logging
//
// [World] carries display, coordinate mode, logging and content settings and
// can be read from TOML or YAML with [LoadWorld]. Maps, content stores and
// games log through [zap] when given a logger.
//
// Map lifecycle events can be forwarded to a [Donburi] world through the
// adapter in gamebase/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [zap]: https://github.com/uber-go/zap
// [Donburi]: https://github.com/yohamta/donburi
package gamebase

package gamebase

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entity is a unit placed on a Map. Concrete kinds embed GameObject, which
// supplies Base, and implement Update and LoadContent.
//
// The map never calls Update on a Disabled entity and never draws an entity
// that is not Active.
type Entity interface {
	Base() *GameObject
	// Update runs once per map tick.
	Update(f Frame)
	// LoadContent runs after the entity's Visual (if any) has loaded, either
	// from Map.LoadAll or when the entity is admitted to a loaded map.
	LoadContent(c *Content) error
}

// Drawer overrides the default draw, which draws the Visual at the entity
// position.
type Drawer interface {
	Draw(dst *ebiten.Image, pos Vector, f Frame)
}

// ViewDrawer overrides the default viewport draw, which draws the Visual
// clipped to src at the entity position plus offset.
type ViewDrawer interface {
	DrawView(dst *ebiten.Image, offset Vector, f Frame, src image.Rectangle)
}

// Destroyer is notified synchronously when the entity is removed from its map.
type Destroyer interface {
	OnDestroy()
}

// Unloader is notified when its map unloads content.
type Unloader interface {
	UnloadContent()
}

// entityIDCounter is a plain counter; gamebase is single-threaded.
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// GameObject holds the state every entity shares. Embed it by value:
//
//	type Ship struct {
//		gamebase.GameObject
//		speed float64
//	}
type GameObject struct {
	Position Vector
	Status   Status

	// Depth orders drawing: greater depth draws first, underneath.
	Depth int

	// StaticView entities bypass viewports and are drawn in screen space on
	// top of everything the viewports draw.
	StaticView bool

	// Mask is nil for entities that never collide.
	Mask Mask

	// Visual is nil for logic-only entities.
	Visual Visual

	id      uint32
	owner   *Map // set once, at admission
	queued  *Map // set while waiting in owner's pendingAdd
	removed bool
}

// Base returns o. It lets any struct embedding GameObject satisfy Entity.
func (o *GameObject) Base() *GameObject {
	return o
}

// ID returns the identifier assigned when the entity was first admitted to a
// map, or 0 before that.
func (o *GameObject) ID() uint32 {
	return o.id
}

// Map returns the map that admitted this entity, or nil. It is not cleared
// when the entity is removed.
func (o *GameObject) Map() *Map {
	return o.owner
}

// Removed reports whether RemoveEntity has been called for this entity.
func (o *GameObject) Removed() bool {
	return o.removed
}

// Footprint returns the axis-aligned rectangle covered by the Visual at the
// entity position. Entities without a Visual have an empty footprint.
func (o *GameObject) Footprint() Rect {
	if o.Visual == nil {
		return Rect{X: o.Position.X, Y: o.Position.Y}
	}
	return Rect{
		X:      o.Position.X,
		Y:      o.Position.Y,
		Width:  float64(o.Visual.Width()),
		Height: float64(o.Visual.Height()),
	}
}

// --- Hook dispatch ---

func updateEntity(e Entity, f Frame) {
	if e.Base().Status == StatusDisabled {
		return
	}
	e.Update(f)
}

func loadEntity(e Entity, c *Content) error {
	if v := e.Base().Visual; v != nil {
		if err := v.Load(c); err != nil {
			return err
		}
	}
	return e.LoadContent(c)
}

func drawEntity(dst *ebiten.Image, e Entity, f Frame) {
	o := e.Base()
	if o.Status != StatusActive {
		return
	}
	if d, ok := e.(Drawer); ok {
		d.Draw(dst, o.Position, f)
		return
	}
	if o.Visual != nil {
		o.Visual.Draw(dst, o.Position, f)
	}
}

func drawEntityView(dst *ebiten.Image, e Entity, offset Vector, f Frame, src image.Rectangle) {
	o := e.Base()
	if o.Status != StatusActive {
		return
	}
	if d, ok := e.(ViewDrawer); ok {
		d.DrawView(dst, offset, f, src)
		return
	}
	if o.Visual != nil {
		o.Visual.DrawClipped(dst, o.Position.Add(offset), f, src)
	}
}

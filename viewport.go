package gamebase

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the world origin X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps a rectangle of world space onto a rectangle of the screen.
// Non-static entities are drawn through every active viewport of their map.
type Viewport struct {
	// World is the top-left corner of the world region shown.
	World Vector
	// Screen is the top-left corner of the screen region drawn into.
	Screen Vector
	// Width and Height size both regions.
	Width, Height int
	// Active viewports draw; inactive ones are skipped.
	Active bool

	followTarget Entity
	followLerp   float64

	scrollTween *scrollAnim
}

// NewViewport creates an active viewport. Panics if width or height is not
// positive.
func NewViewport(world, screen Vector, width, height int) *Viewport {
	if width <= 0 || height <= 0 {
		panic("gamebase: viewport size must be positive")
	}
	return &Viewport{
		World:  world,
		Screen: screen,
		Width:  width,
		Height: height,
		Active: true,
	}
}

// WorldRect returns the world-space region shown by the viewport.
func (v *Viewport) WorldRect() Rect {
	return Rect{X: v.World.X, Y: v.World.Y, Width: float64(v.Width), Height: float64(v.Height)}
}

// ScreenRect returns the screen-space region drawn into.
func (v *Viewport) ScreenRect() image.Rectangle {
	return Rect{X: v.Screen.X, Y: v.Screen.Y, Width: float64(v.Width), Height: float64(v.Height)}.Image()
}

// offset is the world-to-screen translation.
func (v *Viewport) offset() Vector {
	return v.Screen.Sub(v.World)
}

// WorldToScreen converts a world position to a screen position.
func (v *Viewport) WorldToScreen(p Vector) Vector {
	return p.Add(v.offset())
}

// ScreenToWorld converts a screen position to a world position.
func (v *Viewport) ScreenToWorld(p Vector) Vector {
	return p.Sub(v.offset())
}

// Visible reports whether e's visual footprint touches the viewport's world
// region. Entities without a Visual are never visible.
func (v *Viewport) Visible(e Entity) bool {
	o := e.Base()
	if o.Visual == nil {
		return false
	}
	return o.Footprint().Intersects(v.WorldRect())
}

// Move translates the world origin by offset, then clamps each axis so the
// viewport stays inside a map of mapW by mapH.
func (v *Viewport) Move(offset Vector, mapW, mapH int) {
	v.World = v.World.Add(offset)
	v.ClampTo(mapW, mapH)
}

// ClampTo replaces each world-origin coordinate that would put the viewport
// outside [0, mapW] x [0, mapH]. A viewport larger than the map is pinned to 0.
func (v *Viewport) ClampTo(mapW, mapH int) {
	v.World.X = clampAxis(v.World.X, v.Width, mapW)
	v.World.Y = clampAxis(v.World.Y, v.Height, mapH)
}

func clampAxis(origin float64, size, limit int) float64 {
	origin = min(origin, float64(limit-size))
	return max(origin, 0)
}

// CenterOn moves the world origin so (x, y) sits in the middle of the
// viewport, clamped to the map.
func (v *Viewport) CenterOn(x, y float64, mapW, mapH int) {
	v.World.X = x - float64(v.Width)/2
	v.World.Y = y - float64(v.Height)/2
	v.ClampTo(mapW, mapH)
}

// ScrollTo animates the world origin to (x, y) over duration seconds. The
// animation advances in Map.Update and is clamped to the map each tick.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.World.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.World.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Follow keeps e's footprint centered, moving a lerp fraction of the way each
// tick. A lerp of 1.0 snaps immediately. Following stops when e is removed.
func (v *Viewport) Follow(e Entity, lerp float64) {
	v.followTarget = e
	v.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (v *Viewport) Unfollow() {
	v.followTarget = nil
}

// update advances follow and scroll, then clamps. Called from Map.Update.
func (v *Viewport) update(f Frame, mapW, mapH int) {
	if v.followTarget != nil {
		o := v.followTarget.Base()
		if o.removed {
			v.followTarget = nil
		} else {
			fp := o.Footprint()
			targetX := fp.X + fp.Width/2 - float64(v.Width)/2
			targetY := fp.Y + fp.Height/2 - float64(v.Height)/2
			v.World.X += (targetX - v.World.X) * v.followLerp
			v.World.Y += (targetY - v.World.Y) * v.followLerp
		}
	}

	if v.scrollTween != nil {
		dt := f.Seconds()
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.World.X = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.World.Y = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}

	v.ClampTo(mapW, mapH)
}

// draw renders the visible entities clipped to the viewport. Each entity's
// source region starts at the viewport origin relative to the entity and spans
// the viewport size; the visual discards whatever falls outside its frame.
func (v *Viewport) draw(dst *ebiten.Image, entities []Entity, f Frame) {
	if !v.Active {
		return
	}
	target := dst
	if dst != nil {
		target = dst.SubImage(v.ScreenRect()).(*ebiten.Image)
	}
	offset := v.offset()
	for _, e := range entities {
		if !v.Visible(e) {
			continue
		}
		pos := e.Base().Position
		src := image.Rect(
			int(v.World.X-pos.X), int(v.World.Y-pos.Y),
			int(v.World.X-pos.X)+v.Width, int(v.World.Y-pos.Y)+v.Height,
		)
		drawEntityView(target, e, offset, f, src)
	}
}

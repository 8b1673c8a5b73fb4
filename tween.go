package gamebase

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 fields of an entity simultaneously.
// Create one with TweenPosition, TweenPosition3D or TweenAlpha and call Update
// each tick, usually from the owning entity's Update. If the target
// entity is removed from its map, the group stops immediately.
//
// There is no global animation manager. Callers drive their own groups.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	target Entity
	Done   bool
}

// Update advances all tweens by f.Delta and writes the values to the target
// fields. If the target has been removed, Done is set and no writes occur.
func (g *TweenGroup) Update(f Frame) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.Base().Removed() {
		g.Done = true
		return
	}

	dt := f.Seconds()
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that moves e to (toX, toY) over duration
// seconds. The Z component of a 3D position is left untouched.
func TweenPosition(e Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	p := &e.Base().Position
	g := &TweenGroup{count: 2, target: e}
	g.tweens[0] = gween.New(float32(p.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(toY), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}

// TweenPosition3D creates a TweenGroup that moves e to to over duration
// seconds. Panics if the arity of to differs from e's position.
func TweenPosition3D(e Entity, to Vector, duration float32, fn ease.TweenFunc) *TweenGroup {
	p := &e.Base().Position
	mustMatch(*p, to, "TweenPosition3D")
	g := &TweenGroup{count: 3, target: e}
	g.tweens[0] = gween.New(float32(p.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(p.Z), float32(to.Z), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	g.fields[2] = &p.Z
	return g
}

// TweenAlpha creates a TweenGroup that fades s's alpha to to over
// duration seconds. The group stops when e is removed.
func TweenAlpha(e Entity, s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: e}
	g.tweens[0] = gween.New(float32(s.Color.A), float32(to), duration, fn)
	g.fields[0] = &s.Color.A
	return g
}

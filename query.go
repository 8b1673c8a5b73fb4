package gamebase

import (
	"fmt"
	"reflect"
)

// CollidingWith returns the live entities of kind T on m whose masks
// intersect subject's mask. T may be a concrete entity type or an interface;
// only type buckets assignable to T are visited.
//
// The result never contains subject itself, Disabled entities, or entities
// without a mask. A subject without a mask collides with nothing. Panics if
// subject has been removed from its map.
func CollidingWith[T Entity](m *Map, subject Entity) []T {
	sub := subject.Base()
	if sub.removed {
		panic(fmt.Sprintf("gamebase: collision query on removed entity %T (ID %d)", subject, sub.id))
	}
	if sub.Mask == nil {
		return nil
	}

	var out []T
	m.eachOfKind(reflect.TypeFor[T](), func(e Entity) {
		if e == subject {
			return
		}
		o := e.Base()
		if o.Status == StatusDisabled || o.Mask == nil {
			return
		}
		if sub.Mask.Intersects(sub.Position, o.Mask, o.Position) {
			out = append(out, e.(T))
		}
	})
	return out
}

// AllOfType returns every live entity on m whose concrete type is assignable
// to T, including Disabled ones still awaiting removal.
func AllOfType[T Entity](m *Map) []T {
	var out []T
	m.eachOfKind(reflect.TypeFor[T](), func(e Entity) {
		out = append(out, e.(T))
	})
	return out
}

// eachOfKind calls fn for every entity in buckets whose type is assignable to
// target, in bucket creation order.
func (m *Map) eachOfKind(target reflect.Type, fn func(Entity)) {
	for _, kind := range m.kinds {
		if !kind.AssignableTo(target) {
			continue
		}
		for _, e := range m.index[kind] {
			fn(e)
		}
	}
}

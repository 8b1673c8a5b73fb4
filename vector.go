package gamebase

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrArity is returned when a vector's component count does not match the
// coordinate mode of the World it is used with.
var ErrArity = errors.New("gamebase: vector arity does not match world mode")

// Vector is a 2D or 3D coordinate. A literal such as Vector{X: 1, Y: 2} is a
// 2D vector; use Vec3 to build a 3D one. Mixing the two in arithmetic panics.
type Vector struct {
	X, Y, Z float64
	is3d    bool
}

// Vec2 returns a 2D vector.
func Vec2(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Vec3 returns a 3D vector.
func Vec3(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, is3d: true}
}

// Is3D reports whether v carries a Z component.
func (v Vector) Is3D() bool {
	return v.is3d
}

// Add returns v + o. Panics if v and o differ in arity.
func (v Vector) Add(o Vector) Vector {
	mustMatch(v, o, "Add")
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, is3d: v.is3d}
}

// Sub returns v - o. Panics if v and o differ in arity.
func (v Vector) Sub(o Vector) Vector {
	mustMatch(v, o, "Sub")
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, is3d: v.is3d}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s, is3d: v.is3d}
}

// Vec2 converts v to an mgl64.Vec2. A 3D vector returns ErrArity.
func (v Vector) Vec2() (mgl64.Vec2, error) {
	if v.is3d {
		return mgl64.Vec2{}, fmt.Errorf("convert 3D vector to Vec2: %w", ErrArity)
	}
	return mgl64.Vec2{v.X, v.Y}, nil
}

// Vec3 converts v to an mgl64.Vec3. A 2D vector returns ErrArity.
func (v Vector) Vec3() (mgl64.Vec3, error) {
	if !v.is3d {
		return mgl64.Vec3{}, fmt.Errorf("convert 2D vector to Vec3: %w", ErrArity)
	}
	return mgl64.Vec3{v.X, v.Y, v.Z}, nil
}

// String formats v as (x, y) or (x, y, z).
func (v Vector) String() string {
	if v.is3d {
		return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
	}
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func mustMatch(a, b Vector, op string) {
	if a.is3d != b.is3d {
		panic(fmt.Sprintf("gamebase: %s on mixed 2D and 3D vectors %v and %v", op, a, b))
	}
}

// Vector builds a vector in w's coordinate mode. Exactly one z must be given
// when w.Is3D is set and none otherwise.
func (w World) Vector(x, y float64, z ...float64) (Vector, error) {
	switch {
	case len(z) > 1:
		return Vector{}, fmt.Errorf("vector with %d z components: %w", len(z), ErrArity)
	case w.Is3D && len(z) == 0:
		return Vector{}, fmt.Errorf("2D vector in a 3D world: %w", ErrArity)
	case !w.Is3D && len(z) == 1:
		return Vector{}, fmt.Errorf("3D vector in a 2D world: %w", ErrArity)
	}
	if w.Is3D {
		return Vec3(x, y, z[0]), nil
	}
	return Vec2(x, y), nil
}

// VectorFromVec2 converts a host 2D vector. Fails in a 3D world.
func (w World) VectorFromVec2(v mgl64.Vec2) (Vector, error) {
	if w.Is3D {
		return Vector{}, fmt.Errorf("Vec2 in a 3D world: %w", ErrArity)
	}
	return Vec2(v[0], v[1]), nil
}

// VectorFromVec3 converts a host 3D vector. Fails in a 2D world.
func (w World) VectorFromVec3(v mgl64.Vec3) (Vector, error) {
	if !w.Is3D {
		return Vector{}, fmt.Errorf("Vec3 in a 2D world: %w", ErrArity)
	}
	return Vec3(v[0], v[1], v[2]), nil
}

// Zero returns the origin in w's coordinate mode.
func (w World) Zero() Vector {
	return Vector{is3d: w.Is3D}
}

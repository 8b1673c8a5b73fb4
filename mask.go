package gamebase

import (
	"errors"
	"fmt"
	"math"
)

// ErrMaskBounds is returned when a mask is constructed with inverted or
// degenerate bounds.
var ErrMaskBounds = errors.New("gamebase: invalid mask bounds")

// Mask is a collision shape attached to an entity. X and Y are the offset from
// the entity position to the shape's center; Width and Height bound the shape
// and may overestimate it but must never underestimate it.
//
// Intersects is not guaranteed to be symmetric. The built-in shapes test a
// finite set of points on their own outline against other.ContainsPoint, so a
// small shape nested entirely inside a larger one is only found when the
// smaller shape is the receiver. Map queries call Intersects on the subject's
// mask.
type Mask interface {
	X() int
	Y() int
	Width() int
	Height() int
	// ContainsPoint reports whether pt lies inside the shape anchored at pos.
	ContainsPoint(pos, pt Vector) bool
	// Intersects reports whether this shape at pos overlaps other at otherPos.
	Intersects(pos Vector, other Mask, otherPos Vector) bool
}

// maskCenter returns the world-space center of m anchored at pos.
func maskCenter(m Mask, pos Vector) (float64, float64) {
	if r, ok := m.(*RectangleMask); ok {
		return pos.X + float64(r.left) + float64(r.width)/2, pos.Y + float64(r.top) + float64(r.height)/2
	}
	return pos.X + float64(m.X()), pos.Y + float64(m.Y())
}

// boundsOverlap is the O(1) early reject shared by every shape: the bounding
// boxes of a and b must overlap on both axes.
func boundsOverlap(a Mask, posA Vector, b Mask, posB Vector) bool {
	ax, ay := maskCenter(a, posA)
	bx, by := maskCenter(b, posB)
	if math.Abs(ax-bx) > float64(a.Width())/2+float64(b.Width())/2 {
		return false
	}
	if math.Abs(ay-by) > float64(a.Height())/2+float64(b.Height())/2 {
		return false
	}
	return true
}

// --- Rectangle ---

// RectangleMask is an axis-aligned rectangle. Its test is exact against
// rectangles and convex shapes. Against concave user shapes it only samples the
// rectangle's outline.
type RectangleMask struct {
	left, top     int
	width, height int
}

// NewRectangleMask builds a rectangle spanning [left, right] x [top, bottom]
// relative to the entity position.
func NewRectangleMask(left, right, top, bottom int) (*RectangleMask, error) {
	if left >= right || top >= bottom {
		return nil, fmt.Errorf("rectangle [%d,%d]x[%d,%d]: %w", left, right, top, bottom, ErrMaskBounds)
	}
	return &RectangleMask{
		left:   left,
		top:    top,
		width:  right - left,
		height: bottom - top,
	}, nil
}

func (m *RectangleMask) X() int      { return m.left + m.width/2 }
func (m *RectangleMask) Y() int      { return m.top + m.height/2 }
func (m *RectangleMask) Width() int  { return m.width }
func (m *RectangleMask) Height() int { return m.height }

// Bounds returns the rectangle in world space when anchored at pos.
func (m *RectangleMask) Bounds(pos Vector) Rect {
	return Rect{
		X:      pos.X + float64(m.left),
		Y:      pos.Y + float64(m.top),
		Width:  float64(m.width),
		Height: float64(m.height),
	}
}

// ContainsPoint reports whether pt lies inside the rectangle. Edges count as
// inside.
func (m *RectangleMask) ContainsPoint(pos, pt Vector) bool {
	return m.Bounds(pos).Contains(pt.X, pt.Y)
}

// Intersects tests the corners, then the edge midpoints, then every integer
// step along the four edges of this rectangle against other.ContainsPoint.
func (m *RectangleMask) Intersects(pos Vector, other Mask, otherPos Vector) bool {
	if !boundsOverlap(m, pos, other, otherPos) {
		return false
	}
	b := m.Bounds(pos)
	l, t := b.X, b.Y
	r, btm := b.X+b.Width, b.Y+b.Height
	cx, cy := l+b.Width/2, t+b.Height/2

	hit := func(x, y float64) bool {
		return other.ContainsPoint(otherPos, Vec2(x, y))
	}

	// Corners, then midpoints.
	if hit(r, t) || hit(r, btm) || hit(l, btm) || hit(l, t) {
		return true
	}
	if hit(r, cy) || hit(cx, btm) || hit(l, cy) || hit(cx, t) {
		return true
	}

	// Full perimeter. Cost is proportional to width+height.
	for i := 0; i <= m.width; i++ {
		x := l + float64(i)
		if hit(x, t) || hit(x, btm) {
			return true
		}
	}
	for i := 0; i <= m.height; i++ {
		y := t + float64(i)
		if hit(l, y) || hit(r, y) {
			return true
		}
	}
	return false
}

// --- Circle ---

// circleSteps is the number of one-degree steps in a quarter turn. Each step
// samples four points, one per quadrant.
const circleSteps = 90

// CircleMask is a circle of integer radius. Intersects samples the
// circumference, so very small or thin shapes can fall between samples.
type CircleMask struct {
	x, y   int
	radius float64

	// Refine subdivides each one-degree step. Values below 1 are treated as 1.
	// Refining by an integer factor keeps every previous sample angle, so it
	// can only add hits.
	Refine int
}

// NewCircleMask builds a circle of radius r centered at offset (x, y).
func NewCircleMask(x, y, r int) (*CircleMask, error) {
	if r <= 0 {
		return nil, fmt.Errorf("circle radius %d: %w", r, ErrMaskBounds)
	}
	return &CircleMask{x: x, y: y, radius: float64(r), Refine: 1}, nil
}

func (m *CircleMask) X() int          { return m.x }
func (m *CircleMask) Y() int          { return m.y }
func (m *CircleMask) Width() int      { return int(2 * m.radius) }
func (m *CircleMask) Height() int     { return int(2 * m.radius) }
func (m *CircleMask) Radius() float64 { return m.radius }

// ContainsPoint reports whether pt lies strictly inside the circle.
func (m *CircleMask) ContainsPoint(pos, pt Vector) bool {
	cx := pos.X + float64(m.x)
	cy := pos.Y + float64(m.y)
	return math.Hypot(pt.X-cx, pt.Y-cy) < m.radius
}

// Intersects samples the circumference against other.ContainsPoint and returns
// on the first hit.
func (m *CircleMask) Intersects(pos Vector, other Mask, otherPos Vector) bool {
	if !boundsOverlap(m, pos, other, otherPos) {
		return false
	}
	cx := pos.X + float64(m.x)
	cy := pos.Y + float64(m.y)
	r := m.radius

	steps := circleSteps * max(m.Refine, 1)
	for i := 0; i < steps; i++ {
		sin, cos := math.Sincos(math.Pi / 2 * float64(i) / float64(steps))
		if other.ContainsPoint(otherPos, Vec2(cx+r*cos, cy+r*sin)) ||
			other.ContainsPoint(otherPos, Vec2(cx-r*sin, cy+r*cos)) ||
			other.ContainsPoint(otherPos, Vec2(cx-r*cos, cy-r*sin)) ||
			other.ContainsPoint(otherPos, Vec2(cx+r*sin, cy-r*cos)) {
			return true
		}
	}
	return false
}

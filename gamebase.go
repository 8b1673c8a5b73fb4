package gamebase

import (
	"image"
	"image/color"
	"time"
)

// Status controls whether an entity updates and draws.
type Status uint8

const (
	StatusActive    Status = iota // updates and draws
	StatusInvisible               // updates but does not draw
	StatusDisabled                // neither updates nor draws
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInvisible:
		return "invisible"
	case StatusDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// MapStatus controls whether a Map updates and draws.
type MapStatus uint8

const (
	MapRunning  MapStatus = iota // updates and draws
	MapPaused                    // draws, does not update
	MapDisabled                  // neither updates nor draws
)

// Frame is the per-tick signal passed unmodified to every entity and visual
// hook. Delta is the simulated time since the previous tick.
type Frame struct {
	Delta time.Duration
	Tick  uint64
}

// Seconds returns Delta in seconds as a float32, the unit gween expects.
func (f Frame) Seconds() float32 {
	return float32(f.Delta.Seconds())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Image converts r to an integer image.Rectangle, truncating toward zero.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts c to a premultiplied color.RGBA for image fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

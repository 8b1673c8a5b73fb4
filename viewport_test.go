package gamebase

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

const epsilon = 1e-6

func TestViewportDefaults(t *testing.T) {
	v := NewViewport(Vec2(10, 20), Vec2(0, 0), 320, 240)
	if !v.Active {
		t.Error("Active = false, want true")
	}
	if v.Width != 320 || v.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", v.Width, v.Height)
	}
}

func TestNewViewportPanicsOnZeroSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-size viewport")
		}
	}()
	NewViewport(Vec2(0, 0), Vec2(0, 0), 0, 10)
}

// --- Move / clamp ---

func TestViewportMoveClampsNegativeToZero(t *testing.T) {
	v := NewViewport(Vec2(5, 5), Vec2(0, 0), 100, 100)
	v.Move(Vec2(-20, -1), 1000, 1000)
	if v.World.X != 0 {
		t.Errorf("World.X = %v, want 0", v.World.X)
	}
	if v.World.Y != 4 {
		t.Errorf("World.Y = %v, want 4", v.World.Y)
	}
}

func TestViewportMoveClampsPastMapEdge(t *testing.T) {
	v := NewViewport(Vec2(850, 0), Vec2(0, 0), 100, 100)
	v.Move(Vec2(200, 0), 1000, 500)
	if v.World.X != 900 {
		t.Errorf("World.X = %v, want mapWidth-width = 900", v.World.X)
	}
}

func TestViewportMoveClampsAxesIndependently(t *testing.T) {
	v := NewViewport(Vec2(0, 0), Vec2(0, 0), 100, 100)
	v.Move(Vec2(50, 10000), 1000, 500)
	if v.World.X != 50 {
		t.Errorf("World.X = %v, want 50 (unclamped axis keeps the move)", v.World.X)
	}
	if v.World.Y != 400 {
		t.Errorf("World.Y = %v, want 400", v.World.Y)
	}
}

func TestViewportLargerThanMapPinsToZero(t *testing.T) {
	v := NewViewport(Vec2(30, 30), Vec2(0, 0), 200, 200)
	v.ClampTo(100, 100)
	if v.World.X != 0 || v.World.Y != 0 {
		t.Errorf("World = %v, want (0, 0)", v.World)
	}
}

func TestViewportCenterOn(t *testing.T) {
	v := NewViewport(Vec2(0, 0), Vec2(0, 0), 100, 50)
	v.CenterOn(300, 200, 1000, 1000)
	if v.World.X != 250 || v.World.Y != 175 {
		t.Errorf("World = %v, want (250, 175)", v.World)
	}
}

// --- Coordinates ---

func TestViewportWorldToScreenRoundTrip(t *testing.T) {
	v := NewViewport(Vec2(100, 50), Vec2(20, 10), 100, 100)
	s := v.WorldToScreen(Vec2(130, 70))
	if s.X != 50 || s.Y != 30 {
		t.Errorf("WorldToScreen = %v, want (50, 30)", s)
	}
	w := v.ScreenToWorld(s)
	if w.X != 130 || w.Y != 70 {
		t.Errorf("ScreenToWorld = %v, want (130, 70)", w)
	}
}

func TestViewportScreenRect(t *testing.T) {
	v := NewViewport(Vec2(0, 0), Vec2(400, 0), 400, 300)
	want := image.Rect(400, 0, 800, 300)
	if got := v.ScreenRect(); got != want {
		t.Errorf("ScreenRect = %v, want %v", got, want)
	}
}

// --- Culling ---

func TestViewportVisible(t *testing.T) {
	v := NewViewport(Vec2(100, 100), Vec2(0, 0), 50, 50)

	tests := []struct {
		name string
		pos  Vector
		want bool
	}{
		{"inside", Vec2(110, 110), true},
		{"overlaps left edge", Vec2(95, 110), true},
		{"touches left edge", Vec2(90, 110), true},
		{"left of viewport", Vec2(80, 110), false},
		{"below viewport", Vec2(110, 151), false},
		{"touches bottom edge", Vec2(110, 150), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newSpy("s", 0)
			e.Visual = &fakeVisual{w: 10, h: 10}
			e.Position = tt.pos
			if got := v.Visible(e); got != tt.want {
				t.Errorf("Visible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewportSkipsEntityWithoutVisual(t *testing.T) {
	v := NewViewport(Vec2(0, 0), Vec2(0, 0), 50, 50)
	e := newSpy("logic", 0)
	if v.Visible(e) {
		t.Error("entity without Visual should not be visible")
	}
}

func TestViewportDrawTranslatesAndClips(t *testing.T) {
	v := NewViewport(Vec2(100, 100), Vec2(10, 20), 50, 40)
	vis := &fakeVisual{w: 30, h: 30}
	e := newSpy("s", 0)
	e.Visual = vis
	e.Position = Vec2(90, 120)

	v.draw(nil, []Entity{e}, Frame{})

	if len(vis.clipped) != 1 {
		t.Fatalf("DrawClipped calls = %d, want 1", len(vis.clipped))
	}
	call := vis.clipped[0]
	// offset = screen - world = (-90, -80)
	if call.pos.X != 0 || call.pos.Y != 40 {
		t.Errorf("pos = %v, want (0, 40)", call.pos)
	}
	want := image.Rect(10, -20, 60, 20)
	if call.src != want {
		t.Errorf("src = %v, want %v", call.src, want)
	}
}

func TestViewportInactiveDrawsNothing(t *testing.T) {
	v := NewViewport(Vec2(0, 0), Vec2(0, 0), 50, 50)
	v.Active = false
	vis := &fakeVisual{w: 10, h: 10}
	e := newSpy("s", 0)
	e.Visual = vis
	v.draw(nil, []Entity{e}, Frame{})
	if len(vis.clipped) != 0 {
		t.Errorf("DrawClipped calls = %d, want 0", len(vis.clipped))
	}
}

// --- Scroll / follow ---

func TestViewportScrollTo(t *testing.T) {
	v := NewViewport(Vec2(0, 0), Vec2(0, 0), 100, 100)
	v.ScrollTo(200, 100, 1.0, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("Scrolling = false after ScrollTo")
	}

	f := Frame{Delta: 500 * time.Millisecond}
	v.update(f, 1000, 1000)
	if !approxEqual(v.World.X, 100, 1) || !approxEqual(v.World.Y, 50, 1) {
		t.Errorf("halfway World = %v, want ~(100, 50)", v.World)
	}
	v.update(f, 1000, 1000)
	v.update(f, 1000, 1000)
	if !approxEqual(v.World.X, 200, epsilon) || !approxEqual(v.World.Y, 100, epsilon) {
		t.Errorf("final World = %v, want (200, 100)", v.World)
	}
	if v.Scrolling() {
		t.Error("Scrolling = true after animation finished")
	}
}

func TestViewportScrollClampsToMap(t *testing.T) {
	v := NewViewport(Vec2(0, 0), Vec2(0, 0), 100, 100)
	v.ScrollTo(5000, 0, 0.1, ease.Linear)
	v.update(Frame{Delta: time.Second}, 1000, 1000)
	if v.World.X != 900 {
		t.Errorf("World.X = %v, want 900", v.World.X)
	}
}

func TestViewportFollowSnap(t *testing.T) {
	m := newTestMap()
	e := newSpy("hero", 0)
	e.Visual = &fakeVisual{w: 20, h: 20}
	e.Position = Vec2(490, 290)
	m.AddEntity(e)

	v := m.NewViewport(Vec2(0, 0), Vec2(0, 0), 200, 100)
	v.Follow(e, 1.0)
	if err := m.Update(Frame{}); err != nil {
		t.Fatal(err)
	}
	if !approxEqual(v.World.X, 400, epsilon) || !approxEqual(v.World.Y, 250, epsilon) {
		t.Errorf("World = %v, want (400, 250)", v.World)
	}
}

func TestViewportFollowStopsOnRemoval(t *testing.T) {
	m := newTestMap()
	e := newSpy("hero", 0)
	m.AddEntity(e)
	v := m.NewViewport(Vec2(0, 0), Vec2(0, 0), 100, 100)
	v.Follow(e, 0.5)
	m.RemoveEntity(e)
	_ = m.Update(Frame{})
	if v.followTarget != nil {
		t.Error("followTarget should be cleared after the target is removed")
	}
}

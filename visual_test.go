package gamebase

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSpriteSizeFromImage(t *testing.T) {
	s := NewSprite("")
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("unloaded size = %dx%d, want 0x0", s.Width(), s.Height())
	}
	s.SetImage(ebiten.NewImage(40, 30))
	if s.Width() != 40 || s.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", s.Width(), s.Height())
	}
	if s.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", s.Frames())
	}
}

func TestSpriteLoadFromContent(t *testing.T) {
	c := NewContent(nil, "")
	c.Register("hero", ebiten.NewImage(16, 24))
	s := NewSprite("hero")
	if err := s.Load(c); err != nil {
		t.Fatal(err)
	}
	if s.Height() != 24 {
		t.Errorf("Height = %d, want 24", s.Height())
	}
	if err := NewSprite("missing").Load(c); err == nil {
		t.Error("expected error loading a missing image")
	}
}

func TestSpriteLoadKeepsGeneratedImage(t *testing.T) {
	s := NewSprite("")
	img := ebiten.NewImage(8, 8)
	s.SetImage(img)
	if err := s.Load(NewContent(nil, "")); err != nil {
		t.Fatal(err)
	}
	if s.Image() != img {
		t.Error("Load replaced an image set with SetImage")
	}
}

// --- Strip animation ---

func TestStripSpriteFrames(t *testing.T) {
	s := NewStripSprite("walk", 16, 16, 6)
	s.SetImage(ebiten.NewImage(64, 32)) // 4 per row, 2 rows

	if s.Width() != 16 || s.Height() != 16 {
		t.Errorf("frame size = %dx%d, want 16x16", s.Width(), s.Height())
	}
	for range 5 {
		s.StepAnimation()
	}
	if s.Frame() != 5 {
		t.Errorf("Frame = %d, want 5", s.Frame())
	}
	if got := s.frameOrigin(); got != image.Pt(16, 16) {
		t.Errorf("frameOrigin = %v, want (16, 16)", got)
	}
	s.StepAnimation()
	if s.Frame() != 0 {
		t.Errorf("Frame after wrap = %d, want 0", s.Frame())
	}
}

func TestStripSpriteSetFrameWraps(t *testing.T) {
	s := NewStripSprite("walk", 8, 8, 4)
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{3, 3},
		{4, 0},
		{9, 1},
		{-1, 3},
	}
	for _, tt := range tests {
		s.SetFrame(tt.in)
		if s.Frame() != tt.want {
			t.Errorf("SetFrame(%d) -> Frame = %d, want %d", tt.in, s.Frame(), tt.want)
		}
	}
}

func TestPlainSpriteIgnoresAnimation(t *testing.T) {
	s := NewSprite("still")
	s.StepAnimation()
	s.SetFrame(3)
	if s.Frame() != 0 {
		t.Errorf("Frame = %d, want 0", s.Frame())
	}
}

func TestNewStripSpritePanicsOnZeroFrames(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero frames")
		}
	}()
	NewStripSprite("bad", 8, 8, 0)
}

// --- Clipping ---

func TestClipToFrame(t *testing.T) {
	tests := []struct {
		name   string
		src    image.Rectangle
		want   image.Rectangle
		wantOK bool
	}{
		{"inside", image.Rect(2, 2, 8, 8), image.Rect(2, 2, 8, 8), true},
		{"larger than frame", image.Rect(-10, -10, 50, 50), image.Rect(0, 0, 20, 10), true},
		{"left overhang", image.Rect(-5, 0, 5, 10), image.Rect(0, 0, 5, 10), true},
		{"entirely right", image.Rect(21, 0, 40, 10), image.Rectangle{}, false},
		{"entirely above", image.Rect(0, -20, 10, -1), image.Rectangle{}, false},
		{"touching edge only", image.Rect(20, 0, 30, 10), image.Rectangle{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := clipToFrame(tt.src, 20, 10)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("clipToFrame = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSpriteDrawClippedNilTarget(t *testing.T) {
	s := NewSprite("")
	s.SetImage(ebiten.NewImage(10, 10))
	// A nil destination is a no-op rather than a crash.
	s.Draw(nil, Vec2(0, 0), Frame{})
	s.DrawClipped(nil, Vec2(0, 0), Frame{}, image.Rect(0, 0, 5, 5))
}

func TestSpriteDrawClippedOutsideFrame(t *testing.T) {
	s := NewSprite("")
	s.SetImage(ebiten.NewImage(10, 10))
	dst := ebiten.NewImage(20, 20)
	// Regions that miss the frame are skipped before any SubImage call.
	s.DrawClipped(dst, Vec2(0, 0), Frame{}, image.Rect(30, 30, 40, 40))
	s.DrawClipped(dst, Vec2(0, 0), Frame{}, image.Rect(-5, 0, 5, 10))
}

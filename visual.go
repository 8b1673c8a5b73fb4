package gamebase

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Visual is the drawable attached to an entity. Width and Height are the
// extents of the current frame. The map never steps animations itself; an
// entity calls StepAnimation from its own Update when it wants to advance.
type Visual interface {
	Width() int
	Height() int
	Load(c *Content) error
	Draw(dst *ebiten.Image, pos Vector, f Frame)
	// DrawClipped draws the part of the current frame inside src, which is in
	// frame-local pixels and may extend past the frame on any side.
	DrawClipped(dst *ebiten.Image, pos Vector, f Frame, src image.Rectangle)
	StepAnimation()
}

// Sprite is an ebiten image drawn whole, or a strip of equally sized frames
// laid out left to right and top to bottom.
type Sprite struct {
	// Color tints the sprite. Defaults to ColorWhite.
	Color Color

	name  string
	img   *ebiten.Image
	strip bool

	frameW, frameH int
	frames         int
	perRow         int
	frame          int
}

// NewSprite creates a sprite that draws the whole image stored under name.
func NewSprite(name string) *Sprite {
	return &Sprite{name: name, Color: ColorWhite}
}

// NewStripSprite creates an animated sprite of frames cells, each frameW by
// frameH pixels. Panics if any dimension is not positive.
func NewStripSprite(name string, frameW, frameH, frames int) *Sprite {
	if frameW <= 0 || frameH <= 0 || frames <= 0 {
		panic("gamebase: strip sprite dimensions must be positive")
	}
	return &Sprite{
		name:   name,
		Color:  ColorWhite,
		strip:  true,
		frameW: frameW,
		frameH: frameH,
		frames: frames,
	}
}

// SetImage attaches an image directly, bypassing Content. Load keeps an image
// set this way when the sprite has no name.
func (s *Sprite) SetImage(img *ebiten.Image) {
	s.img = img
	s.perRow = 0
	if img != nil && s.strip {
		s.perRow = max(img.Bounds().Dx()/s.frameW, 1)
	}
}

// Image returns the attached image, or nil before Load.
func (s *Sprite) Image() *ebiten.Image {
	return s.img
}

// Load resolves the sprite's image from c.
func (s *Sprite) Load(c *Content) error {
	if s.name == "" && s.img != nil {
		return nil
	}
	img, err := c.Image(s.name)
	if err != nil {
		return err
	}
	s.SetImage(img)
	return nil
}

// Width returns the frame width, or the image width for a plain sprite.
func (s *Sprite) Width() int {
	if s.strip {
		return s.frameW
	}
	if s.img == nil {
		return 0
	}
	return s.img.Bounds().Dx()
}

// Height returns the frame height, or the image height for a plain sprite.
func (s *Sprite) Height() int {
	if s.strip {
		return s.frameH
	}
	if s.img == nil {
		return 0
	}
	return s.img.Bounds().Dy()
}

// Frame returns the current strip frame index.
func (s *Sprite) Frame() int {
	return s.frame
}

// SetFrame selects a strip frame. The index wraps modulo the frame count.
func (s *Sprite) SetFrame(i int) {
	if !s.strip {
		return
	}
	s.frame = ((i % s.frames) + s.frames) % s.frames
}

// Frames returns the number of strip frames, 1 for a plain sprite.
func (s *Sprite) Frames() int {
	if !s.strip {
		return 1
	}
	return s.frames
}

// StepAnimation advances to the next strip frame, wrapping to the first.
func (s *Sprite) StepAnimation() {
	if !s.strip {
		return
	}
	s.frame++
	if s.frame >= s.frames {
		s.frame = 0
	}
}

// frameOrigin returns the top-left of the current frame inside the image.
func (s *Sprite) frameOrigin() image.Point {
	o := s.img.Bounds().Min
	if !s.strip {
		return o
	}
	return o.Add(image.Pt((s.frame%s.perRow)*s.frameW, (s.frame/s.perRow)*s.frameH))
}

// Draw draws the current frame with its top-left at pos.
func (s *Sprite) Draw(dst *ebiten.Image, pos Vector, _ Frame) {
	if dst == nil || s.img == nil {
		return
	}
	o := s.frameOrigin()
	src := image.Rectangle{Min: o, Max: o.Add(image.Pt(s.Width(), s.Height()))}
	s.drawRegion(dst, src, pos.X, pos.Y)
}

// DrawClipped draws the part of the current frame inside src. The visible part
// lands at pos offset by the clamped top-left of src.
func (s *Sprite) DrawClipped(dst *ebiten.Image, pos Vector, _ Frame, src image.Rectangle) {
	if dst == nil || s.img == nil {
		return
	}
	clip, ok := clipToFrame(src, s.Width(), s.Height())
	if !ok {
		return
	}
	region := clip.Add(s.frameOrigin())
	s.drawRegion(dst, region, pos.X+float64(clip.Min.X), pos.Y+float64(clip.Min.Y))
}

func (s *Sprite) drawRegion(dst *ebiten.Image, region image.Rectangle, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	c := s.Color
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	dst.DrawImage(s.img.SubImage(region).(*ebiten.Image), op)
}

// clipToFrame intersects src with the frame [0,w]x[0,h]. ok is false when
// src lies entirely outside the frame or the overlap is empty.
func clipToFrame(src image.Rectangle, w, h int) (image.Rectangle, bool) {
	if src.Min.X > w || src.Max.X < 0 || src.Min.Y > h || src.Max.Y < 0 {
		return image.Rectangle{}, false
	}
	clip := image.Rect(max(src.Min.X, 0), max(src.Min.Y, 0), min(src.Max.X, w), min(src.Max.Y, h))
	if clip.Empty() {
		return image.Rectangle{}, false
	}
	return clip, true
}

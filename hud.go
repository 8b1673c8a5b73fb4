package gamebase

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the FPS display redraws its text.
const fpsRefresh = 500 * time.Millisecond

// FPSDisplay is a static-view entity that shows the current FPS and TPS in the
// top-left of the screen. It draws on top of everything at depth -1000.
type FPSDisplay struct {
	GameObject

	img     *ebiten.Image
	elapsed time.Duration
	text    string
}

// NewFPSDisplay creates an FPS display at screen position (x, y).
func NewFPSDisplay(x, y float64) *FPSDisplay {
	d := &FPSDisplay{}
	d.Position = Vec2(x, y)
	d.StaticView = true
	d.Depth = -1000
	return d
}

// LoadContent allocates the backing image. 100x32 fits "FPS: 60.0\nTPS: 60.0".
func (d *FPSDisplay) LoadContent(*Content) error {
	if d.img == nil {
		d.img = ebiten.NewImage(100, 32)
		d.refresh()
	}
	return nil
}

// Text returns the most recently rendered text.
func (d *FPSDisplay) Text() string {
	return d.text
}

// Update redraws the text about twice a second.
func (d *FPSDisplay) Update(f Frame) {
	d.elapsed += f.Delta
	if d.elapsed < fpsRefresh {
		return
	}
	d.elapsed = 0
	d.refresh()
}

func (d *FPSDisplay) refresh() {
	d.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if d.img == nil {
		return
	}
	d.img.Clear()
	d.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(d.img, d.text)
}

func (d *FPSDisplay) Draw(dst *ebiten.Image, pos Vector, _ Frame) {
	if dst == nil || d.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	dst.DrawImage(d.img, op)
}

package gamebase

// backgroundDepth draws backgrounds beneath entities at the default depth.
const backgroundDepth = 100

// Background is an entity that draws an image behind the rest of its map.
// A stretched background draws the image once with its top-left at the
// background's position. A tiled background repeats the image from the map
// origin until it covers the whole map, using one helper entity per tile.
type Background struct {
	GameObject

	name  string
	tiled bool

	tiles []*backgroundTile
	added bool
}

// NewBackground creates a background from the image stored under name. Its
// depth starts at 100.
func NewBackground(name string, tiled bool) *Background {
	b := &Background{name: name, tiled: tiled}
	b.Depth = backgroundDepth
	if !tiled {
		b.Visual = NewSprite(name)
	}
	return b
}

// Tiled reports whether the image repeats across the map.
func (b *Background) Tiled() bool {
	return b.tiled
}

// TileCount returns the number of tiles built at load, 0 for a stretched
// background or before load.
func (b *Background) TileCount() int {
	return len(b.tiles)
}

// SetDepth sets the depth of the background and of every tile.
func (b *Background) SetDepth(d int) {
	b.Depth = d
	for _, t := range b.tiles {
		t.Depth = d
	}
}

// LoadContent builds the tiles from the image size and the map size. Tiles
// are built once; reloading the map reuses them.
func (b *Background) LoadContent(c *Content) error {
	if !b.tiled || b.tiles != nil {
		return nil
	}
	img, err := c.Image(b.name)
	if err != nil {
		return err
	}
	m := b.Map()
	tw, th := img.Bounds().Dx(), img.Bounds().Dy()
	for x := 0; x < m.Width(); x += tw {
		for y := 0; y < m.Height(); y += th {
			t := &backgroundTile{}
			t.Position = Vec2(float64(x), float64(y))
			t.Depth = b.Depth
			t.StaticView = b.StaticView
			t.Visual = NewSprite(b.name)
			b.tiles = append(b.tiles, t)
		}
	}
	return nil
}

// Update adds the tiles to the map on the first tick after they are built.
func (b *Background) Update(Frame) {
	if b.added || b.tiles == nil {
		return
	}
	tiles := make([]Entity, len(b.tiles))
	for i, t := range b.tiles {
		tiles[i] = t
	}
	b.Map().AddMultiple(tiles...)
	b.added = true
}

// OnDestroy removes the tiles along with the background.
func (b *Background) OnDestroy() {
	if !b.added {
		return
	}
	m := b.Map()
	for _, t := range b.tiles {
		if !t.Removed() {
			m.RemoveEntity(t)
		}
	}
}

// backgroundTile draws one copy of a tiled background image.
type backgroundTile struct {
	GameObject
}

func (t *backgroundTile) Update(Frame)               {}
func (t *backgroundTile) LoadContent(*Content) error { return nil }

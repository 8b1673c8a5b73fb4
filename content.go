package gamebase

import (
	"errors"
	"fmt"
	_ "image/png" // decoder for ebitenutil.NewImageFromFileSystem
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// ErrNoContent is returned when a named image is neither registered nor
// present in the content file system.
var ErrNoContent = errors.New("gamebase: content not found")

// Content resolves named images for visuals and entities. Images decoded from
// the file system are cached until Unload; images added with Register survive
// Unload because the caller owns them.
type Content struct {
	fsys       fs.FS
	root       string
	registered map[string]*ebiten.Image
	loaded     map[string]*ebiten.Image
	log        *zap.Logger
}

// NewContent creates a content store reading from root inside fsys. fsys may
// be nil when every image is registered up front.
func NewContent(fsys fs.FS, root string) *Content {
	return &Content{
		fsys:       fsys,
		root:       root,
		registered: make(map[string]*ebiten.Image),
		loaded:     make(map[string]*ebiten.Image),
		log:        zap.NewNop(),
	}
}

// SetLogger replaces the logger used to report loads. nil restores the no-op
// logger.
func (c *Content) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
}

// Register stores a caller-owned image under name, replacing any earlier
// registration.
func (c *Content) Register(name string, img *ebiten.Image) {
	if img == nil {
		panic("gamebase: cannot register nil image")
	}
	c.registered[name] = img
}

// Image returns the image stored under name, decoding it from the file system
// on first use. Lookups try name as given, then with a .png extension.
func (c *Content) Image(name string) (*ebiten.Image, error) {
	if img, ok := c.registered[name]; ok {
		return img, nil
	}
	if img, ok := c.loaded[name]; ok {
		return img, nil
	}
	if c.fsys == nil {
		return nil, fmt.Errorf("load image %q: %w", name, ErrNoContent)
	}

	candidates := []string{path.Join(c.root, name)}
	if path.Ext(name) == "" {
		candidates = append(candidates, path.Join(c.root, name+".png"))
	}
	for _, p := range candidates {
		img, _, err := ebitenutil.NewImageFromFileSystem(c.fsys, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load image %q: %w", name, err)
		}
		c.loaded[name] = img
		c.log.Debug("content loaded", zap.String("name", name), zap.String("path", p))
		return img, nil
	}
	return nil, fmt.Errorf("load image %q: %w", name, ErrNoContent)
}

// Unload deallocates every image decoded by this store. Registered images are
// kept.
func (c *Content) Unload() {
	for name, img := range c.loaded {
		img.Deallocate()
		delete(c.loaded, name)
	}
	c.log.Debug("content unloaded")
}

// Len returns the number of images currently resolvable without decoding.
func (c *Content) Len() int {
	return len(c.registered) + len(c.loaded)
}

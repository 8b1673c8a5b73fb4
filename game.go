package gamebase

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ColorCornflowerBlue is the default clear color of a Game.
var ColorCornflowerBlue = Color{R: 0.392, G: 0.584, B: 0.929, A: 1}

// StateManager is notified as a Game moves between maps. Implementations
// decide when to switch maps, typically from OnUpdate.
type StateManager interface {
	// OnLoad runs after the current map has loaded.
	OnLoad(g *Game)
	// OnUpdate runs after the current map has updated.
	OnUpdate(g *Game) error
	// OnUnload runs after a map has been unloaded.
	OnUnload(g *Game)
}

// Game runs one Map at a time inside the ebiten game loop. It implements
// [ebiten.Game]; pass it to [Run], or to ebiten.RunGame after calling Start.
type Game struct {
	// ClearColor fills the screen before the current map draws.
	ClearColor Color
	// ScreenshotDir receives the PNGs queued with Screenshot.
	ScreenshotDir string

	world   World
	current *Map
	states  StateManager
	log     *zap.Logger

	started bool
	tick    uint64
	last    Frame

	screenshotQueue []string
}

// NewGame creates a game showing first. Panics if first is nil.
func NewGame(world World, first *Map) *Game {
	if first == nil {
		panic("gamebase: game needs a first map")
	}
	return &Game{
		ClearColor:    ColorCornflowerBlue,
		ScreenshotDir: "screenshots",
		world:         world,
		current:       first,
		log:           zap.NewNop(),
	}
}

// World returns the configuration the game was created with.
func (g *Game) World() World { return g.world }

// CurrentMap returns the map being updated and drawn.
func (g *Game) CurrentMap() *Map { return g.current }

// SetStateManager registers s for lifecycle notifications. nil clears it.
func (g *Game) SetStateManager(s StateManager) {
	g.states = s
}

// SetLogger replaces the game's logger. nil restores the no-op logger.
func (g *Game) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	g.log = log
}

// Start loads the first map. It runs once; later calls do nothing. Update
// calls it automatically.
func (g *Game) Start() error {
	if g.started {
		return nil
	}
	g.started = true
	err := g.current.LoadAll()
	if g.states != nil {
		g.states.OnLoad(g)
	}
	if err != nil {
		return fmt.Errorf("load first map: %w", err)
	}
	return nil
}

// SwitchToMap makes m the current map, loads it and sets it running. With
// unloadLast the previous map is unloaded first. Load failures are returned
// after the switch has happened.
func (g *Game) SwitchToMap(m *Map, unloadLast bool) error {
	if m == nil {
		panic("gamebase: cannot switch to nil map")
	}
	prev := g.current
	if unloadLast && prev != m {
		prev.UnloadAll()
		if g.states != nil {
			g.states.OnUnload(g)
		}
	}

	g.current = m
	g.started = true
	err := m.LoadAll()
	m.Status = MapRunning
	g.log.Info("map switched",
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Int("entities", m.Len()),
		zap.Bool("unloaded_last", unloadLast),
	)
	if g.states != nil {
		g.states.OnLoad(g)
	}
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// ToggleFullscreen switches the window between fullscreen and windowed.
func (g *Game) ToggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}

// Shutdown unloads the current map. Run calls it when the game loop exits.
func (g *Game) Shutdown() {
	g.current.UnloadAll()
	if g.states != nil {
		g.states.OnUnload(g)
	}
	g.log.Info("game shut down", zap.Uint64("ticks", g.tick))
}

// nextFrame advances the tick counter. Delta is one tick at the current TPS.
func (g *Game) nextFrame() Frame {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.tick++
	g.last = Frame{Delta: time.Second / time.Duration(tps), Tick: g.tick}
	return g.last
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if err := g.Start(); err != nil {
		return err
	}
	if err := g.current.Update(g.nextFrame()); err != nil {
		g.log.Error("map update failed", zap.Uint64("tick", g.tick), zap.Error(err))
		return err
	}
	if g.states != nil {
		return g.states.OnUpdate(g)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor.toRGBA())
	g.current.Draw(screen, g.last)
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen is the configured display
// size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.world.Display.Width, g.world.Display.Height
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Fullscreen    bool
	// ShowFPS adds an FPSDisplay to the first map.
	ShowFPS bool
}

// RunConfig returns the window settings from w's display section.
func (w World) RunConfig() RunConfig {
	return RunConfig{
		Title:      w.Display.Title,
		Width:      w.Display.Width,
		Height:     w.Display.Height,
		Fullscreen: w.Display.Fullscreen,
	}
}

// Run opens a window and runs g until the window closes or Update returns an
// error. Blocks the calling goroutine.
func Run(g *Game, cfg RunConfig) error {
	if cfg.ShowFPS {
		g.current.AddEntity(NewFPSDisplay(0, 0))
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetFullscreen(cfg.Fullscreen)

	err := ebiten.RunGame(g)
	g.Shutdown()
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

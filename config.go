package gamebase

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// World is the configuration shared by every map, entity and vector in a game.
// It is passed explicitly rather than held in package state.
type World struct {
	Display DisplayConfig `toml:"display" yaml:"display"`
	Is3D    bool          `toml:"is_3d" yaml:"is_3d"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Content ContentConfig `toml:"content" yaml:"content"`
}

type DisplayConfig struct {
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	Title      string `toml:"title" yaml:"title"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

type ContentConfig struct {
	Root string `toml:"root" yaml:"root"`
}

// DefaultWorld returns the configuration used when no file overrides it:
// an 800x600 2D display with console logging.
func DefaultWorld() World {
	return World{
		Display: DisplayConfig{
			Width:  800,
			Height: 600,
			Title:  "gamebase",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Content: ContentConfig{
			Root: "Content",
		},
	}
}

// LoadWorld reads a TOML or YAML file over DefaultWorld. The format is chosen
// by extension (.toml, .yaml, .yml).
func LoadWorld(path string) (World, error) {
	f, err := os.Open(path)
	if err != nil {
		return World{}, fmt.Errorf("read config %s: %w", path, err)
	}
	defer f.Close()

	var w World
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		w, err = DecodeWorldTOML(f)
	case ".yaml", ".yml":
		w, err = DecodeWorldYAML(f)
	default:
		return World{}, fmt.Errorf("read config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return World{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return w, nil
}

// DecodeWorldTOML decodes TOML from r over DefaultWorld.
func DecodeWorldTOML(r io.Reader) (World, error) {
	w := DefaultWorld()
	if _, err := toml.NewDecoder(r).Decode(&w); err != nil {
		return World{}, err
	}
	return w, w.validate()
}

// DecodeWorldYAML decodes YAML from r over DefaultWorld. An empty document
// yields the defaults.
func DecodeWorldYAML(r io.Reader) (World, error) {
	w := DefaultWorld()
	if err := yaml.NewDecoder(r).Decode(&w); err != nil && err != io.EOF {
		return World{}, err
	}
	return w, w.validate()
}

func (w World) validate() error {
	if w.Display.Width <= 0 || w.Display.Height <= 0 {
		return fmt.Errorf("display size %dx%d must be positive", w.Display.Width, w.Display.Height)
	}
	return nil
}

// NewLogger builds a zap logger from cfg. Unknown levels fall back to info.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

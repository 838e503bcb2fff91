// Package config loads the game configuration from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/pirate-cove/internal/chunk"
	"github.com/talgya/pirate-cove/internal/render"
	"github.com/talgya/pirate-cove/internal/world"
)

// Config is the full game configuration. Zero or missing fields take the
// defaults from Default.
type Config struct {
	World struct {
		Width     int     `yaml:"width"`
		Height    int     `yaml:"height"`
		Seed      int64   `yaml:"seed"`
		SeaLevel  float64 `yaml:"sea_level"`
		LandRatio float64 `yaml:"land_ratio"`
	} `yaml:"world"`

	ChunkSize int `yaml:"chunk_size"`

	Viewport struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewport"`

	DatabasePath string `yaml:"database_path"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	gen := world.DefaultGenConfig()
	c.World.Width = gen.Width
	c.World.Height = gen.Height
	c.World.SeaLevel = gen.SeaLevel
	c.World.LandRatio = gen.LandRatio
	c.ChunkSize = chunk.DefaultChunkSize
	c.Viewport.Width = render.DefaultViewportWidth
	c.Viewport.Height = render.DefaultViewportHeight
	c.DatabasePath = "data/piratecove.db"
	c.LogLevel = "info"
	return c
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks dimension and level constraints.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.World.LandRatio < 0 || c.World.LandRatio > 1 {
		return fmt.Errorf("land ratio must be in [0, 1], got %g", c.World.LandRatio)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured log level name to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// GenConfig returns the world generation settings from this config.
func (c Config) GenConfig() world.GenConfig {
	return world.GenConfig{
		Width:     c.World.Width,
		Height:    c.World.Height,
		Seed:      c.World.Seed,
		SeaLevel:  c.World.SeaLevel,
		LandRatio: c.World.LandRatio,
	}
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 32, c.World.Width)
	assert.Equal(t, 16, c.World.Height)
	assert.Equal(t, 32, c.ChunkSize)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  width: 64
  height: 32
  seed: 1234
  land_ratio: 0.4
chunk_size: 16
viewport:
  width: 60
log_level: debug
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.World.Width)
	assert.Equal(t, int64(1234), c.World.Seed)
	assert.Equal(t, 0.4, c.World.LandRatio)
	assert.Equal(t, 16, c.ChunkSize)
	assert.Equal(t, 60, c.Viewport.Width)

	// Untouched fields keep their defaults.
	assert.Equal(t, Default().Viewport.Height, c.Viewport.Height)
	assert.Equal(t, Default().DatabasePath, c.DatabasePath)

	level, err := c.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "world: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.World.Width = 0 }},
		{"negative height", func(c *Config) { c.World.Height = -1 }},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"zero viewport", func(c *Config) { c.Viewport.Width = 0 }},
		{"land ratio too high", func(c *Config) { c.World.LandRatio = 1.5 }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestGenConfigMapping(t *testing.T) {
	c := Default()
	c.World.Seed = 77
	gen := c.GenConfig()
	assert.Equal(t, c.World.Width, gen.Width)
	assert.Equal(t, c.World.Height, gen.Height)
	assert.Equal(t, int64(77), gen.Seed)
	assert.Equal(t, c.World.SeaLevel, gen.SeaLevel)
}

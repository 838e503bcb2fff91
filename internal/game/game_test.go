package game

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/pirate-cove/internal/chunk"
	"github.com/talgya/pirate-cove/internal/input"
	"github.com/talgya/pirate-cove/internal/render"
	"github.com/talgya/pirate-cove/internal/world"
)

// script yields a fixed command sequence, then quits.
type script struct {
	commands []input.Command
	i        int
}

func (s *script) Next() (input.Command, error) {
	if s.i >= len(s.commands) {
		return input.CommandQuit, io.EOF
	}
	cmd := s.commands[s.i]
	s.i++
	return cmd, nil
}

type logEntry struct{ command, mode string }

type fakeRecorder struct{ entries []logEntry }

func (f *fakeRecorder) RecordCommand(command, mode string) error {
	f.entries = append(f.entries, logEntry{command, mode})
	return nil
}

func newTestGame(t *testing.T, commands ...input.Command) (*Game, *fakeRecorder) {
	t.Helper()
	cfg := world.DefaultGenConfig()
	cfg.Seed = 42
	grid, err := world.Generate(cfg)
	require.NoError(t, err)
	gen, err := chunk.NewGenerator(grid, chunk.DefaultChunkSize)
	require.NoError(t, err)

	rec := &fakeRecorder{}
	renderer := render.New(&bytes.Buffer{}, 40, 20)
	g, err := New(grid, gen, renderer, &script{commands: commands}, rec)
	require.NoError(t, err)
	return g, rec
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(nil, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestNewStartsAtCenter(t *testing.T) {
	g, _ := newTestGame(t)

	assert.Equal(t, ModeMicro, g.Mode())
	assert.Equal(t, chunk.Coords{MacroX: 16, MacroY: 8}, g.ChunkCoords())

	x, y := g.PlayerPosition()
	assert.Equal(t, chunk.DefaultChunkSize/2, x)
	assert.Equal(t, chunk.DefaultChunkSize/2, y)
}

func TestQuitEndsRun(t *testing.T) {
	g, rec := newTestGame(t, input.CommandQuit)

	stats, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Commands)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, "quit", rec.entries[0].command)
	assert.Equal(t, "micro", rec.entries[0].mode)
}

func TestInputExhaustionEndsRun(t *testing.T) {
	g, _ := newTestGame(t, input.CommandToggleMode)

	stats, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Commands)
	assert.Equal(t, ModeMacro, g.Mode())
}

func TestToggleModeFollowsChunk(t *testing.T) {
	g, _ := newTestGame(t,
		input.CommandToggleMode,
		input.CommandQuit,
	)

	_, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, ModeMacro, g.Mode())

	cx, cy := g.Cursor()
	assert.Equal(t, g.ChunkCoords().MacroX, cx)
	assert.Equal(t, g.ChunkCoords().MacroY, cy)
}

func TestMacroCursorClampsToGrid(t *testing.T) {
	commands := []input.Command{input.CommandToggleMode}
	for i := 0; i < 100; i++ {
		commands = append(commands, input.CommandMoveEast)
	}
	for i := 0; i < 100; i++ {
		commands = append(commands, input.CommandMoveNorth)
	}
	commands = append(commands, input.CommandQuit)

	g, _ := newTestGame(t, commands...)
	_, err := g.Run()
	require.NoError(t, err)

	cx, cy := g.Cursor()
	assert.Equal(t, 16, g.ChunkCoords().MacroX) // chunk unchanged while in macro mode
	assert.Equal(t, 31, cx)
	assert.Equal(t, 0, cy)
}

func TestToggleBackLoadsCursorChunk(t *testing.T) {
	g, rec := newTestGame(t,
		input.CommandToggleMode, // to macro
		input.CommandMoveEast,   // cursor to (17, 8)
		input.CommandToggleMode, // back to micro: load cursor chunk
		input.CommandQuit,
	)

	_, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, ModeMicro, g.Mode())
	assert.Equal(t, chunk.Coords{MacroX: 17, MacroY: 8}, g.ChunkCoords())

	// Player recenters in the newly loaded chunk.
	x, y := g.PlayerPosition()
	assert.Equal(t, chunk.DefaultChunkSize/2, x)
	assert.Equal(t, chunk.DefaultChunkSize/2, y)

	// Modes were recorded with the command that observed them.
	require.Len(t, rec.entries, 4)
	assert.Equal(t, "micro", rec.entries[0].mode)
	assert.Equal(t, "macro", rec.entries[1].mode)
	assert.Equal(t, "macro", rec.entries[2].mode)
	assert.Equal(t, "micro", rec.entries[3].mode)
}

func TestMicroMovementStaysInBoundsAndPassable(t *testing.T) {
	commands := []input.Command{
		input.CommandMoveEast, input.CommandMoveEast, input.CommandMoveSouth,
		input.CommandMoveWest, input.CommandMoveNorth, input.CommandInvalid,
		input.CommandQuit,
	}
	g, _ := newTestGame(t, commands...)

	stats, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, len(commands), stats.Commands)
	assert.LessOrEqual(t, stats.Moves, 5)

	x, y := g.PlayerPosition()
	assert.GreaterOrEqual(t, x, 0)
	assert.Less(t, x, chunk.DefaultChunkSize)
	assert.GreaterOrEqual(t, y, 0)
	assert.Less(t, y, chunk.DefaultChunkSize)

	// Moves only ever land on passable tiles.
	if stats.Moves > 0 {
		info := g.current.At(x, y)
		require.NotNil(t, info)
		assert.True(t, info.Passable)
	}
}

func TestNilRecorderIsAllowed(t *testing.T) {
	cfg := world.DefaultGenConfig()
	cfg.Seed = 42
	grid, err := world.Generate(cfg)
	require.NoError(t, err)
	gen, err := chunk.NewGenerator(grid, chunk.DefaultChunkSize)
	require.NoError(t, err)

	g, err := New(grid, gen, render.New(&bytes.Buffer{}, 40, 20),
		&script{commands: []input.Command{input.CommandQuit}}, nil)
	require.NoError(t, err)

	stats, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Commands)
}

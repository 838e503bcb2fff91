package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKey(t *testing.T) {
	assert.Equal(t, CommandMoveNorth, DecodeKey('w'))
	assert.Equal(t, CommandMoveNorth, DecodeKey('W'))
	assert.Equal(t, CommandMoveWest, DecodeKey('a'))
	assert.Equal(t, CommandMoveSouth, DecodeKey('s'))
	assert.Equal(t, CommandMoveEast, DecodeKey('D'))
	assert.Equal(t, CommandToggleMode, DecodeKey('m'))
	assert.Equal(t, CommandQuit, DecodeKey('q'))
	assert.Equal(t, CommandQuit, DecodeKey(0x03)) // Ctrl+C
	assert.Equal(t, CommandInvalid, DecodeKey('x'))
	assert.Equal(t, CommandInvalid, DecodeKey(' '))
}

func TestDecodeEscape(t *testing.T) {
	assert.Equal(t, CommandMoveNorth, DecodeEscape([2]byte{'[', 'A'}))
	assert.Equal(t, CommandMoveSouth, DecodeEscape([2]byte{'[', 'B'}))
	assert.Equal(t, CommandMoveEast, DecodeEscape([2]byte{'[', 'C'}))
	assert.Equal(t, CommandMoveWest, DecodeEscape([2]byte{'[', 'D'}))
	assert.Equal(t, CommandInvalid, DecodeEscape([2]byte{'[', 'Z'}))
	assert.Equal(t, CommandInvalid, DecodeEscape([2]byte{'O', 'A'}))
}

func TestDecodeLine(t *testing.T) {
	assert.Equal(t, CommandMoveNorth, DecodeLine("w"))
	assert.Equal(t, CommandMoveNorth, DecodeLine("  W  "))
	assert.Equal(t, CommandMoveNorth, DecodeLine("north"))
	assert.Equal(t, CommandMoveSouth, DecodeLine("down"))
	assert.Equal(t, CommandMoveWest, DecodeLine("LEFT"))
	assert.Equal(t, CommandQuit, DecodeLine("quit"))
	assert.Equal(t, CommandToggleMode, DecodeLine("mode"))
	assert.Equal(t, CommandInvalid, DecodeLine("dance"))
	assert.Equal(t, CommandInvalid, DecodeLine(""))
}

func TestDelta(t *testing.T) {
	dx, dy := CommandMoveNorth.Delta()
	assert.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
	dx, dy = CommandMoveSouth.Delta()
	assert.Equal(t, [2]int{0, 1}, [2]int{dx, dy})
	dx, dy = CommandMoveEast.Delta()
	assert.Equal(t, [2]int{1, 0}, [2]int{dx, dy})
	dx, dy = CommandMoveWest.Delta()
	assert.Equal(t, [2]int{-1, 0}, [2]int{dx, dy})
	dx, dy = CommandQuit.Delta()
	assert.Equal(t, [2]int{0, 0}, [2]int{dx, dy})

	assert.True(t, CommandMoveEast.IsMovement())
	assert.False(t, CommandToggleMode.IsMovement())
	assert.False(t, CommandInvalid.IsMovement())
}

func TestKeyReaderDecodesStream(t *testing.T) {
	r := NewKeyReader(strings.NewReader("wa\x1b[Cq"))

	expected := []Command{CommandMoveNorth, CommandMoveWest, CommandMoveEast, CommandQuit}
	for _, want := range expected {
		cmd, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, cmd)
	}

	// Exhausted stream reports quit with an error.
	cmd, err := r.Next()
	assert.Error(t, err)
	assert.Equal(t, CommandQuit, cmd)
}

func TestLineReaderFallback(t *testing.T) {
	r := NewLineReader(strings.NewReader("w\neast\nbogus\n"), nil)

	cmd, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, CommandMoveNorth, cmd)

	cmd, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, CommandMoveEast, cmd)

	cmd, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, CommandInvalid, cmd)

	// EOF quits cleanly.
	cmd, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, CommandQuit, cmd)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "move_north", CommandMoveNorth.String())
	assert.Equal(t, "toggle_mode", CommandToggleMode.String())
	assert.Equal(t, "quit", CommandQuit.String())
	assert.Equal(t, "invalid", CommandInvalid.String())
}

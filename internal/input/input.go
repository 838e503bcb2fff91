// Package input turns keyboard input into high-level game commands.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Command is a high-level game command decoded from keyboard input.
type Command uint8

const (
	CommandInvalid Command = iota
	CommandMoveNorth
	CommandMoveSouth
	CommandMoveEast
	CommandMoveWest
	CommandToggleMode
	CommandQuit
)

// String returns the command name used in logs and the command journal.
func (c Command) String() string {
	switch c {
	case CommandMoveNorth:
		return "move_north"
	case CommandMoveSouth:
		return "move_south"
	case CommandMoveEast:
		return "move_east"
	case CommandMoveWest:
		return "move_west"
	case CommandToggleMode:
		return "toggle_mode"
	case CommandQuit:
		return "quit"
	default:
		return "invalid"
	}
}

// IsMovement reports whether the command moves the player or cursor.
func (c Command) IsMovement() bool {
	switch c {
	case CommandMoveNorth, CommandMoveSouth, CommandMoveEast, CommandMoveWest:
		return true
	}
	return false
}

// Delta returns the x/y step for a movement command, (0,0) otherwise.
// North is negative y, matching screen coordinates.
func (c Command) Delta() (dx, dy int) {
	switch c {
	case CommandMoveNorth:
		return 0, -1
	case CommandMoveSouth:
		return 0, 1
	case CommandMoveEast:
		return 1, 0
	case CommandMoveWest:
		return -1, 0
	}
	return 0, 0
}

// DecodeKey maps a single key byte to a command. Letters are
// case-insensitive; Ctrl+C quits.
func DecodeKey(b byte) Command {
	switch b {
	case 'w', 'W':
		return CommandMoveNorth
	case 's', 'S':
		return CommandMoveSouth
	case 'd', 'D':
		return CommandMoveEast
	case 'a', 'A':
		return CommandMoveWest
	case 'm', 'M':
		return CommandToggleMode
	case 'q', 'Q', 0x03:
		return CommandQuit
	}
	return CommandInvalid
}

// DecodeEscape maps an ANSI arrow key escape sequence (the two bytes after
// ESC) to a command.
func DecodeEscape(seq [2]byte) Command {
	if seq[0] != '[' {
		return CommandInvalid
	}
	switch seq[1] {
	case 'A':
		return CommandMoveNorth
	case 'B':
		return CommandMoveSouth
	case 'C':
		return CommandMoveEast
	case 'D':
		return CommandMoveWest
	}
	return CommandInvalid
}

// DecodeLine maps a whole input line to a command for terminals without raw
// mode. Single mapped keys and direction names are accepted.
func DecodeLine(line string) Command {
	line = strings.ToLower(strings.TrimSpace(line))
	if len(line) == 1 {
		return DecodeKey(line[0])
	}
	switch line {
	case "up", "north":
		return CommandMoveNorth
	case "down", "south":
		return CommandMoveSouth
	case "right", "east":
		return CommandMoveEast
	case "left", "west":
		return CommandMoveWest
	case "mode":
		return CommandToggleMode
	case "quit", "exit":
		return CommandQuit
	}
	return CommandInvalid
}

// KeyReader decodes commands from a raw byte stream, one keypress at a time.
// It handles arrow key escape sequences.
type KeyReader struct {
	r io.Reader
}

// NewKeyReader wraps a reader producing raw keyboard bytes.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// Next blocks for the next keypress and returns its command. Unmapped keys
// return CommandInvalid with a nil error.
func (k *KeyReader) Next() (Command, error) {
	var buf [1]byte
	if _, err := io.ReadFull(k.r, buf[:]); err != nil {
		return CommandQuit, fmt.Errorf("read key: %w", err)
	}
	if buf[0] != 0x1b {
		return DecodeKey(buf[0]), nil
	}
	var seq [2]byte
	if _, err := io.ReadFull(k.r, seq[:]); err != nil {
		return CommandQuit, fmt.Errorf("read escape sequence: %w", err)
	}
	return DecodeEscape(seq), nil
}

// LineReader decodes commands from buffered lines, the fallback when stdin
// is not a terminal.
type LineReader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewLineReader wraps a line-oriented reader. If prompt is non-nil a short
// usage prompt is written before each read.
func NewLineReader(r io.Reader, prompt io.Writer) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r), prompt: prompt}
}

// Next reads the next line and decodes it. EOF quits.
func (l *LineReader) Next() (Command, error) {
	if l.prompt != nil {
		fmt.Fprint(l.prompt, "command (w/a/s/d move, m mode, q quit): ")
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return CommandQuit, fmt.Errorf("read line: %w", err)
		}
		return CommandQuit, nil
	}
	return DecodeLine(l.scanner.Text()), nil
}

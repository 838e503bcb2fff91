package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Source yields decoded commands. KeyReader, LineReader and scripted test
// sources all satisfy it.
type Source interface {
	Next() (Command, error)
}

// Terminal reads single keypresses from a TTY in raw mode, falling back to
// line input when the file is not a terminal.
type Terminal struct {
	source Source
	fd     int
	state  *term.State
}

// OpenTerminal prepares f for command input. When f is a TTY it is switched
// to raw mode; Close restores it.
func OpenTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return &Terminal{source: NewLineReader(f, os.Stdout), fd: -1}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &Terminal{source: NewKeyReader(f), fd: fd, state: state}, nil
}

// Raw reports whether the terminal is in raw single-key mode.
func (t *Terminal) Raw() bool {
	return t.state != nil
}

// Next returns the next command.
func (t *Terminal) Next() (Command, error) {
	return t.source.Next()
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	t.state = nil
	return nil
}

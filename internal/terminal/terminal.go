// Package terminal implements the screen and key source used by the
// selection menu on top of a raw-mode tty.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal bundles a Screen and a Reader over one tty and owns its raw mode.
type Terminal struct {
	*Screen
	*Reader

	in    *os.File
	out   *os.File
	fd    int
	state *term.State
}

// Open puts in into raw mode (when it is a terminal) and returns a Terminal
// writing to out. Close restores the previous mode.
func Open(in, out *os.File) (*Terminal, error) {
	t := &Terminal{
		Screen: NewScreen(out, sizeFD(out)),
		Reader: NewReader(in),
		in:     in,
		out:    out,
		fd:     int(in.Fd()),
	}
	if term.IsTerminal(t.fd) {
		state, err := term.MakeRaw(t.fd)
		if err != nil {
			return nil, fmt.Errorf("enter raw mode: %w", err)
		}
		t.state = state
	}
	return t, nil
}

// Input returns the underlying input file, for components that run their own
// event loop on the same tty.
func (t *Terminal) Input() *os.File { return t.in }

// Output returns the underlying output file.
func (t *Terminal) Output() *os.File { return t.out }

// Raw reports whether Open switched the tty into raw mode.
func (t *Terminal) Raw() bool { return t.state != nil }

// Close restores the tty mode captured by Open.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

func sizeFD(f *os.File) int {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		return fd
	}
	return -1
}

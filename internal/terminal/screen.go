package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Screen writes to a terminal and tracks the cursor row itself, so it never
// needs to query the terminal. Lines are truncated to the viewport width to
// keep that bookkeeping exact.
type Screen struct {
	out         io.Writer
	fd          int
	row         int
	fixedWidth  int
	fixedHeight int
	failed      bool
}

// NewScreen writes to out. fd is used for size queries; pass -1 when out is
// not a terminal.
func NewScreen(out io.Writer, fd int) *Screen {
	return &Screen{out: out, fd: fd}
}

// SetFixedSize pins the viewport. Zero values fall back to the terminal size.
func (s *Screen) SetFixedSize(width, height int) {
	s.fixedWidth = width
	s.fixedHeight = height
}

// Size returns the current viewport, queried fresh on every call.
func (s *Screen) Size() (int, int) {
	width, height := s.fixedWidth, s.fixedHeight
	if (width <= 0 || height <= 0) && s.fd >= 0 {
		if w, h, err := term.GetSize(s.fd); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	return width, height
}

// Write emits text at the cursor. Embedded newlines are sent as CRLF because
// the terminal runs with output post-processing disabled.
func (s *Screen) Write(text string) {
	if text == "" {
		return
	}
	lines := strings.Count(text, "\n")
	if lines > 0 {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	s.emit(text)
	s.advance(lines)
}

// WriteLine emits text truncated to the viewport width and moves to the
// next line.
func (s *Screen) WriteLine(text string) {
	width, _ := s.Size()
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width, "…")
	}
	s.emit(text + "\r\n")
	s.advance(1)
}

// Clear erases the screen and homes the cursor.
func (s *Screen) Clear() {
	s.emit(ansi.EraseEntireScreen + ansi.CursorHomePosition)
	s.row = 0
}

// MoveCursor positions the cursor using 0-based coordinates.
func (s *Screen) MoveCursor(col, row int) {
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	s.emit(ansi.CursorPosition(col+1, row+1))
	s.row = row
}

// CursorRow returns the 0-based row the cursor is on.
func (s *Screen) CursorRow() int {
	return s.row
}

func (s *Screen) advance(lines int) {
	s.row += lines
	if _, height := s.Size(); s.row > height-1 {
		// the terminal scrolled; the cursor stays on the last row
		s.row = height - 1
	}
}

func (s *Screen) emit(text string) {
	if _, err := io.WriteString(s.out, text); err != nil && !s.failed {
		s.failed = true
		logging.Error(fmt.Errorf("terminal write: %w", err))
	}
}

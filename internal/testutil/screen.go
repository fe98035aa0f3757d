package testutil

import (
	"strings"
)

// Screen is an in-memory terminal grid. It wraps at Width, scrolls at
// Height and records every line written so tests can assert on frames
// without parsing escape sequences.
type Screen struct {
	width, height int
	grid          [][]rune
	col, row      int

	frames     [][]string
	transcript strings.Builder
	clears     int
}

// NewScreen returns a blank width x height grid.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	s.frames = [][]string{nil}
	return s
}

// Resize replaces the grid with a blank one of the new size.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
	s.grid = make([][]rune, height)
	for i := range s.grid {
		s.grid[i] = blankRow(width)
	}
	s.col, s.row = 0, 0
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func (s *Screen) Size() (int, int) { return s.width, s.height }

func (s *Screen) CursorRow() int { return s.row }

func (s *Screen) Write(text string) {
	s.transcript.WriteString(text)
	for _, r := range text {
		s.put(r)
	}
}

func (s *Screen) WriteLine(text string) {
	if r := []rune(text); len(r) > s.width {
		text = string(r[:s.width])
	}
	last := len(s.frames) - 1
	s.frames[last] = append(s.frames[last], text)
	s.Write(text + "\n")
}

func (s *Screen) Clear() {
	for i := range s.grid {
		s.grid[i] = blankRow(s.width)
	}
	s.col, s.row = 0, 0
	s.clears++
	s.frames = append(s.frames, nil)
}

func (s *Screen) MoveCursor(col, row int) {
	s.col = clamp(col, 0, s.width)
	s.row = clamp(row, 0, s.height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Screen) put(r rune) {
	switch r {
	case '\n':
		s.col = 0
		s.newline()
	case '\r':
		s.col = 0
	case '\b':
		if s.col > 0 {
			s.col--
		}
	default:
		if s.col >= s.width {
			s.col = 0
			s.newline()
		}
		s.grid[s.row][s.col] = r
		s.col++
	}
}

func (s *Screen) newline() {
	if s.row < s.height-1 {
		s.row++
		return
	}
	s.grid = append(s.grid[1:], blankRow(s.width))
}

// Lines returns the grid rows with trailing spaces removed.
func (s *Screen) Lines() []string {
	lines := make([]string, len(s.grid))
	for i, row := range s.grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

// Text renders the grid up to its last non-blank row, one row per line.
func (s *Screen) Text() string {
	lines := s.Lines()
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	if end == 0 {
		return ""
	}
	return strings.Join(lines[:end], "\n") + "\n"
}

// Frame returns the lines written with WriteLine since the last Clear.
func (s *Screen) Frame() []string {
	return s.frames[len(s.frames)-1]
}

// Frames returns every frame, oldest first. The first entry holds lines
// written before the first Clear.
func (s *Screen) Frames() [][]string { return s.frames }

// Transcript is every string passed to Write or WriteLine, in order.
func (s *Screen) Transcript() string { return s.transcript.String() }

// Clears counts calls to Clear.
func (s *Screen) Clears() int { return s.clears }

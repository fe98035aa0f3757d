package selector

import (
	"errors"
	"fmt"

	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/atomicstack/gradebook/internal/logging/events"
	"github.com/atomicstack/gradebook/internal/terminal"
)

// Screen is the render sink a menu draws on.
type Screen interface {
	Write(text string)
	WriteLine(text string)
	Clear()
	Size() (width, height int)
	MoveCursor(col, row int)
	CursorRow() int
}

// KeySource blocks until one key is available.
type KeySource interface {
	ReadKey() (terminal.Key, error)
}

// CommitFunc handles a resolved selection. Returning true ends the session.
type CommitFunc[T any] func(entries []T, index int) bool

// Reason says why Show returned.
type Reason int

const (
	ReasonExit Reason = iota
	ReasonCommit
	ReasonZeroAction
	ReasonInterrupted
	ReasonInputClosed
)

func (r Reason) String() string {
	switch r {
	case ReasonCommit:
		return "commit"
	case ReasonZeroAction:
		return "zero"
	case ReasonInterrupted:
		return "interrupt"
	case ReasonInputClosed:
		return "input-closed"
	default:
		return "exit"
	}
}

// Result describes how a session ended. Index is the committed entry for
// ReasonCommit and -1 otherwise.
type Result struct {
	Reason Reason
	Index  int
}

// Menu runs one interactive selection session over a list of T.
type Menu[T any] struct {
	Options

	// Name identifies the menu in trace logs.
	Name string

	UpdateEntries func(entries []T) []T
	DisplayTitle  func(entries []T)
	DisplayEntry  func(entries []T, entry T, index, number int)
	ZeroAction    func(entries []T) bool
	Label         func(entry T) string

	screen  Screen
	keys    KeySource
	entries []T
	commit  CommitFunc[T]
	buffer  digitBuffer
}

// New prepares a menu. Hooks may be replaced on the returned value before
// Show is called.
func New[T any](screen Screen, keys KeySource, entries []T, commit CommitFunc[T], opts Options) *Menu[T] {
	return &Menu[T]{
		Options: opts,
		screen:  screen,
		keys:    keys,
		entries: entries,
		commit:  commit,
	}
}

// Screen exposes the render sink so hooks can draw on it.
func (m *Menu[T]) Screen() Screen { return m.screen }

// Buffer returns the digits typed so far.
func (m *Menu[T]) Buffer() string { return m.buffer.String() }

// Show renders and reads keys until the session ends. It never fails: input
// errors end the session with ReasonInputClosed.
func (m *Menu[T]) Show() Result {
	m.buffer.Reset()
	for {
		entries := m.render()
		if res, done := m.await(entries); done {
			events.Menu.Exit(m.Name, res.Reason.String())
			return res
		}
	}
}

// await reads keys against the snapshot rendered last. It returns done=false
// when the frame must be redrawn.
func (m *Menu[T]) await(entries []T) (Result, bool) {
	for {
		key, err := m.keys.ReadKey()
		if err != nil {
			if errors.Is(err, terminal.ErrInterrupted) {
				return Result{Reason: ReasonInterrupted, Index: -1}, true
			}
			logging.Error(fmt.Errorf("menu %q: read key: %w", m.Name, err))
			return Result{Reason: ReasonInputClosed, Index: -1}, true
		}

		switch {
		case key.Code == terminal.KeyRune && key.Rune == m.ExitKey:
			if m.UserCanExit {
				return Result{Reason: ReasonExit, Index: -1}, true
			}
			events.Menu.Reject(m.Name, m.buffer.String(), key.Rune)
			m.notice()

		case key.Code == terminal.KeyBackspace:
			if m.buffer.Backspace() {
				m.screen.Write("\b \b")
				events.Menu.Backspace(m.Name, m.buffer.String())
				return Result{}, false
			}

		case key.Code == terminal.KeyEnter:
			if m.buffer.Empty() {
				continue
			}
			return m.resolve(entries)

		case key.IsDigit():
			switch WouldAccept(len(entries), m.buffer.String(), key.Rune) {
			case ZeroAction:
				if m.ZeroAction == nil {
					m.notice()
					continue
				}
				done := m.ZeroAction(entries)
				events.Menu.ZeroAction(m.Name, done)
				if done {
					return Result{Reason: ReasonZeroAction, Index: -1}, true
				}
				return Result{}, false
			case Reject:
				events.Menu.Reject(m.Name, m.buffer.String(), key.Rune)
				m.notice()
			case Accept:
				m.buffer.Append(key.Rune)
				events.Menu.Accept(m.Name, m.buffer.String())
				return Result{}, false
			case Commit:
				m.buffer.Append(key.Rune)
				m.screen.Write(string(key.Rune))
				return m.resolve(entries)
			}

		default:
			m.notice()
		}
	}
}

// resolve hands the buffered selection to the commit handler and clears the
// buffer.
func (m *Menu[T]) resolve(entries []T) (Result, bool) {
	index, ok := m.buffer.Index()
	m.buffer.Reset()
	if !ok || index >= len(entries) {
		m.notice()
		return Result{}, false
	}
	done := m.commit != nil && m.commit(entries, index)
	events.Menu.Commit(m.Name, index, done)
	if done {
		return Result{Reason: ReasonCommit, Index: index}, true
	}
	return Result{}, false
}

package terminal

import (
	"errors"
	"unicode"
)

// KeyCode classifies a key event.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyInterrupt
)

// ErrInterrupted is returned alongside a KeyInterrupt key when the user
// presses Ctrl+C while the terminal is in raw mode.
var ErrInterrupted = errors.New("interrupted")

const (
	charInterrupt = 3
	charCtrlH     = 8
	charLineFeed  = 10
	charEnter     = 13
	charEscape    = 27
	charBackspace = 127
)

// Key is a single decoded key press. Rune is only meaningful for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey builds a printable key.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// IsDigit reports whether the key is an ASCII digit.
func (k Key) IsDigit() bool {
	return k.Code == KeyRune && k.Rune >= '0' && k.Rune <= '9'
}

func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "esc"
	case KeyInterrupt:
		return "ctrl+c"
	default:
		return "unknown"
	}
}

// decodeRune maps a single input rune to a key.
func decodeRune(r rune) Key {
	switch r {
	case charEnter, charLineFeed:
		return Key{Code: KeyEnter}
	case charBackspace, charCtrlH:
		return Key{Code: KeyBackspace}
	case charInterrupt:
		return Key{Code: KeyInterrupt}
	case charEscape:
		return Key{Code: KeyEscape}
	}
	if unicode.IsPrint(r) {
		return RuneKey(r)
	}
	return Key{Code: KeyUnknown}
}

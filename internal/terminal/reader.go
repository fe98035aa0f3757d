package terminal

import (
	"bufio"
	"io"
)

// Reader decodes key presses from a byte stream, one key per call.
type Reader struct {
	in *bufio.Reader
}

// NewReader wraps r. Raw mode is the caller's concern (see Open); on a
// cooked stream keys only arrive after the user presses Enter.
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r)}
}

// ReadKey blocks until one key is available.
func (r *Reader) ReadKey() (Key, error) {
	ch, _, err := r.in.ReadRune()
	if err != nil {
		return Key{}, err
	}
	key := decodeRune(ch)
	switch key.Code {
	case KeyInterrupt:
		return key, ErrInterrupted
	case KeyEscape:
		if r.skipSequence() {
			return Key{Code: KeyUnknown}, nil
		}
	case KeyEnter:
		// A CRLF pair is one Enter.
		if ch == charEnter {
			r.discardIf(charLineFeed)
		}
	}
	return key, nil
}

// Drain returns the bytes read ahead of the last key and empties the buffer.
// Components that read the tty directly call it first so type-ahead is not
// lost.
func (r *Reader) Drain() []byte {
	n := r.in.Buffered()
	if n == 0 {
		return nil
	}
	buf, _ := r.in.Peek(n)
	out := append([]byte(nil), buf...)
	_, _ = r.in.Discard(n)
	return out
}

// skipSequence consumes a CSI or SS3 sequence that follows an escape byte
// already received. It only inspects bytes that are already buffered, so a
// lone Esc press never blocks.
func (r *Reader) skipSequence() bool {
	if r.in.Buffered() == 0 {
		return false
	}
	next, err := r.in.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return false
	}
	_, _ = r.in.ReadByte()
	for r.in.Buffered() > 0 {
		b, err := r.in.ReadByte()
		if err != nil {
			break
		}
		if b >= 0x40 && b <= 0x7e {
			break
		}
	}
	return true
}

func (r *Reader) discardIf(b byte) {
	if r.in.Buffered() == 0 {
		return
	}
	if next, err := r.in.Peek(1); err == nil && next[0] == b {
		_, _ = r.in.ReadByte()
	}
}

package selector

import "strconv"

// digitBuffer accumulates the digits typed since the last commit or reset.
type digitBuffer struct {
	digits []rune
}

func (b *digitBuffer) String() string { return string(b.digits) }

func (b *digitBuffer) Empty() bool { return len(b.digits) == 0 }

func (b *digitBuffer) Append(digit rune) {
	b.digits = append(b.digits, digit)
}

// Backspace drops the last digit and reports whether anything was removed.
func (b *digitBuffer) Backspace() bool {
	if len(b.digits) == 0 {
		return false
	}
	b.digits = b.digits[:len(b.digits)-1]
	return true
}

func (b *digitBuffer) Reset() {
	b.digits = b.digits[:0]
}

// Index converts the 1-based number in the buffer to a 0-based index.
func (b *digitBuffer) Index() (int, bool) {
	if len(b.digits) == 0 {
		return -1, false
	}
	n, err := strconv.Atoi(string(b.digits))
	if err != nil || n < 1 {
		return -1, false
	}
	return n - 1, true
}

package selector

import (
	"strconv"
	"strings"
)

// Verdict is the outcome of offering one more digit to the buffer.
type Verdict int

const (
	// Reject means the digit can never lead to a valid entry number.
	Reject Verdict = iota
	// Accept means the buffer is still a prefix of several entry numbers.
	Accept
	// Commit means the buffer now names exactly one entry.
	Commit
	// ZeroAction means '0' was pressed on an empty buffer.
	ZeroAction
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Commit:
		return "commit"
	case ZeroAction:
		return "zero"
	default:
		return "reject"
	}
}

// DigitCount returns the number of decimal digits in n.
func DigitCount(n int) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// Matches reports whether the display number of the entry at index starts
// with buffer. An empty buffer matches everything.
func Matches(index int, buffer string) bool {
	return strings.HasPrefix(strconv.Itoa(index+1), buffer)
}

// FilteredIndices returns, in ascending order, the indices in
// [0, entryCount) whose display number starts with buffer.
func FilteredIndices(entryCount int, buffer string) []int {
	if entryCount <= 0 {
		return []int{}
	}
	indices := make([]int, 0, entryCount)
	for i := 0; i < entryCount; i++ {
		if buffer == "" || Matches(i, buffer) {
			indices = append(indices, i)
		}
	}
	return indices
}

// WouldAccept decides what typing digit on top of buffer means for a list of
// entryCount entries. Matching is by string prefix, not numeric closeness:
// with 15 entries "1" stays ambiguous because 10..15 share the prefix.
func WouldAccept(entryCount int, buffer string, digit rune) Verdict {
	if digit < '0' || digit > '9' {
		return Reject
	}
	if buffer == "" && digit == '0' {
		return ZeroAction
	}
	candidate := buffer + string(digit)
	maxLen := DigitCount(entryCount)
	if len(candidate) > maxLen {
		return Reject
	}
	value, err := strconv.Atoi(candidate)
	if err != nil || value > entryCount {
		return Reject
	}
	if len(candidate) == maxLen {
		return Commit
	}
	if countMatches(entryCount, candidate) == 1 {
		return Commit
	}
	return Accept
}

func countMatches(entryCount int, buffer string) int {
	count := 0
	for i := 0; i < entryCount; i++ {
		if Matches(i, buffer) {
			count++
			if count > 1 {
				return count
			}
		}
	}
	return count
}

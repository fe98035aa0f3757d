package selector

import (
	"fmt"

	"github.com/atomicstack/gradebook/internal/logging/events"
)

// render draws one frame and returns the entry snapshot it drew, which is
// the list the following input is resolved against.
func (m *Menu[T]) render() []T {
	if m.ClearOnSwitch {
		m.screen.Clear()
	}
	entries := m.entries
	if m.UpdateEntries != nil {
		entries = m.UpdateEntries(entries)
		m.entries = entries
		// The list may have shrunk under the buffer.
		if !m.buffer.Empty() && len(FilteredIndices(len(entries), m.buffer.String())) == 0 {
			events.Menu.Reset(m.Name, m.buffer.String(), len(entries))
			m.buffer.Reset()
		}
	}
	if m.DisplayTitle != nil {
		m.DisplayTitle(entries)
	}

	filter := m.buffer.String()
	limit := m.visibleRows()
	shown := 0
	for i, entry := range entries {
		if filter != "" && !Matches(i, filter) {
			continue
		}
		// Pagination only applies to the unfiltered list; typing digits is
		// how entries past the cut are reached.
		if filter == "" && shown >= limit {
			m.screen.WriteLine(m.decorate(RowTruncated, fmt.Sprintf("[...] +%d", len(entries))))
			break
		}
		m.displayEntry(entries, entry, i)
		shown++
	}

	width := DigitCount(len(entries))
	if m.ZeroLabel != "" && m.ZeroAction != nil {
		m.screen.WriteLine(m.decorate(RowZero, fmt.Sprintf("[%*s] %s", width, "0", m.ZeroLabel)))
	}
	if m.UserCanExit {
		m.screen.WriteLine(m.decorate(RowExit, fmt.Sprintf("[%*s] %s", width, string(m.ExitKey), m.ExitLabel)))
	}
	m.screen.WriteLine("")
	m.drawPrompt()
	events.Menu.Render(m.Name, len(entries), shown, filter)
	return entries
}

func (m *Menu[T]) displayEntry(entries []T, entry T, index int) {
	if m.DisplayEntry != nil {
		m.DisplayEntry(entries, entry, index, index+1)
		return
	}
	number := fmt.Sprintf("[%*d]", DigitCount(len(entries)), index+1)
	m.screen.WriteLine(m.decorate(RowNumber, number) + " " + m.label(entry))
}

func (m *Menu[T]) decorate(row Row, text string) string {
	if m.Decorate == nil {
		return text
	}
	return m.Decorate(row, text)
}

func (m *Menu[T]) label(entry T) string {
	if m.Label != nil {
		return m.Label(entry)
	}
	return fmt.Sprint(entry)
}

// visibleRows is the number of entry rows that fit before truncation.
func (m *Menu[T]) visibleRows() int {
	_, height := m.screen.Size()
	limit := height - m.ReservedRows
	if limit < 1 {
		limit = 1
	}
	return limit
}

func (m *Menu[T]) drawPrompt() {
	m.screen.Write(m.Prompt + m.buffer.String())
}

// FormatEntry renders the stock "[ n] label" row, padding the number to the
// width of entryCount.
func FormatEntry(entryCount, number int, label string) string {
	return fmt.Sprintf("[%*d] %s", DigitCount(entryCount), number, label)
}

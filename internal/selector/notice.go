package selector

import (
	"strings"
	"time"
)

// notice flashes the invalid-input token under the prompt, then blanks the
// prompt and notice lines and redraws the prompt with the unchanged buffer.
func (m *Menu[T]) notice() {
	m.screen.Write("\n" + m.InvalidToken)
	if m.NoticeDelay > 0 {
		time.Sleep(m.NoticeDelay)
	}
	// Read the row back instead of assuming promptRow+1: the newline scrolls
	// the screen when the prompt sits on the last line.
	noticeRow := m.screen.CursorRow()
	promptRow := noticeRow - 1
	if promptRow < 0 {
		promptRow = 0
	}
	width, _ := m.screen.Size()
	blank := strings.Repeat(" ", width)
	for _, row := range []int{noticeRow, promptRow} {
		m.screen.MoveCursor(0, row)
		m.screen.Write(blank)
	}
	m.screen.MoveCursor(0, promptRow)
	m.drawPrompt()
}

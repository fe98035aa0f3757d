package selector

import "time"

// Options holds the non-generic settings of a menu. Build one value at
// startup with DefaultOptions, adjust it once, and hand copies to every menu;
// nothing in this package keeps a shared mutable default.
type Options struct {
	Prompt        string
	UserCanExit   bool
	ExitKey       rune
	ExitLabel     string
	ZeroLabel     string
	ClearOnSwitch bool
	InvalidToken  string
	NoticeDelay   time.Duration
	// ReservedRows is subtracted from the viewport height to get the number
	// of entry rows shown before the list is truncated.
	ReservedRows int
	// Decorate, when set, styles the parts of a frame the menu draws itself.
	Decorate func(row Row, text string) string
}

// Row names a piece of a frame passed to Options.Decorate.
type Row int

const (
	// RowNumber is the "[ n]" prefix of a default entry row.
	RowNumber Row = iota
	RowZero
	RowExit
	RowTruncated
)

// DefaultOptions returns the stock settings.
func DefaultOptions() Options {
	return Options{
		Prompt:        "> ",
		UserCanExit:   true,
		ExitKey:       'q',
		ExitLabel:     "Back",
		ClearOnSwitch: true,
		InvalidToken:  "Invalid input",
		NoticeDelay:   600 * time.Millisecond,
		ReservedRows:  5,
	}
}

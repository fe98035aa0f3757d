package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/gradebook/internal/gradebook"
	"github.com/atomicstack/gradebook/internal/i18n"
	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/atomicstack/gradebook/internal/selector"
	"github.com/atomicstack/gradebook/internal/state"
	"github.com/atomicstack/gradebook/internal/storage"
	"github.com/atomicstack/gradebook/internal/terminal"
	"github.com/atomicstack/gradebook/internal/theme"
	"github.com/atomicstack/gradebook/internal/ui/command"
	"github.com/atomicstack/gradebook/internal/ui/form"
)

var (
	// ErrInterrupted ends every open menu after Ctrl+C.
	ErrInterrupted = terminal.ErrInterrupted
	// ErrInputClosed ends every open menu once the key source fails.
	ErrInputClosed = errors.New("input closed")
)

// Item represents a selectable main menu entry. Label is a message key.
type Item struct {
	ID    string
	Label string
}

// Action runs a main menu entry. done closes the main menu.
type Action func(*Context) (done bool, err error)

// Prompter asks for one line of text. ok is false when the user cancelled.
type Prompter interface {
	Prompt(form.Options) (value string, ok bool, err error)
}

// Context carries everything the menus need.
type Context struct {
	Screen   selector.Screen
	Keys     selector.KeySource
	Options  selector.Options
	Styles   *theme.Styles
	Catalog  *i18n.Catalog
	Tables   state.TableStore
	Store    storage.Store
	Prompter Prompter
	Bus      *command.Bus
	// Sync applies changes made to the data directory by other programs.
	// Pickers call it before every frame.
	Sync      func()
	Clipboard func(text string) error
	Now       func() time.Time
}

func (c *Context) t(key string, args ...interface{}) string {
	return c.Catalog.T(key, args...)
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Context) sync() {
	if c.Sync != nil {
		c.Sync()
	}
}

// save stores the table in memory and on disk. A failed write leaves the
// table dirty so it is retried on exit.
func (c *Context) save(t gradebook.Table) {
	t.Modified = c.now()
	c.Tables.Put(t)
	if c.Store == nil {
		return
	}
	if err := c.Store.Save(t.CollectionName(), t); err != nil {
		logging.Errorf("save table %q: %w", t.Name, err)
		return
	}
	c.Tables.MarkClean(t.ID)
}

// prompt runs a form. Form failures are logged and treated as a cancel.
func (c *Context) prompt(opts form.Options) (string, bool, error) {
	if opts.Help == "" {
		opts.Help = c.t("Enter to save, Esc to cancel")
	}
	value, ok, err := c.Prompter.Prompt(opts)
	if errors.Is(err, ErrInterrupted) {
		return "", false, ErrInterrupted
	}
	if err != nil {
		logging.Error(err)
		return "", false, nil
	}
	return value, ok, nil
}

func newMenu[T any](c *Context, name string, entries []T, commit selector.CommitFunc[T]) *selector.Menu[T] {
	m := selector.New(c.Screen, c.Keys, entries, commit, c.Options)
	m.Name = name
	m.Decorate = c.decorate
	localize(c, m)
	return m
}

func (c *Context) decorate(row selector.Row, text string) string {
	switch row {
	case selector.RowNumber:
		return c.Styles.Number.Render(text)
	case selector.RowZero:
		return c.Styles.ZeroItem.Render(text)
	case selector.RowExit:
		return c.Styles.ExitItem.Render(text)
	case selector.RowTruncated:
		return c.Styles.Truncated.Render(text)
	}
	return text
}

// localize refreshes the built-in labels; menus call it on every frame so a
// language switch shows up immediately.
func localize[T any](c *Context, m *selector.Menu[T]) {
	m.ExitLabel = c.t("Back")
	m.InvalidToken = c.Styles.Error.Render(c.t("Invalid input"))
}

func writeTitle(c *Context, title string) {
	c.Screen.WriteLine(c.Styles.Title.Render(title))
}

func writeSubtitle(c *Context, text string) {
	c.Screen.WriteLine(c.Styles.Subtitle.Render(text))
}

// writeEntry prints one numbered row, cutting the label to the screen width.
func writeEntry(c *Context, count, number int, label string) {
	width, _ := c.Screen.Size()
	prefix := selector.FormatEntry(count, number, "")
	if avail := width - len(prefix); avail > 0 {
		label = truncate.StringWithTail(label, uint(avail), "…")
	}
	styled := c.decorate(selector.RowNumber, strings.TrimSpace(prefix))
	c.Screen.WriteLine(styled + " " + c.Styles.Item.Render(label))
}

// finish turns abnormal session endings into errors. nested is an error
// raised by a submenu opened from a commit handler.
func finish(res selector.Result, nested error) error {
	if nested != nil {
		return nested
	}
	switch res.Reason {
	case selector.ReasonInterrupted:
		return ErrInterrupted
	case selector.ReasonInputClosed:
		return ErrInputClosed
	}
	return nil
}

// waitKey shows a hint and blocks until any key is pressed.
func waitKey(c *Context) error {
	c.Screen.WriteLine("")
	c.Screen.Write(c.Styles.Info.Render(c.t("Press any key to continue")))
	if _, err := c.Keys.ReadKey(); err != nil {
		if errors.Is(err, terminal.ErrInterrupted) {
			return ErrInterrupted
		}
		return ErrInputClosed
	}
	return nil
}

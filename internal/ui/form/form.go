// Package form collects one line of text from the user with a Bubble Tea
// text input. Menus use it for names, grades and notes.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/gradebook/internal/logging/events"
	"github.com/atomicstack/gradebook/internal/theme"
)

// Options configures a form.
type Options struct {
	Title       string
	Help        string
	Placeholder string
	Initial     string
	CharLimit   int
	// AllowEmpty submits an empty value instead of cancelling.
	AllowEmpty bool
	// Validate returns a message shown under the input, or "" when the value
	// may be submitted.
	Validate func(value string) string
	// Warn returns a non-blocking hint shown under the input.
	Warn func(value string) string
}

// Form is a single-line prompt.
type Form struct {
	input   textinput.Model
	opts    Options
	err     string
	warn    string
	aborted bool
}

func New(opts Options) *Form {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit
	if ti.CharLimit == 0 {
		ti.CharLimit = 64
	}
	styles := theme.Default()
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = *styles.Placeholder
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	if opts.Initial != "" {
		ti.SetValue(opts.Initial)
	}
	f := &Form{input: ti, opts: opts}
	f.refresh()
	return f
}

func (f *Form) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *Form) Title() string     { return f.opts.Title }
func (f *Form) Error() string     { return f.err }
func (f *Form) Warning() string   { return f.warn }
func (f *Form) InputView() string { return f.input.View() }

// Aborted reports whether the form was left with Ctrl+C.
func (f *Form) Aborted() bool { return f.aborted }

// Update feeds one message to the form. done reports a submitted value and
// cancel an abandoned prompt.
func (f *Form) Update(msg tea.Msg) (cmd tea.Cmd, done bool, cancel bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.refresh()
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			events.Form.Cancel(f.opts.Title, events.FormReasonEscape)
			return nil, false, true
		case tea.KeyCtrlC:
			events.Form.Cancel(f.opts.Title, events.FormReasonAbort)
			f.aborted = true
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" && !f.opts.AllowEmpty {
				events.Form.Cancel(f.opts.Title, events.FormReasonEmpty)
				return nil, false, true
			}
			if f.opts.Validate != nil {
				if problem := f.opts.Validate(value); problem != "" {
					f.err = problem
					return nil, false, false
				}
			}
			f.err = ""
			events.Form.Submit(f.opts.Title, value)
			return nil, true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.refresh()
	return cmd, false, false
}

// refresh recomputes the hint lines. Validation errors are only shown once
// the user has typed something.
func (f *Form) refresh() {
	value := f.Value()
	f.err = ""
	if value != "" && f.opts.Validate != nil {
		f.err = f.opts.Validate(value)
	}
	f.warn = ""
	if value != "" && f.opts.Warn != nil {
		f.warn = f.opts.Warn(value)
	}
}

// View renders the title, input and hints.
func (f *Form) View() string {
	styles := theme.Default()
	lines := []string{}
	if f.opts.Title != "" {
		lines = append(lines, render(styles.Title, f.opts.Title), "")
	}
	lines = append(lines, f.InputView())
	if f.err != "" {
		lines = append(lines, "", render(styles.Error, f.err))
	} else if f.warn != "" {
		lines = append(lines, "", render(styles.Warning, f.warn))
	}
	if f.opts.Help != "" {
		lines = append(lines, "", render(styles.Info, f.opts.Help))
	}
	return strings.Join(lines, "\n") + "\n"
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

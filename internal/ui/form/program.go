package form

import (
	"fmt"
	"io"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gradebook/internal/terminal"
)

// model adapts a Form to tea.Model and quits once it is submitted or
// cancelled.
type model struct {
	form      *Form
	replay    []tea.Msg
	submitted bool
	canceled  bool
}

// Init feeds keys that were typed before the program took over the input.
func (m *model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.replay))
	for i, msg := range m.replay {
		cmds[i] = func() tea.Msg { return msg }
	}
	return tea.Sequence(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, done, cancel := m.form.Update(msg)
	switch {
	case done:
		m.submitted = true
		return m, tea.Quit
	case cancel:
		m.canceled = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *model) View() string {
	if m.submitted || m.canceled {
		return ""
	}
	return m.form.View()
}

// Runner runs forms on a terminal.
type Runner struct {
	In  io.Reader
	Out io.Writer
	// Pending, when set, returns bytes another reader already pulled off In.
	// They are replayed as key presses before In is read.
	Pending func() []byte
}

// Prompt blocks until the form is submitted or cancelled. ok is false when
// the user cancelled. Ctrl+C returns terminal.ErrInterrupted.
func (r Runner) Prompt(opts Options) (string, bool, error) {
	m := &model{form: New(opts)}
	if r.Pending != nil {
		m.replay = replayKeys(r.Pending())
	}
	program := tea.NewProgram(m,
		tea.WithInput(r.In),
		tea.WithOutput(r.Out),
		tea.WithoutSignalHandler(),
	)
	if _, err := program.Run(); err != nil {
		return "", false, fmt.Errorf("run form %q: %w", opts.Title, err)
	}
	if m.form.Aborted() {
		return "", false, terminal.ErrInterrupted
	}
	if !m.submitted {
		return "", false, nil
	}
	return m.form.Value(), true, nil
}

// replayKeys decodes raw tty bytes into key messages. Escape sequences are
// dropped whole.
func replayKeys(b []byte) []tea.Msg {
	var msgs []tea.Msg
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		switch {
		case r == '\r' || r == '\n':
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
		case r == 0x7f || r == 0x08:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyBackspace})
		case r == 0x03:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyCtrlC})
		case r == 0x15:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyCtrlU})
		case r == 0x1b:
			if len(b) > 0 && (b[0] == '[' || b[0] == 'O') {
				b = skipSequence(b[1:])
				continue
			}
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEsc})
		case r == utf8.RuneError || r < 0x20:
		default:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return msgs
}

func skipSequence(b []byte) []byte {
	for i, c := range b {
		if c >= 0x40 && c <= 0x7e {
			return b[i+1:]
		}
	}
	return nil
}

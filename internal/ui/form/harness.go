package form

import tea "github.com/charmbracelet/bubbletea"

// Harness drives a form programmatically for tests.
type Harness struct {
	model *model
	quit  bool
}

// NewHarness creates a harness around a new form.
func NewHarness(opts Options) *Harness {
	return &Harness{model: &model{form: New(opts)}}
}

// Send routes a message through the form and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.quit {
		return
	}
	_, cmd := h.model.Update(msg)
	h.processCmd(cmd)
}

// Type sends each rune as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a special key such as tea.KeyEnter.
func (h *Harness) Press(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		_, cmd = h.model.Update(msg)
	}
}

// View returns the current view string.
func (h *Harness) View() string { return h.model.View() }

func (h *Harness) Form() *Form { return h.model.form }

func (h *Harness) Submitted() bool { return h.model.submitted }

func (h *Harness) Canceled() bool { return h.model.canceled }

// Quit reports whether the form asked the program to exit.
func (h *Harness) Quit() bool { return h.quit }

package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by the menus.
type Styles struct {
	Title       *lipgloss.Style
	Subtitle    *lipgloss.Style
	Number      *lipgloss.Style
	Item        *lipgloss.Style
	ZeroItem    *lipgloss.Style
	ExitItem    *lipgloss.Style
	Truncated   *lipgloss.Style
	Error       *lipgloss.Style
	Warning     *lipgloss.Style
	Info        *lipgloss.Style
	Pass        *lipgloss.Style
	Fail        *lipgloss.Style
	Placeholder *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Number: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ZeroItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	ExitItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Truncated: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Pass: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Fail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Grade picks the pass or fail style for a value on the 1..6 scale.
func (s *Styles) Grade(value, passMark float64) *lipgloss.Style {
	if value < passMark {
		return s.Fail
	}
	return s.Pass
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

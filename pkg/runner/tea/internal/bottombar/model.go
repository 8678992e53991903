package bottombar

import (
	"strings"

	"tableflip.dev/horrorlist/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeForm Mode = iota
	ModeList
	ModeRating
	ModeHelp
)

var helpByMode = map[Mode]string{
	ModeForm:   "tab next · enter select · ctrl+s add · ctrl+f filter · ctrl+c quit",
	ModeList:   "j/k move · w mark watched · 1-4 filter · tab next · ? help",
	ModeRating: "enter save · esc cancel",
	ModeHelp:   "esc/? close help",
}

// Model tracks footer/help/status rendering state.
type Model struct {
	mode   Mode
	status string
	filter string
	styles theme.FooterTheme
}

// New returns a footer model with the given styles.
func New(styles theme.FooterTheme) Model {
	return Model{mode: ModeForm, styles: styles}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
}

// Mode returns the current mode.
func (m Model) Mode() Mode {
	return m.mode
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.status = status
}

// SetFilter sets the active filter label.
func (m *Model) SetFilter(label string) {
	m.filter = label
}

// View renders the footer string and reports lines consumed.
func (m Model) View() (string, int) {
	var segments []string
	if help := helpByMode[m.mode]; help != "" {
		segments = append(segments, m.styles.Help.Render(help))
	}
	if m.filter != "" {
		segments = append(segments, m.styles.Filter.Render("filter "+m.filter))
	}
	if m.status != "" {
		segments = append(segments, m.styles.Status.Render(m.status))
	}
	if len(segments) == 0 {
		return " ", 1
	}
	return strings.Join(segments, " │ "), 1
}

package panel

import (
	"strings"

	"tableflip.dev/horrorlist/pkg/runner/tea/internal/theme"
)

// Model renders a framed panel with a title and body lines. The rating dialog
// and the help screen are both panels.
type Model struct {
	title  string
	lines  []string
	styles theme.ModalTheme
}

// New returns a panel model using the modal styles.
func New(styles theme.ModalTheme) Model {
	return Model{styles: styles}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.lines = nil
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.styles.Title.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.styles.Body.Render(line))
	}
	view := m.styles.Frame.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}

package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	pumpkin  = "#FF8C00"
	blood    = "#8B0000"
	midnight = "#1A1A1A"
	slime    = "#14542F"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Form   FormTheme
	Filter FilterTheme
	Card   CardTheme
	Modal  ModalTheme
	Footer FooterTheme
}

// HeaderTheme styles the title banner.
type HeaderTheme struct {
	From, To string
	Style    lipgloss.Style
}

// FormTheme styles the add form.
type FormTheme struct {
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Hint          lipgloss.Style
	Option        lipgloss.Style
	OptionActive  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
}

// FilterTheme styles the filter chips.
type FilterTheme struct {
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	ChipFocused  lipgloss.Style
}

// CardTheme styles a movie in the list.
type CardTheme struct {
	Frame         lipgloss.Style
	FrameSelected lipgloss.Style
	Title         lipgloss.Style
	Body          lipgloss.Style
	Watched       lipgloss.Style
	Action        lipgloss.Style
	Empty         lipgloss.Style
}

// ModalTheme styles centered modal overlays (rating dialog, help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Filter lipgloss.Style
}

// Default returns the built-in halloween theme used across the UI.
func Default() Theme {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10)
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pumpkin)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pumpkin)).
		Padding(0, 2)
	chip := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			From:  pumpkin,
			To:    blood,
			Style: lipgloss.NewStyle().Bold(true),
		},
		Form: FormTheme{
			Label:         label,
			LabelFocused:  label.Foreground(lipgloss.Color(pumpkin)).Bold(true),
			Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Option:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			OptionActive:  lipgloss.NewStyle().Foreground(lipgloss.Color(pumpkin)).Bold(true),
			Button:        button,
			ButtonFocused: button.Reverse(true),
		},
		Filter: FilterTheme{
			Chip:         chip,
			ChipSelected: chip.Foreground(lipgloss.Color(midnight)).Background(lipgloss.Color(pumpkin)).Bold(true),
			ChipFocused:  chip.Underline(true),
		},
		Card: CardTheme{
			Frame:         card,
			FrameSelected: card.BorderForeground(lipgloss.Color(pumpkin)),
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pumpkin)),
			Body:          lipgloss.NewStyle(),
			Watched:       lipgloss.NewStyle().Foreground(lipgloss.Color(slime)).Bold(true),
			Action:        lipgloss.NewStyle().Foreground(lipgloss.Color(blood)).Bold(true),
			Empty:         lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color(pumpkin)).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pumpkin)),
			Body:  lipgloss.NewStyle(),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Filter: lipgloss.NewStyle().Foreground(lipgloss.Color(pumpkin)),
		},
	}
}

// Gradient renders text with each rune's color blended from h.From to h.To.
func (h HeaderTheme) Gradient(text string) string {
	from, err := colorful.Hex(h.From)
	if err != nil {
		return h.Style.Render(text)
	}
	to, err := colorful.Hex(h.To)
	if err != nil {
		return h.Style.Render(text)
	}

	runes := []rune(text)
	if len(runes) < 2 {
		return h.Style.Foreground(lipgloss.Color(h.From)).Render(text)
	}
	var b strings.Builder
	for i, r := range runes {
		c := from.BlendLab(to, float64(i)/float64(len(runes)-1)).Clamped()
		b.WriteString(h.Style.Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

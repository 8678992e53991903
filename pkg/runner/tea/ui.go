package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/horrorlist/pkg/app"
	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/filter"
	"tableflip.dev/horrorlist/pkg/movie"
	"tableflip.dev/horrorlist/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/horrorlist/pkg/runner/tea/internal/panel"
	"tableflip.dev/horrorlist/pkg/runner/tea/internal/theme"
)

const (
	appTitle   = "🎃 Horror Movie Watchlist 👻"
	cardHeight = 6 // four content lines plus the border
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeRating
	modeHelp
)

// focus walks the screen top to bottom; tab order follows the constants.
type focus int

const (
	focusTitle focus = iota
	focusYear
	focusCategory
	focusPlannedAt
	focusSubmit
	focusFilters
	focusList
	focusCount
)

var fieldForFocus = map[focus]app.Field{
	focusTitle:     app.FieldTitle,
	focusYear:      app.FieldYear,
	focusPlannedAt: app.FieldPlannedAt,
}

var fieldLabels = [...]string{
	app.FieldTitle:     "Title",
	app.FieldYear:      "Year",
	app.FieldPlannedAt: "Planned",
}

// Model renders an app.Session and turns key presses into session intents.
// Everything the watchlist knows lives in the session; the model only keeps
// focus, cursor and terminal size.
type Model struct {
	session *app.Session
	theme   theme.Theme
	codec   movie.DateCodec

	mode  mode
	focus focus

	inputs      [3]textinput.Model
	ratingInput textinput.Model

	categoryIndex int
	filterIndex   int
	cursor        int

	status string
	footer bottombar.Model
	dialog panel.Model

	termWidth  int
	termHeight int
}

// New creates a UI model bound to session.
func New(session *app.Session) Model {
	if session == nil {
		session = app.NewSession(nil, nil)
	}
	th := theme.Default()

	m := Model{
		session: session,
		theme:   th,
		codec:   session.Form.Codec,
		mode:    modeNormal,
		focus:   focusTitle,
		footer:  bottombar.New(th.Footer),
		dialog:  panel.New(th.Modal),
	}

	placeholders := [...]string{
		app.FieldTitle:     "Halloween",
		app.FieldYear:      "1978",
		app.FieldPlannedAt: "31/10/2025",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Placeholder = placeholders[i]
		m.inputs[i] = ti
	}
	m.inputs[app.FieldTitle].Focus()

	ri := textinput.New()
	ri.Prompt = ""
	ri.CharLimit = 8
	m.ratingInput = ri

	m.syncInputs()
	m.syncFooter()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			m.handleHelpKey(msg)
		case modeRating:
			cmds = append(cmds, m.handleRatingKey(msg))
		default:
			cmds = append(cmds, m.handleNormalKey(msg))
		}
	default:
		cmds = append(cmds, m.forwardToInput(msg))
	}

	m.syncFooter()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = modeNormal
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "tab":
		return m.moveFocus(1)
	case "shift+tab":
		return m.moveFocus(-1)
	case "ctrl+s":
		m.submit()
		return nil
	case "ctrl+f":
		m.applyFilter((m.activeFilterIndex() + 1) % len(filter.Options()))
		return nil
	}

	switch m.focus {
	case focusTitle, focusYear, focusPlannedAt:
		if key == "enter" {
			return m.moveFocus(1)
		}
		return m.updateField(msg)
	case focusCategory:
		m.handleCategoryKey(key)
	case focusSubmit:
		switch key {
		case "enter", "space", " ":
			m.submit()
		case "?":
			m.mode = modeHelp
		}
	case focusFilters:
		m.handleFilterKey(key)
	case focusList:
		return m.handleListKey(key)
	}
	return nil
}

func (m *Model) handleCategoryKey(key string) {
	options := category.All()
	if !m.session.Form.Expanded {
		switch key {
		case "enter", "space", " ", "down", "j":
			m.categoryIndex = max(category.Index(m.session.Form.Category), 0)
			m.session.Apply(app.ToggleCategoriesIntent{})
		case "?":
			m.mode = modeHelp
		}
		return
	}

	switch key {
	case "up", "k":
		m.categoryIndex = (m.categoryIndex - 1 + len(options)) % len(options)
	case "down", "j":
		m.categoryIndex = (m.categoryIndex + 1) % len(options)
	case "enter", "space", " ":
		m.session.Apply(app.SelectCategoryIntent{Category: options[m.categoryIndex]})
	case "esc":
		m.session.Apply(app.ToggleCategoriesIntent{})
	}
}

func (m *Model) handleFilterKey(key string) {
	n := len(filter.Options())
	switch key {
	case "left", "h":
		m.filterIndex = (m.filterIndex - 1 + n) % n
	case "right", "l":
		m.filterIndex = (m.filterIndex + 1) % n
	case "enter", "space", " ":
		m.applyFilter(m.filterIndex)
	case "?":
		m.mode = modeHelp
	default:
		m.applyFilterDigit(key)
	}
}

func (m *Model) handleListKey(key string) tea.Cmd {
	visible := m.session.Visible()
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(visible)-1, 0)
	case "w", "enter":
		if m.cursor < len(visible) && !visible[m.cursor].Watched {
			return m.openRating(visible[m.cursor].ID)
		}
	case "?":
		m.mode = modeHelp
	default:
		m.applyFilterDigit(key)
	}
	return nil
}

func (m *Model) handleRatingKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.session.Apply(app.CancelRatingIntent{})
		m.closeRating()
		return nil
	case "enter":
		m.session.Apply(app.SaveRatingIntent{})
		if !m.session.Rating.Open {
			if rated, ok := m.session.Store.Get(m.session.Rating.TargetID); ok && rated.Watched {
				m.status = fmt.Sprintf("Rated %q %s/10", rated.Title, rated.RatingLabel())
			}
			m.closeRating()
		}
		return nil
	}

	var cmd tea.Cmd
	m.ratingInput, cmd = m.ratingInput.Update(msg)
	if v := m.ratingInput.Value(); v != m.session.Rating.Text {
		m.session.Apply(app.SetRatingTextIntent{Text: v})
	}
	return cmd
}

func (m *Model) updateField(msg tea.Msg) tea.Cmd {
	field := fieldForFocus[m.focus]
	var cmd tea.Cmd
	m.inputs[field], cmd = m.inputs[field].Update(msg)
	if v := m.inputs[field].Value(); v != m.session.Form.Value(field) {
		m.session.Apply(app.SetFieldIntent{Field: field, Value: v})
	}
	return cmd
}

// forwardToInput routes non-key messages such as cursor blinks to whichever
// input is focused.
func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.mode == modeRating:
		m.ratingInput, cmd = m.ratingInput.Update(msg)
	case m.mode == modeNormal && m.isTextFocus():
		field := fieldForFocus[m.focus]
		m.inputs[field], cmd = m.inputs[field].Update(msg)
	}
	return cmd
}

func (m *Model) isTextFocus() bool {
	_, ok := fieldForFocus[m.focus]
	return ok
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(focus(next))
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if m.focus == focusCategory && f != focusCategory && m.session.Form.Expanded {
		m.session.Apply(app.ToggleCategoriesIntent{})
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = f
	if f == focusFilters {
		m.filterIndex = m.activeFilterIndex()
	}
	if field, ok := fieldForFocus[f]; ok {
		m.inputs[field].CursorEnd()
		return m.inputs[field].Focus()
	}
	return nil
}

func (m *Model) submit() {
	before := m.session.Store.Len()
	m.session.Apply(app.SubmitIntent{})
	if m.session.Store.Len() > before {
		added := m.session.Movies()[before]
		m.status = fmt.Sprintf("Added %q", added.Title)
		m.syncInputs()
	}
}

func (m *Model) applyFilterDigit(key string) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return
	}
	if idx := int(key[0] - '1'); idx < len(filter.Options()) {
		m.applyFilter(idx)
	}
}

func (m *Model) applyFilter(idx int) {
	opts := filter.Options()
	m.session.Apply(app.SetFilterIntent{Filter: opts[idx]})
	m.filterIndex = idx
	if n := len(m.session.Visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) activeFilterIndex() int {
	active := m.session.Filter()
	for i, opt := range filter.Options() {
		if active.Selected(opt) {
			return i
		}
	}
	return 0
}

func (m *Model) openRating(id int) tea.Cmd {
	m.session.Apply(app.MarkWatchedIntent{ID: id})
	m.mode = modeRating
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.ratingInput.SetValue(m.session.Rating.Text)
	m.ratingInput.CursorEnd()
	return m.ratingInput.Focus()
}

func (m *Model) closeRating() {
	m.mode = modeNormal
	m.ratingInput.Blur()
	if n := len(m.session.Visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// syncInputs copies the session form back into the text inputs, which is how
// a successful submit clears them.
func (m *Model) syncInputs() {
	for i := range m.inputs {
		field := app.Field(i)
		if v := m.session.Form.Value(field); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *Model) syncFooter() {
	switch {
	case m.mode == modeRating:
		m.footer.SetMode(bottombar.ModeRating)
	case m.mode == modeHelp:
		m.footer.SetMode(bottombar.ModeHelp)
	case m.focus == focusFilters || m.focus == focusList:
		m.footer.SetMode(bottombar.ModeList)
	default:
		m.footer.SetMode(bottombar.ModeForm)
	}
	m.footer.SetFilter(m.session.Filter().Label())
	m.footer.SetStatus(m.status)
}

// View renders the form, the filter chips, the list and any dialog.
func (m Model) View() string {
	head := []string{
		m.theme.Header.Gradient(appTitle),
		"",
		m.renderForm(),
		"",
		m.renderFilters(),
		"",
	}
	footer, footerHeight := m.footer.View()

	var body string
	switch m.mode {
	case modeHelp:
		body = m.renderHelp()
	case modeRating:
		body = m.renderRatingDialog()
	default:
		used := lipgloss.Height(strings.Join(head, "\n")) + footerHeight + 1
		body = m.renderList(m.termHeight - used)
	}

	return strings.Join(head, "\n") + "\n" + body + "\n\n" + footer
}

func (m Model) label(f focus, text string) string {
	if m.mode == modeNormal && m.focus == f {
		return m.theme.Form.LabelFocused.Render(text)
	}
	return m.theme.Form.Label.Render(text)
}

func (m Model) renderForm() string {
	form := m.session.Form
	lines := []string{
		m.label(focusTitle, fieldLabels[app.FieldTitle]) + m.inputs[app.FieldTitle].View(),
		m.label(focusYear, fieldLabels[app.FieldYear]) + m.inputs[app.FieldYear].View(),
	}

	marker := "▾"
	if form.Expanded {
		marker = "▴"
	}
	lines = append(lines, m.label(focusCategory, "Category")+fmt.Sprintf("%s %s", form.Category, marker))
	if form.Expanded {
		for i, c := range category.All() {
			style := m.theme.Form.Option
			indicator := "  "
			if i == m.categoryIndex {
				style = m.theme.Form.OptionActive
				indicator = "→ "
			}
			lines = append(lines, strings.Repeat(" ", 10)+style.Render(indicator+c.String()))
		}
	}

	lines = append(lines,
		m.label(focusPlannedAt, fieldLabels[app.FieldPlannedAt])+m.inputs[app.FieldPlannedAt].View()+" "+m.theme.Form.Hint.Render("dd/mm/yyyy"),
	)

	button := m.theme.Form.Button
	if m.mode == modeNormal && m.focus == focusSubmit {
		button = m.theme.Form.ButtonFocused
	}
	lines = append(lines, button.Render("Add movie"))
	return strings.Join(lines, "\n")
}

func (m Model) renderFilters() string {
	active := m.session.Filter()
	chips := make([]string, 0, len(filter.Options()))
	for i, opt := range filter.Options() {
		style := m.theme.Filter.Chip
		if active.Selected(opt) {
			style = m.theme.Filter.ChipSelected
		}
		if m.mode == modeNormal && m.focus == focusFilters && i == m.filterIndex {
			style = style.Inherit(m.theme.Filter.ChipFocused)
		}
		chips = append(chips, style.Render(fmt.Sprintf("%d %s", i+1, opt.Label())))
	}
	return m.label(focusFilters, "Filter") + strings.Join(chips, " ")
}

// renderList draws as many cards as fit in height, keeping the cursor in
// view. A non-positive height means the terminal size is unknown.
func (m Model) renderList(height int) string {
	visible := m.session.Visible()
	if len(visible) == 0 {
		if m.session.Store.Len() == 0 {
			return m.theme.Card.Empty.Render("No movies yet. Add one above.")
		}
		return m.theme.Card.Empty.Render("No movies in this category.")
	}

	start, end := 0, len(visible)
	if m.termHeight > 0 {
		start, end = window(len(visible), m.cursor, max(height/cardHeight, 1))
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(visible[i], m.focus == focusList && i == m.cursor))
	}
	out := strings.Join(cards, "\n")
	if start > 0 || end < len(visible) {
		out += "\n" + m.theme.Card.Empty.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(visible)))
	}
	return out
}

func (m Model) renderCard(mv movie.Movie, selected bool) string {
	title := mv.String() + " 🎃"
	if m.termWidth > 10 {
		title = truncate.StringWithTail(title, uint(m.termWidth-6), "…")
	}

	status := m.theme.Card.Action.Render("[w] Mark as watched 🧛")
	if mv.Watched {
		status = m.theme.Card.Watched.Render("✅ Watched - Rating: " + mv.RatingLabel())
	}

	lines := []string{
		m.theme.Card.Title.Render(title),
		m.theme.Card.Body.Render(fmt.Sprintf("Category: %s 👻", mv.Category)),
		m.theme.Card.Body.Render(fmt.Sprintf("Planned: %s 🕸️", m.codec.Format(mv.PlannedAt))),
		status,
	}
	frame := m.theme.Card.Frame
	if selected {
		frame = m.theme.Card.FrameSelected
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (m Model) renderRatingDialog() string {
	title := "Rate this movie"
	if target, ok := m.session.RatingTarget(); ok {
		title = fmt.Sprintf("Rate %s", target.Title)
	}
	d := m.dialog
	d.SetContent(title, []string{
		"Rating (0 to 10)",
		"> " + m.ratingInput.View(),
		"",
		"enter save · esc cancel",
	})
	view, _ := d.View()
	return view
}

func (m Model) renderHelp() string {
	d := m.dialog
	d.SetContent("Keys", []string{
		"tab / shift+tab   move between form, filters and list",
		"enter             next field, open category, add movie",
		"ctrl+s            add movie from anywhere in the form",
		"ctrl+f            cycle the category filter",
		"1-4               pick a filter chip (filters and list)",
		"j/k, g/G          move in the list",
		"w                 mark the selected movie watched",
		"esc               close a dialog",
		"ctrl+c            quit",
	})
	view, _ := d.View()
	return view
}

// window returns the [start, end) slice of n items of size capacity that
// contains cursor.
func window(n, cursor, capacity int) (int, int) {
	if capacity >= n {
		return 0, n
	}
	start := cursor - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > n {
		start = n - capacity
	}
	return start, start + capacity
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the user quits.
func Run(session *app.Session) error {
	p := tea.NewProgram(New(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

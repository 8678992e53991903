package app

import (
	"strings"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/movie"
)

// Field names a free-text input of the add form.
type Field int

const (
	FieldTitle Field = iota
	FieldYear
	FieldPlannedAt
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldYear:
		return "year"
	case FieldPlannedAt:
		return "plannedAt"
	}
	return "unknown"
}

// Form holds the draft entry typed by the user. Nothing is validated until
// Submit.
type Form struct {
	Title     string
	Year      string
	PlannedAt string
	Category  category.Category

	// Expanded is true while the category selector is open.
	Expanded bool

	Codec movie.DateCodec
}

// NewForm returns a form with every field at its default.
func NewForm() Form {
	return Form{
		Category: category.Default(),
		Codec:    movie.Local,
	}
}

// SetField assigns value to the named field.
func (f *Form) SetField(field Field, value string) {
	switch field {
	case FieldTitle:
		f.Title = value
	case FieldYear:
		f.Year = value
	case FieldPlannedAt:
		f.PlannedAt = value
	}
}

// Value returns the current text of the named field.
func (f *Form) Value(field Field) string {
	switch field {
	case FieldTitle:
		return f.Title
	case FieldYear:
		return f.Year
	case FieldPlannedAt:
		return f.PlannedAt
	}
	return ""
}

// ToggleCategories opens or closes the category selector.
func (f *Form) ToggleCategories() {
	f.Expanded = !f.Expanded
}

// SelectCategory replaces the category and closes the selector.
func (f *Form) SelectCategory(c category.Category) {
	f.Category = c
	f.Expanded = false
}

// Submit validates the form. A blank title rejects the submission and leaves
// the form untouched. Otherwise the draft is returned, with an unparsable
// year or date normalized to 0, and the form is reset.
func (f *Form) Submit() (movie.Draft, bool) {
	if strings.TrimSpace(f.Title) == "" {
		return movie.Draft{}, false
	}
	d := movie.Draft{
		Title:     f.Title,
		Year:      movie.ParseYear(f.Year),
		Category:  f.Category,
		PlannedAt: f.Codec.Parse(f.PlannedAt),
	}
	f.reset()
	return d, true
}

func (f *Form) reset() {
	f.Title = ""
	f.Year = ""
	f.PlannedAt = ""
	f.Category = category.Default()
}

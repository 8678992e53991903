package app

import (
	"fmt"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/filter"
)

// Intent is a single user action emitted by a view. Session.Apply routes each
// one to the controller that owns the state it changes.
type Intent interface {
	// Describe renders the intent for logs.
	Describe() string
}

// SetFieldIntent edits one text field of the add form.
type SetFieldIntent struct {
	Field Field
	Value string
}

func (i SetFieldIntent) Describe() string {
	return fmt.Sprintf("set-field field:%s value:%q", i.Field, i.Value)
}

// ToggleCategoriesIntent opens or closes the category selector.
type ToggleCategoriesIntent struct{}

func (ToggleCategoriesIntent) Describe() string { return "toggle-categories" }

// SelectCategoryIntent picks a category from the selector.
type SelectCategoryIntent struct {
	Category category.Category
}

func (i SelectCategoryIntent) Describe() string {
	return fmt.Sprintf("select-category category:%q", i.Category)
}

// SubmitIntent commits the add form.
type SubmitIntent struct{}

func (SubmitIntent) Describe() string { return "submit" }

// SetFilterIntent changes the visible category.
type SetFilterIntent struct {
	Filter filter.Filter
}

func (i SetFilterIntent) Describe() string {
	return fmt.Sprintf("set-filter filter:%q", i.Filter.Label())
}

// MarkWatchedIntent opens the rating dialog for a movie.
type MarkWatchedIntent struct {
	ID int
}

func (i MarkWatchedIntent) Describe() string {
	return fmt.Sprintf("mark-watched id:%d", i.ID)
}

// SetRatingTextIntent edits the rating dialog text.
type SetRatingTextIntent struct {
	Text string
}

func (i SetRatingTextIntent) Describe() string {
	return fmt.Sprintf("set-rating-text text:%q", i.Text)
}

// SaveRatingIntent confirms the rating dialog.
type SaveRatingIntent struct{}

func (SaveRatingIntent) Describe() string { return "save-rating" }

// CancelRatingIntent dismisses the rating dialog.
type CancelRatingIntent struct{}

func (CancelRatingIntent) Describe() string { return "cancel-rating" }

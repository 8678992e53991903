// Package app owns the state of one watchlist session: the store, the add
// form, the rating dialog and the active filter. Views render a Session and
// feed user intents back into it; they hold no domain state of their own.
package app

import (
	"go.uber.org/zap"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/filter"
	"tableflip.dev/horrorlist/pkg/movie"
	"tableflip.dev/horrorlist/pkg/store"
)

// Session funnels every mutation of the watchlist through the form and rating
// controllers.
type Session struct {
	Store  *store.Store
	Form   Form
	Rating Rating

	filter filter.Filter
	logger *zap.Logger
}

// NewSession creates a session over st. A nil store starts empty and a nil
// logger discards everything.
func NewSession(st *store.Store, logger *zap.Logger) *Session {
	if st == nil {
		st = store.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		Store:  st,
		Form:   NewForm(),
		Rating: NewRating(),
		filter: filter.All,
		logger: logger,
	}
}

// Apply dispatches a view intent.
func (s *Session) Apply(i Intent) {
	s.logger.Debug("intent", zap.String("intent", i.Describe()))

	switch i := i.(type) {
	case SetFieldIntent:
		s.SetField(i.Field, i.Value)
	case ToggleCategoriesIntent:
		s.ToggleCategories()
	case SelectCategoryIntent:
		s.SelectCategory(i.Category)
	case SubmitIntent:
		s.Submit()
	case SetFilterIntent:
		s.SetFilter(i.Filter)
	case MarkWatchedIntent:
		s.MarkWatched(i.ID)
	case SetRatingTextIntent:
		s.SetRatingText(i.Text)
	case SaveRatingIntent:
		s.SaveRating()
	case CancelRatingIntent:
		s.CancelRating()
	default:
		s.logger.Warn("unknown intent", zap.String("intent", i.Describe()))
	}
}

// SetField edits a form field.
func (s *Session) SetField(field Field, value string) {
	s.Form.SetField(field, value)
}

// ToggleCategories opens or closes the category selector.
func (s *Session) ToggleCategories() {
	s.Form.ToggleCategories()
}

// SelectCategory picks the form category.
func (s *Session) SelectCategory(c category.Category) {
	s.Form.SelectCategory(c)
}

// Submit commits the form into the store. ok is false when the form was
// rejected.
func (s *Session) Submit() (movie.Movie, bool) {
	d, ok := s.Form.Submit()
	if !ok {
		s.logger.Debug("submit rejected: blank title")
		return movie.Movie{}, false
	}
	m := s.Store.Add(d)
	s.logger.Info("movie added",
		zap.Int("id", m.ID),
		zap.String("title", m.Title),
		zap.Int("year", m.Year),
		zap.String("category", m.Category.String()),
		zap.Int64("plannedAt", m.PlannedAt),
	)
	return m, true
}

// Filter returns the active filter.
func (s *Session) Filter() filter.Filter {
	return s.filter
}

// SetFilter replaces the active filter.
func (s *Session) SetFilter(f filter.Filter) {
	s.filter = f
}

// Movies returns the whole list.
func (s *Session) Movies() []movie.Movie {
	return s.Store.List()
}

// Visible returns the movies passing the active filter.
func (s *Session) Visible() []movie.Movie {
	return filter.Visible(s.Store.List(), s.filter)
}

// MarkWatched opens the rating dialog for the movie id.
func (s *Session) MarkWatched(id int) {
	s.Rating.OpenFor(id)
}

// RatingTarget returns the movie the open dialog rates.
func (s *Session) RatingTarget() (movie.Movie, bool) {
	if !s.Rating.Open || !s.Rating.HasTarget {
		return movie.Movie{}, false
	}
	return s.Store.Get(s.Rating.TargetID)
}

// SetRatingText edits the dialog text.
func (s *Session) SetRatingText(v string) {
	s.Rating.SetText(v)
}

// SaveRating confirms the dialog. It reports false, leaving the dialog
// open, when the text is not a number.
func (s *Session) SaveRating() bool {
	if !s.Rating.Confirm(s.Store) {
		s.logger.Debug("rating not saved", zap.String("text", s.Rating.Text))
		return false
	}
	s.logger.Info("movie rated",
		zap.Int("id", s.Rating.TargetID),
		zap.String("text", s.Rating.Text),
	)
	return true
}

// CancelRating dismisses the dialog.
func (s *Session) CancelRating() {
	s.Rating.Cancel()
}

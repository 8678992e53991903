package app

import (
	"tableflip.dev/horrorlist/pkg/movie"
)

// DefaultRatingText is the text the rating dialog starts with.
const DefaultRatingText = "5"

// Marker commits a rating onto a stored movie.
type Marker interface {
	MarkWatched(id int, rating int) (movie.Movie, bool)
}

// Rating is the state of the "mark watched" dialog.
//
// Neither OpenFor nor Cancel resets Text: whatever was typed last is offered
// again the next time the dialog opens.
type Rating struct {
	TargetID  int
	HasTarget bool
	Text      string
	Open      bool
}

// NewRating returns a closed dialog with the default text.
func NewRating() Rating {
	return Rating{Text: DefaultRatingText}
}

// OpenFor shows the dialog for the movie id.
func (r *Rating) OpenFor(id int) {
	r.TargetID = id
	r.HasTarget = true
	r.Open = true
}

// SetText replaces the draft rating text.
func (r *Rating) SetText(v string) {
	r.Text = v
}

// Confirm parses the draft text and, if it is an integer, clamps it, commits
// it through m and closes the dialog. Non-numeric text changes nothing and
// the dialog stays open. The returned bool reports whether the dialog was
// committed.
func (r *Rating) Confirm(m Marker) bool {
	if !r.Open {
		return false
	}
	rating, ok := movie.ParseRating(r.Text)
	if !ok {
		return false
	}
	if r.HasTarget && m != nil {
		m.MarkWatched(r.TargetID, rating)
	}
	r.Open = false
	return true
}

// Cancel closes the dialog without committing anything.
func (r *Rating) Cancel() {
	r.Open = false
}

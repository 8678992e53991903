// Package filter narrows the watchlist down to the movies matching a category
// token.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/movie"
)

// AllLabel is the chip that clears the filter.
const AllLabel = "All"

// Filter selects movies by category. The zero value is All, which shows
// everything; it is distinct from any concrete token, including "".
type Filter struct {
	token string
	set   bool
}

// All is the "show everything" sentinel.
var All = Filter{}

// By builds a filter matching categories that contain token, ignoring case.
func By(token string) Filter {
	return Filter{token: token, set: true}
}

// ForCategory is shorthand for By(c.String()).
func ForCategory(c category.Category) Filter {
	return By(c.String())
}

// IsAll reports whether f is the sentinel.
func (f Filter) IsAll() bool {
	return !f.set
}

// Token returns the filter text and whether one is set.
func (f Filter) Token() (string, bool) {
	return f.token, f.set
}

// Label is the text of the chip that represents f.
func (f Filter) Label() string {
	if !f.set {
		return AllLabel
	}
	return f.token
}

// Selected reports whether the chip opt should be highlighted while f is
// active: All for the sentinel, otherwise a case-insensitive token match.
func (f Filter) Selected(opt Filter) bool {
	if f.IsAll() || opt.IsAll() {
		return f.IsAll() && opt.IsAll()
	}
	return strings.EqualFold(f.token, opt.token)
}

// Match reports whether m belongs to the visible subsequence for f.
func (f Filter) Match(m movie.Movie) bool {
	if !f.set {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(m.Category.String()), fold.String(f.token))
}

// Options returns the filter chips in display order: All followed by one chip
// per category.
func Options() []Filter {
	opts := []Filter{All}
	for _, c := range category.All() {
		opts = append(opts, ForCategory(c))
	}
	return opts
}

// Visible returns the movies matched by f, keeping their relative order. For
// All the input slice itself is returned.
func Visible(movies []movie.Movie, f Filter) []movie.Movie {
	if f.IsAll() {
		return movies
	}
	out := make([]movie.Movie, 0, len(movies))
	for _, m := range movies {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

package movie

import (
	"fmt"

	"tableflip.dev/horrorlist/pkg/category"
)

// Movie is a single watchlist record.
type Movie struct {
	ID        int               `json:"id"`
	Title     string            `json:"title"`
	Year      int               `json:"year"`
	Category  category.Category `json:"category"`
	PlannedAt int64             `json:"plannedAt"`
	Watched   bool              `json:"watched"`
	Rating    *int              `json:"rating,omitempty"`
}

// Draft is the validated content of the add form, before the store assigns an
// identity to it.
type Draft struct {
	Title     string
	Year      int
	Category  category.Category
	PlannedAt int64
}

// Clone returns a deep copy so callers never share the rating pointer.
func (m Movie) Clone() Movie {
	if m.Rating != nil {
		r := *m.Rating
		m.Rating = &r
	}
	return m
}

// RatingLabel renders the rating, or "-" when the movie has none.
func (m Movie) RatingLabel() string {
	if m.Rating == nil {
		return Placeholder
	}
	return fmt.Sprintf("%d", *m.Rating)
}

func (m Movie) String() string {
	return fmt.Sprintf("%s (%d)", m.Title, m.Year)
}

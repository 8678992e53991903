// Package movie holds the watchlist record and the lenient parsers that turn
// raw form text into record fields. None of the parsers return errors: bad
// input maps onto a documented default.
package movie

import (
	"strconv"
	"strings"
)

const (
	// MinRating and MaxRating bound a rating after clamping.
	MinRating = 0
	MaxRating = 10
)

// ParseYear parses the year field, returning 0 for anything that is not an
// integer.
func ParseYear(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}

// ParseRating parses the rating text and clamps it into [MinRating,
// MaxRating]. ok is false when text is not an integer.
func ParseRating(text string) (rating int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return ClampRating(n), true
}

// ClampRating bounds n into [MinRating, MaxRating].
func ClampRating(n int) int {
	switch {
	case n < MinRating:
		return MinRating
	case n > MaxRating:
		return MaxRating
	}
	return n
}

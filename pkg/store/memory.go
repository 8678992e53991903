// Package store keeps the watchlist for the lifetime of the process. Nothing
// is written to disk; a fresh process starts with an empty list.
package store

import (
	"sync"

	"tableflip.dev/horrorlist/pkg/movie"
)

// Store is an ordered, in-memory sequence of movies. It owns its records: every
// read returns copies and every write goes through a method.
type Store struct {
	mu     sync.RWMutex
	movies []movie.Movie
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NextID returns the identifier the next Add will assign: one more than the
// largest id present, or 1 for an empty store.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIDLocked()
}

func (s *Store) nextIDLocked() int {
	max := 0
	for _, m := range s.movies {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// Add appends a new unwatched movie built from d and returns it.
func (s *Store) Add(d movie.Draft) movie.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := movie.Movie{
		ID:        s.nextIDLocked(),
		Title:     d.Title,
		Year:      d.Year,
		Category:  d.Category,
		PlannedAt: d.PlannedAt,
	}
	s.movies = append(s.movies, m)
	return m.Clone()
}

// Seed appends already-built records, keeping their ids. Records whose id is
// not positive or collides with one already present get the next free id.
func (s *Store) Seed(movies ...movie.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]bool, len(s.movies)+len(movies))
	for _, m := range s.movies {
		seen[m.ID] = true
	}
	for _, m := range movies {
		m = m.Clone()
		if m.ID <= 0 || seen[m.ID] {
			m.ID = s.nextIDLocked()
		}
		if m.Rating != nil {
			r := movie.ClampRating(*m.Rating)
			m.Rating = &r
			m.Watched = true
		}
		seen[m.ID] = true
		s.movies = append(s.movies, m)
	}
}

// MarkWatched flags the movie with the given id as watched with rating. The
// replacement is positional, so ordering is preserved. ok is false, and the
// store untouched, when no such movie exists.
func (s *Store) MarkWatched(id int, rating int) (updated movie.Movie, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].ID != id {
			continue
		}
		r := movie.ClampRating(rating)
		s.movies[i].Watched = true
		s.movies[i].Rating = &r
		return s.movies[i].Clone(), true
	}
	return movie.Movie{}, false
}

// Get finds a movie by id.
func (s *Store) Get(id int) (movie.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.movies {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return movie.Movie{}, false
}

// List returns every movie in insertion order.
func (s *Store) List() []movie.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]movie.Movie, len(s.movies))
	for i, m := range s.movies {
		out[i] = m.Clone()
	}
	return out
}

// Len returns the number of movies held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

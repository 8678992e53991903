package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/movie"
)

// SeedMovie is one entry of a seed file. Fields are kept as text and go
// through the same lenient parsers as the add form.
type SeedMovie struct {
	Title     string `yaml:"title"`
	Year      string `yaml:"year"`
	Category  string `yaml:"category"`
	PlannedAt string `yaml:"plannedAt"`
	Rating    string `yaml:"rating,omitempty"`
}

// LoadSeed reads a YAML list of movies from path. It is read once at
// startup; the watchlist is never written back.
func LoadSeed(path string, codec movie.DateCodec) ([]movie.Movie, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: seed path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read seed: %w", err)
	}
	return ParseSeed(data, codec)
}

// ParseSeed decodes seed YAML. Entries with a blank title are skipped, the
// same rule the add form applies.
func ParseSeed(data []byte, codec movie.DateCodec) ([]movie.Movie, error) {
	var raw []SeedMovie
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse seed: %w", err)
	}
	out := make([]movie.Movie, 0, len(raw))
	for _, r := range raw {
		m, ok := r.toMovie(codec)
		if !ok {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r SeedMovie) toMovie(codec movie.DateCodec) (movie.Movie, bool) {
	if strings.TrimSpace(r.Title) == "" {
		return movie.Movie{}, false
	}
	c, err := category.Parse(r.Category)
	if err != nil {
		c = category.Default()
	}
	m := movie.Movie{
		Title:     r.Title,
		Year:      movie.ParseYear(r.Year),
		Category:  c,
		PlannedAt: codec.Parse(r.PlannedAt),
	}
	if rating, ok := movie.ParseRating(r.Rating); ok {
		m.Watched = true
		m.Rating = &rating
	}
	return m, true
}

// Package demo plays the Halloween walkthrough against a fresh session and
// prints the watchlist after every step.
package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/horrorlist/pkg/app"
	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/filter"
	"tableflip.dev/horrorlist/pkg/movie"
	"tableflip.dev/horrorlist/pkg/printers"
)

// Step is a snapshot of the visible list after one action.
type Step struct {
	Name   string        `json:"step"`
	Filter string        `json:"filter"`
	Movies []movie.Movie `json:"movies"`
}

// Demo runs the scripted walkthrough.
type Demo struct {
	JSON   bool
	ShowID bool
	Logger *zap.Logger
	Codec  movie.DateCodec

	// Out defaults to color.Output.
	Out io.Writer
}

// Do runs the walkthrough and prints it.
func (d *Demo) Do(ctx context.Context) error {
	steps, err := d.Steps(ctx)
	if err != nil {
		return err
	}

	out := d.Out
	if out == nil {
		out = color.Output
	}

	if d.JSON {
		b, err := json.MarshalIndent(steps, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: d.ShowID, Codec: d.Codec, Out: out}
	pp.NewLine()
	for _, s := range steps {
		pp.TitleWithCount(fmt.Sprintf("%s [%s]", s.Name, s.Filter), len(s.Movies))
		pp.Movies(s.Movies...)
	}
	return nil
}

// Steps drives a fresh session through add, rate and filter.
func (d *Demo) Steps(ctx context.Context) ([]Step, error) {
	s := app.NewSession(nil, d.Logger)
	s.Form.Codec = d.Codec

	var steps []Step
	snap := func(name string) {
		steps = append(steps, Step{Name: name, Filter: s.Filter().Label(), Movies: s.Visible()})
	}

	actions := []struct {
		name  string
		apply func() error
	}{
		{name: "Empty watchlist", apply: func() error { return nil }},
		{name: "Add Halloween", apply: func() error {
			s.Apply(app.SetFieldIntent{Field: app.FieldTitle, Value: "Halloween"})
			s.Apply(app.SetFieldIntent{Field: app.FieldYear, Value: "1978"})
			s.Apply(app.SelectCategoryIntent{Category: category.Slasher})
			s.Apply(app.SetFieldIntent{Field: app.FieldPlannedAt, Value: "31/10/1978"})
			if _, ok := s.Submit(); !ok {
				return errors.New("demo: add was rejected")
			}
			return nil
		}},
		{name: "Rate Halloween 11", apply: func() error {
			s.Apply(app.MarkWatchedIntent{ID: 1})
			s.Apply(app.SetRatingTextIntent{Text: "11"})
			if !s.SaveRating() {
				return errors.New("demo: rating was not saved")
			}
			return nil
		}},
		{name: "Filter Classic", apply: func() error {
			s.Apply(app.SetFilterIntent{Filter: filter.ForCategory(category.Classic)})
			return nil
		}},
		{name: "Show all", apply: func() error {
			s.Apply(app.SetFilterIntent{Filter: filter.All})
			return nil
		}},
	}

	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.apply(); err != nil {
			return nil, err
		}
		snap(a.name)
	}
	return steps, nil
}

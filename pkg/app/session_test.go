package app

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/horrorlist/pkg/category"
	"tableflip.dev/horrorlist/pkg/filter"
	"tableflip.dev/horrorlist/pkg/movie"
)

func newTestSession(t *testing.T) (*Session, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSession(nil, zap.New(core))
	s.Form.Codec = movie.DateCodec{Location: time.UTC}
	return s, logs
}

func TestSessionHalloweenScenario(t *testing.T) {
	s, _ := newTestSession(t)

	s.Apply(SetFieldIntent{Field: FieldTitle, Value: "Halloween"})
	s.Apply(SetFieldIntent{Field: FieldYear, Value: "1978"})
	s.Apply(SelectCategoryIntent{Category: category.Slasher})
	s.Apply(SetFieldIntent{Field: FieldPlannedAt, Value: "31/10/1978"})
	s.Apply(SubmitIntent{})

	movies := s.Movies()
	if len(movies) != 1 {
		t.Fatalf("expected one movie, got %d", len(movies))
	}
	m := movies[0]
	if m.ID != 1 || m.Watched || m.Rating != nil {
		t.Fatalf("unexpected new movie %+v", m)
	}
	codec := movie.DateCodec{Location: time.UTC}
	if got := codec.Format(m.PlannedAt); got != "31/10/1978" {
		t.Fatalf("expected planned date 31/10/1978, got %q", got)
	}

	s.Apply(MarkWatchedIntent{ID: 1})
	if !s.Rating.Open {
		t.Fatalf("expected rating dialog open")
	}
	target, ok := s.RatingTarget()
	if !ok || target.Title != "Halloween" {
		t.Fatalf("expected rating target Halloween, got %+v", target)
	}
	s.Apply(SetRatingTextIntent{Text: "11"})
	s.Apply(SaveRatingIntent{})
	if s.Rating.Open {
		t.Fatalf("expected dialog closed after save")
	}

	m, _ = s.Store.Get(1)
	if !m.Watched || m.Rating == nil || *m.Rating != 10 {
		t.Fatalf("expected watched with rating 10, got %+v", m)
	}

	s.Apply(SetFilterIntent{Filter: filter.ForCategory(category.Classic)})
	if got := s.Visible(); len(got) != 0 {
		t.Fatalf("expected no Classic movies, got %d", len(got))
	}
	s.Apply(SetFilterIntent{Filter: filter.All})
	if got := s.Visible(); len(got) != 1 {
		t.Fatalf("expected one movie with All, got %d", len(got))
	}
}

func TestSessionSubmitRejectedDoesNotAdd(t *testing.T) {
	s, logs := newTestSession(t)
	s.SetField(FieldTitle, "  ")
	if _, ok := s.Submit(); ok {
		t.Fatalf("expected blank title rejected")
	}
	if s.Store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
	if logs.FilterMessage("submit rejected: blank title").Len() != 1 {
		t.Fatalf("expected rejection to be logged")
	}
}

func TestSessionSaveRatingNonNumeric(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetField(FieldTitle, "Hereditary")
	s.Submit()

	s.MarkWatched(1)
	s.SetRatingText("nope")
	if s.SaveRating() {
		t.Fatalf("expected save to fail")
	}
	if !s.Rating.Open {
		t.Fatalf("expected dialog to stay open")
	}
	m, _ := s.Store.Get(1)
	if m.Watched {
		t.Fatalf("expected movie unwatched")
	}

	s.CancelRating()
	if _, ok := s.RatingTarget(); ok {
		t.Fatalf("expected no rating target once dialog closed")
	}
}

func TestSessionSaveRatingMissingMovie(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetField(FieldTitle, "Hereditary")
	s.Submit()
	before := s.Movies()

	s.MarkWatched(42)
	s.SetRatingText("7")
	if !s.SaveRating() {
		t.Fatalf("expected numeric rating to close the dialog")
	}
	after := s.Movies()
	if after[0].Watched != before[0].Watched || after[0].Rating != nil {
		t.Fatalf("expected store unchanged, got %+v", after[0])
	}
}

func TestSessionLogsIntents(t *testing.T) {
	s, logs := newTestSession(t)
	s.Apply(ToggleCategoriesIntent{})
	s.Apply(CancelRatingIntent{})
	entries := logs.FilterMessage("intent").All()
	if len(entries) != 2 {
		t.Fatalf("expected two intent logs, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["intent"]; got != "toggle-categories" {
		t.Fatalf("expected toggle-categories, got %v", got)
	}
	if !s.Form.Expanded {
		t.Fatalf("expected selector open after toggle intent")
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(nil, nil)
	if s.Store == nil {
		t.Fatalf("expected a store")
	}
	if !s.Filter().IsAll() {
		t.Fatalf("expected All filter")
	}
	if s.Rating.Text != DefaultRatingText {
		t.Fatalf("expected default rating text")
	}
}

// Package ui wires configuration, the seed file, audio and logging around the
// interactive watchlist.
package ui

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/horrorlist/pkg/app"
	"tableflip.dev/horrorlist/pkg/audio"
	"tableflip.dev/horrorlist/pkg/config"
	"tableflip.dev/horrorlist/pkg/filter"
	"tableflip.dev/horrorlist/pkg/movie"
	teaui "tableflip.dev/horrorlist/pkg/runner/tea"
	"tableflip.dev/horrorlist/pkg/store"
)

// UI launches the Bubble Tea watchlist.
type UI struct {
	Config   config.Config
	SeedPath string
	NoAudio  bool
	Filter   filter.Filter
	Logger   *zap.Logger

	// Player overrides the player built from Config.Audio.
	Player audio.Player
	// Run overrides the program loop.
	Run func(*app.Session) error
}

// Do seeds the store, starts the background theme and blocks until the UI
// exits. Audio failures are logged, never returned.
func (u *UI) Do(ctx context.Context) error {
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	session, err := u.Session()
	if err != nil {
		return err
	}

	player := u.Player
	if player == nil {
		cfg := u.Config.Audio
		if u.NoAudio {
			cfg.Enabled = false
		}
		player = audio.New(cfg, logger)
	}
	if err := player.StartLooping(u.Config.Audio.Resource); err != nil {
		logger.Warn("audio unavailable", zap.String("resource", u.Config.Audio.Resource), zap.Error(err))
	}
	defer func() {
		if err := player.Release(); err != nil {
			logger.Warn("audio release", zap.Error(err))
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	run := u.Run
	if run == nil {
		run = teaui.Run
	}
	logger.Info("ui started", zap.Int("movies", session.Store.Len()))
	if err := run(session); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	logger.Info("ui stopped")
	return nil
}

// Session builds the session the UI renders, loading SeedPath when set and
// starting on Filter.
func (u *UI) Session() (*app.Session, error) {
	st := store.New()
	if u.SeedPath != "" {
		movies, err := config.LoadSeed(u.SeedPath, movie.Local)
		if err != nil {
			return nil, err
		}
		st.Seed(movies...)
	}
	s := app.NewSession(st, u.Logger)
	if !u.Filter.IsAll() {
		s.Apply(app.SetFilterIntent{Filter: u.Filter})
	}
	return s, nil
}

// Package audio plays the background theme while the UI is open. Playback is
// fire-and-forget: failures are logged, never shown to the user.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/horrorlist/pkg/config"
)

// Player starts a looping track at launch and releases it at teardown.
type Player interface {
	StartLooping(resource string) error
	Release() error
}

// New picks the player described by cfg.
func New(cfg config.Audio, logger *zap.Logger) Player {
	if !cfg.Enabled || strings.TrimSpace(cfg.Command) == "" {
		return Noop{}
	}
	return &Exec{Command: cfg.Command, Logger: logger}
}

// Noop is the player used when audio is disabled.
type Noop struct{}

func (Noop) StartLooping(string) error { return nil }
func (Noop) Release() error { return nil }

const (
	restartDelay = 500 * time.Millisecond
	minHealthy   = 2 * time.Second
	maxFailures  = 3
)

// Exec loops a track by running an external player, for example
// "mpv --loop=inf --no-video", with the resource appended as the last
// argument. If the player exits it is started again; after maxFailures quick
// exits in a row it gives up.
type Exec struct {
	Command string
	Logger  *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// StartLooping launches the player in the background. It fails only when the
// command cannot be found.
func (e *Exec) StartLooping(resource string) error {
	args := strings.Fields(e.Command)
	if len(args) == 0 {
		return errors.New("audio: empty command")
	}
	path, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	args = append(args[1:], resource)

	_ = e.Release()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	e.mu.Lock()
	e.cancel = cancel
	e.done = done
	e.mu.Unlock()

	go e.loop(ctx, done, path, args)
	return nil
}

func (e *Exec) loop(ctx context.Context, done chan struct{}, path string, args []string) {
	defer close(done)
	logger := e.logger()

	failures := 0
	for {
		started := time.Now()
		cmd := exec.CommandContext(ctx, path, args...)
		err := cmd.Run()
		if ctx.Err() != nil {
			return
		}
		if time.Since(started) < minHealthy {
			failures++
		} else {
			failures = 0
		}
		logger.Debug("audio player exited", zap.String("path", path), zap.Error(err), zap.Int("failures", failures))
		if failures >= maxFailures {
			logger.Warn("audio player keeps exiting, giving up", zap.String("path", path), zap.Error(err))
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(restartDelay):
		}
	}
}

// Release stops the player and waits for it to exit. It is safe to call
// without a prior StartLooping and more than once.
func (e *Exec) Release() error {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	e.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

func (e *Exec) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

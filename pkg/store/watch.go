package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch observes the KV's backing directory for external edits and reloads
// the store when they happen (subscribers then see a ReasonReload change).
// It requires a Pathed KV; stores loaded over purely in-memory KVs return an
// error. Watching stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	pathed, ok := s.kv.(Pathed)
	if !ok {
		return errors.New("store: kv backend has no filesystem path to watch")
	}
	basePath := pathed.BasePath()
	if basePath == "" {
		return errors.New("store: kv base path unknown")
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(basePath); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("store: watch %s: %w", basePath, err)
	}

	go func() {
		defer func() {
			if err := watcher.Close(); err != nil {
				s.log.Errorw("store: watcher close", "err", err)
			}
		}()

		// Coalesce bursts of filesystem activity (diskv writes each key as
		// its own file) into one reload.
		throttle := newReloadThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Errorw("store: watcher error", "err", err)
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				throttle.Enqueue(s.Reload)
			}
		}
	}()

	return nil
}

// reloadThrottle coalesces rapid triggers into a single delayed call.
type reloadThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newReloadThrottle(delay time.Duration) *reloadThrottle {
	return &reloadThrottle{delay: delay}
}

func (t *reloadThrottle) Enqueue(fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		fire()
	})
}

func (t *reloadThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

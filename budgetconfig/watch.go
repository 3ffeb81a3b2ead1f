package budgetconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses editor save bursts (write + rename + chmod)
// into one reload.
const debounceWindow = 100 * time.Millisecond

// Event is one watcher notification: a freshly loaded configuration, or
// the error that prevented loading it.
type Event struct {
	File *File
	Err  error
}

// Watch reloads the configuration file whenever it changes and delivers
// the result on the returned channel. The channel closes when ctx is
// cancelled. Watching errors are delivered as Events with Err set; the
// watch keeps running so a transiently unreadable file (mid-save) heals
// on the next write.
//
// The parent directory is watched rather than the file itself, so
// editors that replace the file on save (rename-over) keep notifying.
func Watch(ctx context.Context, path string) (<-chan Event, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	events := make(chan Event, 1)
	go func() {
		defer close(events)
		defer watcher.Close()

		var debounce *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if debounce == nil {
					debounce = time.NewTimer(debounceWindow)
					fire = debounce.C
				} else {
					debounce.Reset(debounceWindow)
				}

			case <-fire:
				debounce = nil
				fire = nil
				f, err := Load(abs)
				select {
				case events <- Event{File: f, Err: err}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case events <- Event{Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

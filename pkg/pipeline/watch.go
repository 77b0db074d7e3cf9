package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	debounceTick   = 250 * time.Millisecond
	debounceStable = 300 * time.Millisecond
)

// Watch blocks, rerunning the extraction pass whenever a new image lands in
// the plate directory. A freshly created file fires events before its bytes
// finish landing, so each file is held in a pending map and only extracted
// once its events have been quiet for debounceStable. Events and extraction
// run on this single goroutine, so the record store keeps exactly one
// writer. Returns when ctx is cancelled.
func (r *Runner) Watch(ctx context.Context) error {
	if err := r.Store.EnsureInitialized(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.PlateDir, 0755); err != nil {
		return fmt.Errorf("create plate dir %s: %w", r.PlateDir, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(r.PlateDir); err != nil {
		return fmt.Errorf("watch %s: %w", r.PlateDir, err)
	}
	log.Printf("watching %s for new plates (debounced)", r.PlateDir)

	pending := map[string]time.Time{}
	ticker := time.NewTicker(debounceTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if !imageExtensions[strings.ToLower(filepath.Ext(ev.Name))] {
				continue
			}
			// Writes refresh the timestamp, restarting the quiet window.
			pending[ev.Name] = time.Now()
		case <-ticker.C:
			now := time.Now()
			for name, last := range pending {
				if now.Sub(last) <= debounceStable {
					continue
				}
				delete(pending, name)
				if err := r.RunFile(name); err != nil {
					log.Printf("pipeline run for %s: %v", filepath.Base(name), err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

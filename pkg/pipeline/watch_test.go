package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"platewatch/pkg/ocr"
)

// A crop written in several chunks must be extracted exactly once, and only
// after its final bytes have landed.
func TestWatchWaitsForWritesToSettle(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t)
	r := newTestRunner(dir, store)

	var mu sync.Mutex
	var seen []string // file content at extraction time
	r.extract = func(path string) (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("read %s: %v", path, err)
		}
		mu.Lock()
		seen = append(seen, string(data))
		mu.Unlock()
		return "", ocr.ErrNoPlate
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()
	time.Sleep(200 * time.Millisecond) // let the watcher attach

	path := filepath.Join(dir, "plate_0.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.WriteString("partial"); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = f.Sync()
	time.Sleep(150 * time.Millisecond) // within the quiet window
	if _, err := f.WriteString("-complete"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for {
		mu.Lock()
		n := len(seen)
		mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	// Long enough for a spurious second run to have fired.
	time.Sleep(700 * time.Millisecond)

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 {
		t.Fatalf("expected exactly 1 extraction got %d", len(seen))
	}
	if seen[0] != "partial-complete" {
		t.Fatalf("extraction saw a truncated file: %q", seen[0])
	}
}

func TestWatchIgnoresNonImages(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t)
	r := newTestRunner(dir, store)

	var mu sync.Mutex
	calls := 0
	r.extract = func(string) (string, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return "", ocr.ErrNoPlate
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(900 * time.Millisecond)

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Fatalf("expected no extraction for non-image files got %d", calls)
	}
}

package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeStamped(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
	return path
}

func TestLatestImagePicksNewestNotLexical(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	// Lexically last file is the oldest; selection must follow time.
	writeStamped(t, dir, "zzz.jpg", base)
	writeStamped(t, dir, "aaa.png", base.Add(10*time.Minute))
	want := writeStamped(t, dir, "mmm.bmp", base.Add(20*time.Minute))

	got, err := LatestImage(dir)
	if err != nil {
		t.Fatalf("LatestImage: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestLatestImageIgnoresNonImages(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	want := writeStamped(t, dir, "plate_0.jpg", base)
	writeStamped(t, dir, "notes.txt", base.Add(10*time.Minute))
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := LatestImage(dir)
	if err != nil {
		t.Fatalf("LatestImage: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestLatestImageEmptyFolder(t *testing.T) {
	got, err := LatestImage(t.TempDir())
	if err != nil {
		t.Fatalf("LatestImage: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty result got %s", got)
	}
}

func TestLatestImageMissingFolder(t *testing.T) {
	got, err := LatestImage(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("LatestImage: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty result got %s", got)
	}
}

func TestRunEmptyStoreIsNoOp(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t)
	r := newTestRunner(dir, store)

	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows, err := store.All()
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows got %d", len(rows))
	}
}

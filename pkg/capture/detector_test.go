package capture

import (
	"image"
	"testing"
)

func TestFilterByAreaThreshold(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(0, 0, 10, 10),  // 100, too small
		image.Rect(0, 0, 50, 10),  // 500, exactly at the limit
		image.Rect(0, 0, 100, 40), // 4000
		image.Rect(5, 5, 25, 25),  // 400, too small
	}

	got := FilterByArea(rects, 500)
	if len(got) != 2 {
		t.Fatalf("expected 2 rects got %d", len(got))
	}
	if got[0] != rects[1] || got[1] != rects[2] {
		t.Fatalf("filter changed detection order: %v", got)
	}
}

func TestFilterByAreaEmpty(t *testing.T) {
	if got := FilterByArea(nil, 500); len(got) != 0 {
		t.Fatalf("expected empty result got %v", got)
	}
}

func TestLargestArea(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(0, 0, 40, 20),  // 800
		image.Rect(0, 0, 100, 30), // 3000
		image.Rect(0, 0, 60, 20),  // 1200
	}
	if got := LargestArea(rects); got != 1 {
		t.Fatalf("expected index 1 got %d", got)
	}
}

func TestLargestAreaEmpty(t *testing.T) {
	if got := LargestArea(nil); got != -1 {
		t.Fatalf("expected -1 got %d", got)
	}
}

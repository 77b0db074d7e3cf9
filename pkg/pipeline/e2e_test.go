package pipeline

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gocv.io/x/gocv"
)

// Full chain against a rendered crop: latest image, preprocessing, OCR,
// record append. Requires a tesseract installation, so the test is opt-in.
func TestBatchRunRecordsRenderedPlate(t *testing.T) {
	if os.Getenv("OCR_E2E") != "1" {
		t.Skip("OCR end-to-end test is disabled; set OCR_E2E=1 to enable")
	}

	plateDir := t.TempDir()
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(235, 235, 235, 0), 140, 560, gocv.MatTypeCV8UC3)
	defer img.Close()
	gocv.PutText(&img, "DL8CAF5098", image.Pt(20, 90), gocv.FontHersheySimplex, 2, color.RGBA{R: 15, G: 15, B: 15}, 5)
	if ok := gocv.IMWrite(filepath.Join(plateDir, "plate_0.jpg"), img); !ok {
		t.Fatalf("write crop")
	}

	store := newTestStore(t)
	r := newTestRunner(plateDir, store)
	taken := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	r.now = func() time.Time { return taken }

	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows, err := store.All()
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(rows))
	}
	if rows[0].Date != "2024-03-09" || rows[0].Time != "14:05:06" || rows[0].Plate != "DL8CAF5098" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

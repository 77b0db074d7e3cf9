package capture

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"gocv.io/x/gocv"
)

// CaptureLoop drives the camera through detection and annotation until the
// operator quits or the stream ends. Key s saves the current candidate
// crop, key q quits; no other commands are recognized.
type CaptureLoop struct {
	source   *FrameSource
	detector *PlateDetector
	store    *ImageStore
}

func NewCaptureLoop(source *FrameSource, detector *PlateDetector, store *ImageStore) *CaptureLoop {
	return &CaptureLoop{source: source, detector: detector, store: store}
}

// Run executes the capture loop. A mid-session read failure stops the loop
// gracefully; the display windows and per-tick Mats are released on every
// exit path. The per-tick WaitKey is the loop's only suspension point, so
// frame-rate responsiveness is preserved.
func (l *CaptureLoop) Run() error {
	window := gocv.NewWindow("Plate Capture")
	defer window.Close()
	preview := gocv.NewWindow("Plate Preview")
	defer preview.Close()

	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	green := color.RGBA{G: 255}
	magenta := color.RGBA{R: 255, B: 255}
	white := color.RGBA{R: 255, G: 255, B: 255}

	lastTick := time.Now()
	for {
		if ok := l.source.Next(&frame); !ok {
			log.Printf("frame read failed; stopping capture")
			return nil
		}
		if frame.Empty() {
			continue
		}

		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
		rects := l.detector.Detect(gray)

		// Candidates are not buffered across ticks: the save command
		// only ever applies to the frame on screen.
		var candidate image.Rectangle
		for _, r := range rects {
			gocv.Rectangle(&frame, r, green, 2)
			gocv.PutText(&frame, "Number Plate", image.Pt(r.Min.X, r.Min.Y-5),
				gocv.FontHersheyComplexSmall, 1, magenta, 2)
		}
		if i := LargestArea(rects); i >= 0 {
			candidate = rects[i]
			roi := frame.Region(candidate)
			preview.IMShow(roi)
			roi.Close()
		}

		now := time.Now()
		fps := 1.0 / (now.Sub(lastTick).Seconds() + 1e-6)
		lastTick = now
		gocv.PutText(&frame, fmt.Sprintf("FPS: %d", int(fps)), image.Pt(10, 30),
			gocv.FontHersheySimplex, 1, white, 2)

		window.IMShow(frame)
		switch window.WaitKey(1) {
		case 's':
			if candidate.Empty() {
				log.Printf("save requested with no plate in frame")
				continue
			}
			crop := frame.Region(candidate)
			path, err := l.store.Save(crop)
			crop.Close()
			if err != nil {
				log.Printf("save crop: %v", err)
				continue
			}
			log.Printf("plate saved: %s", path)
		case 'q':
			return nil
		}
	}
}

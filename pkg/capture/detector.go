package capture

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// DetectorConfig holds the cascade detection parameters. ScaleFactor and
// MinNeighbors were tuned empirically against the pretrained Haar plate
// model; MinArea rejects detections too small to hold readable characters.
type DetectorConfig struct {
	ModelPath    string
	ScaleFactor  float64
	MinNeighbors int
	MinArea      int
}

// DefaultDetectorConfig returns the tuned defaults for the given cascade
// model file.
func DefaultDetectorConfig(modelPath string) DetectorConfig {
	return DetectorConfig{
		ModelPath:    modelPath,
		ScaleFactor:  1.1,
		MinNeighbors: 5,
		MinArea:      500,
	}
}

// PlateDetector finds candidate plate regions in a grayscale frame using a
// pretrained cascade classifier.
type PlateDetector struct {
	classifier gocv.CascadeClassifier
	cfg        DetectorConfig
}

func NewPlateDetector(cfg DetectorConfig) (*PlateDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cfg.ModelPath) {
		classifier.Close()
		return nil, fmt.Errorf("load cascade model %q", cfg.ModelPath)
	}
	return &PlateDetector{classifier: classifier, cfg: cfg}, nil
}

// Detect returns the candidate rectangles in gray that pass the minimum
// area filter, in detection order. Overlapping or nested rectangles are
// kept as-is; each is judged on its own area.
func (d *PlateDetector) Detect(gray gocv.Mat) []image.Rectangle {
	rects := d.classifier.DetectMultiScaleWithParams(gray,
		d.cfg.ScaleFactor, d.cfg.MinNeighbors, 0, image.Point{}, image.Point{})
	return FilterByArea(rects, d.cfg.MinArea)
}

func (d *PlateDetector) Close() error {
	return d.classifier.Close()
}

// FilterByArea keeps rectangles whose area is at least minArea, preserving
// the original order.
func FilterByArea(rects []image.Rectangle, minArea int) []image.Rectangle {
	var out []image.Rectangle
	for _, r := range rects {
		if r.Dx()*r.Dy() >= minArea {
			out = append(out, r)
		}
	}
	return out
}

// LargestArea returns the index of the largest rectangle, or -1 for an
// empty slice. When several detections pass the filter in one frame, the
// largest one becomes the save candidate.
func LargestArea(rects []image.Rectangle) int {
	best := -1
	bestArea := 0
	for i, r := range rects {
		if area := r.Dx() * r.Dy(); area > bestArea {
			best = i
			bestArea = area
		}
	}
	return best
}

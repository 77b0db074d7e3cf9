package capture

import (
	"fmt"
	"log"

	"gocv.io/x/gocv"
)

// FrameSource wraps a camera device and yields raw color frames. The
// requested resolution is a hint: the device reports back what it actually
// delivers, and frames are used at their real dimensions.
type FrameSource struct {
	cam *gocv.VideoCapture
}

// OpenFrameSource opens the camera at the given index and requests a
// capture resolution. An open failure is fatal to a capture session.
func OpenFrameSource(deviceIndex, width, height int) (*FrameSource, error) {
	cam, err := gocv.OpenVideoCapture(deviceIndex)
	if err != nil {
		return nil, fmt.Errorf("open capture device %d: %w", deviceIndex, err)
	}
	cam.Set(gocv.VideoCaptureFrameWidth, float64(width))
	cam.Set(gocv.VideoCaptureFrameHeight, float64(height))
	log.Printf("camera %d opened at %.0fx%.0f", deviceIndex,
		cam.Get(gocv.VideoCaptureFrameWidth), cam.Get(gocv.VideoCaptureFrameHeight))
	return &FrameSource{cam: cam}, nil
}

// Next reads the next frame into img. It returns false when the device
// stops delivering frames; that is the capture loop's normal exit cue, not
// an error.
func (s *FrameSource) Next(img *gocv.Mat) bool {
	return s.cam.Read(img)
}

func (s *FrameSource) Close() error {
	return s.cam.Close()
}

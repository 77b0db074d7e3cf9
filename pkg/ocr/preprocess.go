package ocr

import (
	"image"

	"gocv.io/x/gocv"
)

// PreprocessConfig holds the enhancement parameters. The defaults were
// tuned for small plate crops: recognition accuracy degrades sharply below
// roughly 400px of width, so crops are upscaled first.
type PreprocessConfig struct {
	TargetWidth    int     // upscale small crops toward this width, minimum 2x
	ClaheClip      float64 // CLAHE clip limit
	ClaheTile      int     // CLAHE tile grid (square)
	BilateralD     int     // bilateral filter diameter
	BilateralSigma float64 // bilateral color and space sigma
	ThreshBlock    int     // adaptive threshold block size
	ThreshOffset   float32 // adaptive threshold constant offset
	CloseKernel    int     // morphological closing kernel (square)
}

func DefaultPreprocessConfig() PreprocessConfig {
	return PreprocessConfig{
		TargetWidth:    400,
		ClaheClip:      2.0,
		ClaheTile:      8,
		BilateralD:     9,
		BilateralSigma: 75,
		ThreshBlock:    35,
		ThreshOffset:   10,
		CloseKernel:    2,
	}
}

// Preprocess runs the fixed seven-stage enhancement pipeline over a raw
// plate crop and returns a binary image ready for character recognition.
// The pipeline is deterministic: the same input always produces the same
// output. The caller owns the returned Mat.
func Preprocess(img gocv.Mat, cfg PreprocessConfig) gocv.Mat {
	// 1. Upscale with cubic interpolation, at least 2x.
	scale := cfg.TargetWidth / img.Cols()
	if scale < 2 {
		scale = 2
	}
	scaled := gocv.NewMat()
	gocv.Resize(img, &scaled, image.Point{}, float64(scale), float64(scale), gocv.InterpolationCubic)

	// 2. Grayscale.
	gray := gocv.NewMat()
	if scaled.Channels() > 1 {
		gocv.CvtColor(scaled, &gray, gocv.ColorBGRToGray)
	} else {
		scaled.CopyTo(&gray)
	}
	scaled.Close()

	// 3. Local contrast enhancement.
	clahe := gocv.NewCLAHEWithParams(cfg.ClaheClip, image.Pt(cfg.ClaheTile, cfg.ClaheTile))
	enhanced := gocv.NewMat()
	clahe.Apply(gray, &enhanced)
	clahe.Close()
	gray.Close()

	// 4. Edge-preserving noise reduction.
	smooth := gocv.NewMat()
	gocv.BilateralFilter(enhanced, &smooth, cfg.BilateralD, cfg.BilateralSigma, cfg.BilateralSigma)
	enhanced.Close()

	// 5. Mean-based local binarization.
	binary := gocv.NewMat()
	gocv.AdaptiveThreshold(smooth, &binary, 255,
		gocv.AdaptiveThresholdMean, gocv.ThresholdBinary, cfg.ThreshBlock, cfg.ThreshOffset)
	smooth.Close()

	// 6. Polarity normalization: Tesseract expects dark text on a light
	// background, so a majority-dark image gets inverted.
	normalizePolarity(&binary)

	// 7. Close small gaps in broken character strokes.
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(cfg.CloseKernel, cfg.CloseKernel))
	closed := gocv.NewMat()
	gocv.MorphologyEx(binary, &closed, gocv.MorphClose, kernel)
	kernel.Close()
	binary.Close()

	return closed
}

// normalizePolarity inverts bin in place when fewer than half of its pixels
// are foreground (white). An image that already has a light background is
// left untouched.
func normalizePolarity(bin *gocv.Mat) {
	white := gocv.CountNonZero(*bin)
	total := bin.Rows() * bin.Cols()
	if white < total/2 {
		gocv.BitwiseNot(*bin, bin)
	}
}

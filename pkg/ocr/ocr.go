package ocr

import (
	"fmt"
	"log"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// ExtractorConfig controls the OCR invocation and the plate grammar.
type ExtractorConfig struct {
	// Whitelist restricts recognition to these characters.
	Whitelist string
	// SingleLine switches page segmentation from a single uniform block
	// to a single text line.
	SingleLine bool
	// Pattern is the plate grammar searched for in the cleaned OCR
	// output. Empty disables the grammar filter and returns the cleaned
	// text as-is.
	Pattern string
}

func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Whitelist: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
		Pattern:   DefaultPlatePattern,
	}
}

// ExtractPlateFromImage preprocesses the image at path and runs whitelisted
// OCR over it, returning the first grammar match. Returns ErrNoPlate when
// the output contains no valid plate; that is an expected outcome, not a
// failure.
func ExtractPlateFromImage(path string, pre PreprocessConfig, cfg ExtractorConfig) (string, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		return "", fmt.Errorf("read image %s", path)
	}
	defer img.Close()

	bin := Preprocess(img, pre)
	defer bin.Close()
	return ExtractPlate(bin, cfg)
}

// ExtractPlate runs OCR over an already preprocessed image.
func ExtractPlate(bin gocv.Mat, cfg ExtractorConfig) (string, error) {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, bin)
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	defer buf.Close()

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	if err := client.SetWhitelist(cfg.Whitelist); err != nil {
		return "", fmt.Errorf("set whitelist: %w", err)
	}
	mode := gosseract.PSM_SINGLE_BLOCK
	if cfg.SingleLine {
		mode = gosseract.PSM_SINGLE_LINE
	}
	if err := client.SetPageSegMode(mode); err != nil {
		return "", fmt.Errorf("set page seg mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	log.Printf("OCR raw output: %q", snippet(text, 120))

	return MatchPlate(text, cfg.Pattern)
}

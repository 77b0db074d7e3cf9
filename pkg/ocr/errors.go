package ocr

import "errors"

// ErrNoPlate is returned when the OCR output contains no substring matching
// the plate grammar.
var ErrNoPlate = errors.New("no plate pattern detected")

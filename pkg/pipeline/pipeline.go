package pipeline

import (
	"errors"
	"log"
	"path/filepath"
	"time"

	"platewatch/pkg/ocr"
	"platewatch/pkg/records"
)

// Runner orchestrates one offline extraction pass: newest stored crop,
// preprocessing, OCR, record append.
type Runner struct {
	PlateDir   string
	Store      *records.Store
	Preprocess ocr.PreprocessConfig
	Extractor  ocr.ExtractorConfig

	now     func() time.Time
	extract func(path string) (string, error)
}

func NewRunner(plateDir string, store *records.Store, pre ocr.PreprocessConfig, ext ocr.ExtractorConfig) *Runner {
	r := &Runner{
		PlateDir:   plateDir,
		Store:      store,
		Preprocess: pre,
		Extractor:  ext,
		now:        time.Now,
	}
	r.extract = func(path string) (string, error) {
		return ocr.ExtractPlateFromImage(path, r.Preprocess, r.Extractor)
	}
	return r
}

// Run processes the most recent stored image once. An empty store, a
// grammar miss, an OCR failure, and record store I/O failures are all
// logged no-ops: the diagnostic is emitted here and the batch run ends
// without propagating.
func (r *Runner) Run() error {
	if err := r.Store.EnsureInitialized(); err != nil {
		log.Printf("record store init: %v", err)
		return nil
	}
	latest, err := LatestImage(r.PlateDir)
	if err != nil {
		log.Printf("scan plates: %v", err)
		return nil
	}
	if latest == "" {
		log.Printf("no images found in %s", r.PlateDir)
		return nil
	}
	log.Printf("latest image: %s", filepath.Base(latest))
	return r.RunFile(latest)
}

// RunFile processes one specific stored image. Extraction failures append
// nothing, and a failing append (for example a malformed existing table)
// is logged without rewriting the store: the record table only ever holds
// validated plates.
func (r *Runner) RunFile(path string) error {
	plate, err := r.extract(path)
	if errors.Is(err, ocr.ErrNoPlate) {
		log.Printf("no valid plate pattern in %s", filepath.Base(path))
		return nil
	}
	if err != nil {
		log.Printf("ocr failed for %s: %v", filepath.Base(path), err)
		return nil
	}

	date, clock := records.Timestamp(r.now())
	rec := records.Record{Date: date, Time: clock, Plate: plate}
	if err := r.Store.Append(rec); err != nil {
		log.Printf("append record for %s: %v", plate, err)
		return nil
	}
	log.Printf("plate recorded: %s", plate)
	return nil
}

package main

import (
	"flag"
	"log"

	"platewatch/pkg/ocr"
	"platewatch/pkg/pipeline"
	"platewatch/pkg/records"
)

func main() {
	plates := flag.String("plates", "plates", "directory of saved plate crops")
	out := flag.String("out", "number_plates.csv", "CSV record log")
	pattern := flag.String("pattern", ocr.DefaultPlatePattern, "plate grammar regexp (empty disables the filter)")
	singleLine := flag.Bool("single-line", false, "use single-line page segmentation")
	flag.Parse()

	ext := ocr.DefaultExtractorConfig()
	ext.Pattern = *pattern
	ext.SingleLine = *singleLine

	runner := pipeline.NewRunner(*plates, records.NewStore(*out), ocr.DefaultPreprocessConfig(), ext)
	if err := runner.Run(); err != nil {
		log.Fatalf("extract: %v", err)
	}
}

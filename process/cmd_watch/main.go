package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"platewatch/pkg/ocr"
	"platewatch/pkg/pipeline"
	"platewatch/pkg/records"
)

func main() {
	plates := flag.String("plates", "plates", "directory of saved plate crops")
	out := flag.String("out", "number_plates.csv", "CSV record log")
	flag.Parse()

	runner := pipeline.NewRunner(*plates, records.NewStore(*out),
		ocr.DefaultPreprocessConfig(), ocr.DefaultExtractorConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := runner.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("watch: %v", err)
	}
}

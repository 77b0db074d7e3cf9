package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"platewatch/pkg/capture"
	"platewatch/pkg/pipeline"
	"platewatch/pkg/records"

	"github.com/gin-gonic/gin"
)

func main() {
	// Auto-load ./.env if present before reading vars.
	loadDotEnv()
	cfg := loadConfig()

	cmd := "capture"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "capture":
		runCapture(cfg)
	case "extract":
		runExtract(cfg)
	case "watch":
		runWatch(cfg)
	case "serve":
		runServe(cfg)
	case "export":
		runExport(cfg)
	default:
		fmt.Fprintln(os.Stderr, "usage: platewatch [capture|extract|watch|serve|export]")
		os.Exit(2)
	}
}

// runCapture starts the live detection loop. A camera that cannot be opened
// aborts the session; a feed that ends mid-session stops it normally.
func runCapture(cfg Config) {
	source, err := capture.OpenFrameSource(cfg.CameraIndex, cfg.FrameWidth, cfg.FrameHeight)
	if err != nil {
		log.Fatalf("camera unavailable: %v", err)
	}
	defer source.Close()

	detector, err := capture.NewPlateDetector(cfg.Detector())
	if err != nil {
		log.Fatalf("detector: %v", err)
	}
	defer detector.Close()

	store, err := capture.OpenImageStore(cfg.PlateDir)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	if err := capture.NewCaptureLoop(source, detector, store).Run(); err != nil {
		log.Fatalf("capture: %v", err)
	}
}

func newRunner(cfg Config) *pipeline.Runner {
	store := records.NewStore(cfg.RecordFile)
	return pipeline.NewRunner(cfg.PlateDir, store, cfg.Preprocess(), cfg.Extractor())
}

// runExtract performs one offline OCR pass over the newest stored crop.
func runExtract(cfg Config) {
	if err := newRunner(cfg).Run(); err != nil {
		log.Fatalf("extract: %v", err)
	}
}

// runWatch keeps the extraction pipeline running against every new crop
// until interrupted.
func runWatch(cfg Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRunner(cfg).Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("watch: %v", err)
	}
}

// runServe exposes the read-only review API over the record log and the
// stored crops.
func runServe(cfg Config) {
	r := gin.Default()
	setupRoutes(r, cfg)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// runExport mirrors the CSV record log into Postgres for reporting.
func runExport(cfg Config) {
	db, err := initDB()
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	n, err := exportRecords(db, records.NewStore(cfg.RecordFile))
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("export complete: %d new rows", n)
}

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"platewatch/pkg/capture"
	"platewatch/pkg/ocr"
)

// Config carries every path and tuning knob the components need, resolved
// once at startup from the environment and injected at construction.
type Config struct {
	PlateDir     string // directory of saved plate crops
	RecordFile   string // CSV record log
	CascadeModel string // pretrained Haar cascade XML
	CameraIndex  int
	FrameWidth   int
	FrameHeight  int
	MinArea      int    // minimum detection area in px²
	PlatePattern string // plate grammar regexp; empty disables the filter
	SingleLine   bool   // OCR page segmentation: single line instead of block
	ServerAddr   string // review API listen address
}

func loadConfig() Config {
	return Config{
		PlateDir:     envOr("PLATE_DIR", "plates"),
		RecordFile:   envOr("RECORD_FILE", "number_plates.csv"),
		CascadeModel: envOr("CASCADE_MODEL", "model/haarcascade_russian_plate_number.xml"),
		CameraIndex:  envInt("CAMERA_INDEX", 0),
		FrameWidth:   envInt("FRAME_WIDTH", 640),
		FrameHeight:  envInt("FRAME_HEIGHT", 480),
		MinArea:      envInt("MIN_AREA", 500),
		PlatePattern: envOr("PLATE_PATTERN", ocr.DefaultPlatePattern),
		SingleLine:   envBool("OCR_SINGLE_LINE", false),
		ServerAddr:   envOr("SERVER_ADDR", "127.0.0.1:8081"),
	}
}

func (c Config) Detector() capture.DetectorConfig {
	d := capture.DefaultDetectorConfig(c.CascadeModel)
	d.MinArea = c.MinArea
	return d
}

func (c Config) Preprocess() ocr.PreprocessConfig {
	return ocr.DefaultPreprocessConfig()
}

func (c Config) Extractor() ocr.ExtractorConfig {
	e := ocr.DefaultExtractorConfig()
	e.Pattern = c.PlatePattern
	e.SingleLine = c.SingleLine
	return e
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		lv := strings.ToLower(v)
		return lv == "1" || lv == "true" || lv == "yes"
	}
	return fallback
}

// loadDotEnv loads key=value pairs from a local .env file into the
// environment without overwriting variables that are already set. Lines
// starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}

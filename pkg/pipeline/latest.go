package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// imageExtensions covers what the capture stage produces plus common
// hand-dropped formats.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
}

// LatestImage returns the most recently written image in dir, or "" when
// the directory holds no images, which is a normal outcome for a fresh
// store. Selection is by file modification time: stored crops are immutable
// once written, so mtime matches creation order. Filenames and sequence
// numbers are deliberately not consulted.
func LatestImage(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}

	var best string
	var bestTime time.Time
	for _, e := range entries {
		if e.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestTime) {
			best = filepath.Join(dir, e.Name())
			bestTime = info.ModTime()
		}
	}
	return best, nil
}

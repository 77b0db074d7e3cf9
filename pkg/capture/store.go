package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gocv.io/x/gocv"
)

var plateName = regexp.MustCompile(`^plate_([0-9]+)\.jpg$`)

// ImageStore is an append-only directory of plate crops named
// plate_<n>.jpg. The next sequence number is derived from the files already
// present, so a restarted session never overwrites earlier captures.
type ImageStore struct {
	dir  string
	next int
}

// OpenImageStore creates the directory if needed and positions the
// sequence counter after the highest existing plate number.
func OpenImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create plate dir %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan plate dir %s: %w", dir, err)
	}
	next := 0
	for _, e := range entries {
		m := plateName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= next {
			next = n + 1
		}
	}
	return &ImageStore{dir: dir, next: next}, nil
}

// Save writes the crop as a JPEG under the next sequence number and
// returns the written path. Stored images are never rewritten.
func (s *ImageStore) Save(crop gocv.Mat) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("plate_%d.jpg", s.next))
	if ok := gocv.IMWrite(path, crop); !ok {
		return "", fmt.Errorf("write %s", path)
	}
	s.next++
	return path, nil
}

// NextSequence reports the sequence number the next save will use.
func (s *ImageStore) NextSequence() int {
	return s.next
}

func (s *ImageStore) Dir() string {
	return s.dir
}

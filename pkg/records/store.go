package records

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

var header = []string{"Date", "Time", "Plate Number"}

// Record is one validated plate observation.
type Record struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Time  string `json:"time"`  // HH:MM:SS
	Plate string `json:"plate"`
}

// Timestamp formats t into a record's date and time fields.
func Timestamp(t time.Time) (date, clock string) {
	return t.Format("2006-01-02"), t.Format("15:04:05")
}

// Store is an append-only CSV table of plate observations. Every append
// reads the whole file and rewrites it with one extra row. There is no
// locking: the store assumes a single writer at a time.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized creates the store with a header-only table if it does
// not exist yet. An existing store is left untouched, so repeated calls
// are safe.
func (s *Store) EnsureInitialized() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}
	return s.write(nil)
}

// Append adds one row to the table. Rows are never updated or deleted, so
// file order is chronological by construction.
func (s *Store) Append(rec Record) error {
	rows, err := s.All()
	if err != nil {
		return err
	}
	return s.write(append(rows, rec))
}

// All returns the data rows in append order. A missing file reads as an
// empty table.
func (s *Store) All() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var out []Record
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d fields, want %d", s.path, i+1, len(row), len(header))
		}
		out = append(out, Record{Date: row[0], Time: row[1], Plate: row[2]})
	}
	return out, nil
}

func (s *Store) write(rows []Record) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Date, r.Time, r.Plate}); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	return f.Close()
}

package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smazzone/lumiton-agenda/internal/event"
	"github.com/smazzone/lumiton-agenda/internal/logger"
)

// CombinedFile is the file name of the all-venues dataset.
const CombinedFile = "all_events.csv"

// Storage handles persistence of screening datasets
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// CombinedPath returns the path of the combined dataset file.
func (s *Storage) CombinedPath() string {
	return filepath.Join(s.dataDir, CombinedFile)
}

// VenuePath returns the dataset path for one canonical venue.
func (s *Storage) VenuePath(venue string) string {
	return filepath.Join(s.dataDir, event.VenueSlug(venue)+".csv")
}

// Load reads a dataset from path. A missing file yields an empty dataset,
// as does an unreadable or malformed one (logged as a warning), so a
// damaged store never blocks a scrape run. Rows missing a title or venue
// are skipped.
func (s *Storage) Load(path string) *event.Dataset {
	ds := event.NewDataset()

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not open dataset file", logger.Fields{
				"path":  path,
				"error": err.Error(),
			})
		}
		return ds
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		logger.Warn("could not parse dataset file", logger.Fields{
			"path":  path,
			"error": err.Error(),
		})
		return ds
	}
	if len(records) == 0 {
		return ds
	}

	// Map columns by header name so field order changes stay readable.
	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, row := range records[1:] {
		evt := event.Event{
			Title:       field(row, "title"),
			Date:        field(row, "date"),
			Time:        field(row, "time"),
			Venue:       field(row, "venue"),
			URL:         field(row, "url"),
			Description: field(row, "description"),
		}
		if !evt.Valid() {
			logger.Warn("skipping stored row without title or venue", logger.Fields{
				"path": path,
			})
			continue
		}
		ds.Add(evt)
	}

	return ds
}

// Save writes ds to path atomically: records land in a temp file next to
// the target, which is then renamed over it. Output is UTF-8 with LF-only
// line endings and the fixed header row.
func (s *Storage) Save(path string, ds *event.Dataset) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(event.Fields); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, evt := range ds.Events() {
		if err := w.Write(evt.Record()); err != nil {
			tmp.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing records: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing dataset file: %w", err)
	}
	return nil
}

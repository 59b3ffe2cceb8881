package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/pfrederiksen/nba-stats/internal/season"
	"github.com/pfrederiksen/nba-stats/internal/table"
)

var (
	ErrNotCached  = fmt.Errorf("stats not cached: %w", os.ErrNotExist)
	ErrEmptyTable = errors.New("refusing to cache a table without rows")
)

// Storage handles persistence of per-season stats tables as CSV files
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	if dataDir == "" {
		dataDir = "."
	}

	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// FileName returns the cache file name for a season
func FileName(s season.Season) string {
	return s.String() + "_nba_stats.csv"
}

// Path returns the full path of a season's cache file
func (s *Storage) Path(sn season.Season) string {
	return filepath.Join(s.dataDir, FileName(sn))
}

// Exists reports whether a season is already cached
func (s *Storage) Exists(sn season.Season) bool {
	info, err := os.Stat(s.Path(sn))
	return err == nil && !info.IsDir()
}

// Save writes a table to the season's cache file, header first, without an index column.
// The file appears only once it is completely written.
func (s *Storage) Save(t *table.Table, sn season.Season) error {
	if t.Len() == 0 {
		return ErrEmptyTable
	}

	df := t.Frame()
	if df.Err != nil {
		return fmt.Errorf("encoding table: %w", df.Err)
	}

	f, err := os.CreateTemp(s.dataDir, "."+FileName(sn)+".*")
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	tmp := f.Name()

	if err := df.WriteCSV(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing cache file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing cache file: %w", err)
	}

	if err := os.Rename(tmp, s.Path(sn)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("moving cache file into place: %w", err)
	}

	return nil
}

// Load reads a season's cache file. A missing file yields ErrNotCached.
func (s *Storage) Load(sn season.Season) (*table.Table, error) {
	f, err := os.Open(s.Path(sn))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotCached, FileName(sn))
		}
		return nil, fmt.Errorf("opening cache file: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, table.LoadOptions...)
	t, err := table.FromFrame(df)
	if err != nil {
		return nil, fmt.Errorf("parsing cache file: %w", err)
	}

	return t, nil
}

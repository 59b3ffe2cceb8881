package pipeline

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/nba-stats/internal/logger"
	"github.com/pfrederiksen/nba-stats/internal/season"
	"github.com/pfrederiksen/nba-stats/internal/storage"
	"github.com/pfrederiksen/nba-stats/internal/table"
)

// Source tells where a season's table came from on this run
type Source string

const (
	SourceCache   Source = "cache"
	SourceNetwork Source = "network"
)

// Fetcher retrieves a raw stats table for a season
type Fetcher interface {
	FetchTable(s season.Season) (*table.Table, error)
}

// Result describes how Ensure satisfied a season
type Result struct {
	Season season.Season `json:"season"`
	Source Source        `json:"source"`
	Path   string        `json:"path"`
	Rows   int           `json:"rows,omitempty"` // rows written, network source only
}

// Loader makes seasons available in the cache, fetching only what is missing.
// A Loader without a Fetcher works offline.
type Loader struct {
	store   *storage.Storage
	fetcher Fetcher
	refresh bool
}

// New creates a Loader. Pass a nil fetcher for offline use.
func New(store *storage.Storage, fetcher Fetcher) *Loader {
	return &Loader{
		store:   store,
		fetcher: fetcher,
	}
}

// WithRefresh makes Ensure re-fetch seasons even when they are cached
func (l *Loader) WithRefresh(refresh bool) *Loader {
	l.refresh = refresh
	return l
}

// Ensure guarantees the season's cache file exists. A cached season never triggers a request.
func (l *Loader) Ensure(s season.Season) (*Result, error) {
	result := &Result{
		Season: s,
		Path:   l.store.Path(s),
	}

	if l.store.Exists(s) && !(l.refresh && l.fetcher != nil) {
		logger.IncrCounter("cache.hit")
		logger.Debug("Using cached stats", logger.Fields{"season": int(s), "path": result.Path})
		result.Source = SourceCache
		return result, nil
	}
	logger.IncrCounter("cache.miss")

	if l.fetcher == nil {
		return nil, fmt.Errorf("%w: %s (offline)", storage.ErrNotCached, storage.FileName(s))
	}

	start := time.Now()
	raw, err := l.fetcher.FetchTable(s)
	logger.RecordTiming("fetch.duration", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetching season %d: %w", int(s), err)
	}

	clean := table.Normalize(raw)
	logger.Info("Fetched stats", logger.Fields{
		"season":   int(s),
		"raw_rows": raw.Len(),
		"rows":     clean.Len(),
		"columns":  len(clean.Columns()),
	})

	if err := l.store.Save(clean, s); err != nil {
		return nil, fmt.Errorf("saving season %d: %w", int(s), err)
	}

	result.Source = SourceNetwork
	result.Rows = clean.Len()
	return result, nil
}

// Load reads a season from the cache
func (l *Loader) Load(s season.Season) (*table.Table, error) {
	t, err := l.store.Load(s)
	if err != nil {
		return nil, err
	}
	logger.SetGauge("table.rows", float64(t.Len()))
	return t, nil
}

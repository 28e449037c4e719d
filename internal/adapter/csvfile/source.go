package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"adkpi/internal/config"
	"adkpi/internal/core/domain"
)

// Source implements port.DatasetSource over the files of a catalog.
// Cleaned datasets are cached per instance and reloaded when the file's
// size or modification time changes. Returned datasets are shared and must
// be treated as read-only.
type Source struct {
	logger *slog.Logger

	mu      sync.Mutex
	catalog *config.Catalog
	cache   map[string]cachedDataset
}

type cachedDataset struct {
	modTime time.Time
	size    int64
	dataset *domain.Dataset
}

// NewSource returns a source reading the files listed in catalog.
func NewSource(catalog *config.Catalog, logger *slog.Logger) *Source {
	return &Source{
		catalog: catalog,
		logger:  logger,
		cache:   make(map[string]cachedDataset),
	}
}

// SetCatalog replaces the catalog and drops every cached dataset.
func (s *Source) SetCatalog(catalog *config.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
	s.cache = make(map[string]cachedDataset)
}

func (s *Source) currentCatalog() *config.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// List returns the catalog entries.
func (s *Source) List(_ context.Context) ([]domain.DatasetInfo, error) {
	cat := s.currentCatalog()
	out := make([]domain.DatasetInfo, 0, len(cat.Datasets))
	for _, d := range cat.Datasets {
		out = append(out, info(d))
	}
	return out, nil
}

// Load reads and cleans the dataset with the given id.
func (s *Source) Load(ctx context.Context, id string) (*domain.Dataset, error) {
	entry, ok := s.currentCatalog().Dataset(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDataset, id)
	}
	schema, err := SchemaByName(entry.Schema)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", id, err)
	}
	st, err := os.Stat(entry.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, entry.Path)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	c, hit := s.cache[id]
	s.mu.Unlock()
	if hit && c.modTime.Equal(st.ModTime()) && c.size == st.Size() {
		return c.dataset, nil
	}

	t, err := ReadFile(ctx, entry.Path)
	if err != nil {
		return nil, err
	}
	ds := LoadTable(t, schema, info(entry))
	for _, w := range ds.Warnings {
		s.logger.Warn("dataset column missing",
			slog.String("dataset", id), slog.String("column", w.Column), slog.String("effect", w.Message))
	}
	s.logger.Info("dataset loaded",
		slog.String("dataset", id),
		slog.Int("original_rows", ds.Cleaning.OriginalRows),
		slog.Int("dropped_rows", ds.Cleaning.DroppedRows),
		slog.Float64("dropped_spend", ds.Cleaning.DroppedSpend))

	s.mu.Lock()
	s.cache[id] = cachedDataset{modTime: st.ModTime(), size: st.Size(), dataset: ds}
	s.mu.Unlock()
	return ds, nil
}

// LoadSales reads the sales file of a period. A period without a sales
// file yields no rows.
func (s *Source) LoadSales(ctx context.Context, period string) ([]domain.SalesRecord, error) {
	path, ok := s.currentCatalog().SalesPath(period)
	if !ok {
		return []domain.SalesRecord{}, nil
	}
	t, err := ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	sales, err := salesRecords(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sales, nil
}

// LoadTable binds, cleans and converts a raw table.
func LoadTable(t *Table, schema Schema, meta domain.DatasetInfo) *domain.Dataset {
	b := Bind(t, schema, meta.ID)
	cleaned, stats := b.Clean(t)
	return &domain.Dataset{
		DatasetInfo: meta,
		Records:     b.Records(cleaned),
		Cleaning:    stats,
		Warnings:    b.Warnings,
	}
}

func info(d config.DatasetEntry) domain.DatasetInfo {
	return domain.DatasetInfo{
		ID:       d.ID,
		Title:    d.Title,
		Platform: d.Platform,
		Period:   d.Period,
		Path:     d.Path,
		Schema:   d.Schema,
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog lists the exports the dashboard knows about and the sales files
// used by the funnel join.
type Catalog struct {
	Datasets []DatasetEntry `yaml:"datasets"`
	Sales    []SalesEntry   `yaml:"sales"`
}

// DatasetEntry describes one export. Schema names the column layout of
// the file: "ad_set" or "campaign".
type DatasetEntry struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Platform string `yaml:"platform"`
	Period   string `yaml:"period"`
	Path     string `yaml:"path"`
	Schema   string `yaml:"schema"`
}

// SalesEntry points at the sales export of a period.
type SalesEntry struct {
	Period string `yaml:"period"`
	Path   string `yaml:"path"`
}

// LoadCatalog parses the YAML catalog at path. Relative file paths are
// resolved against dataDir, or against the catalog directory when dataDir
// is empty.
func LoadCatalog(path, dataDir string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cat Catalog
	if err = yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if dataDir == "" {
		dataDir = filepath.Dir(path)
	}
	if err = cat.normalize(dataDir); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &cat, nil
}

func (c *Catalog) normalize(dataDir string) error {
	ids := make(map[string]bool, len(c.Datasets))
	for i := range c.Datasets {
		d := &c.Datasets[i]
		d.ID = strings.TrimSpace(d.ID)
		if d.ID == "" {
			return fmt.Errorf("dataset #%d has no id", i+1)
		}
		if ids[d.ID] {
			return fmt.Errorf("duplicate dataset id %q", d.ID)
		}
		ids[d.ID] = true
		if d.Path == "" {
			return fmt.Errorf("dataset %q has no path", d.ID)
		}
		if d.Schema == "" {
			d.Schema = "ad_set"
		}
		if d.Title == "" {
			d.Title = d.ID
		}
		d.Path = resolve(dataDir, d.Path)
	}
	periods := make(map[string]bool, len(c.Sales))
	for i := range c.Sales {
		s := &c.Sales[i]
		if s.Period == "" || s.Path == "" {
			return errors.New("sales entries need a period and a path")
		}
		if periods[s.Period] {
			return fmt.Errorf("duplicate sales file for period %q", s.Period)
		}
		periods[s.Period] = true
		s.Path = resolve(dataDir, s.Path)
	}
	return nil
}

// Dataset returns the entry with the given id.
func (c *Catalog) Dataset(id string) (DatasetEntry, bool) {
	for _, d := range c.Datasets {
		if d.ID == id {
			return d, true
		}
	}
	return DatasetEntry{}, false
}

// Period returns the entries of a period in catalog order.
func (c *Catalog) Period(period string) []DatasetEntry {
	var out []DatasetEntry
	for _, d := range c.Datasets {
		if d.Period == period {
			out = append(out, d)
		}
	}
	return out
}

// SalesPath returns the sales file of a period, if any.
func (c *Catalog) SalesPath(period string) (string, bool) {
	for _, s := range c.Sales {
		if s.Period == period {
			return s.Path, true
		}
	}
	return "", false
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

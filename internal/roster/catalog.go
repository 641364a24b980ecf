package roster

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownWorker = errors.New("unknown worker")
	ErrEmptyCatalog  = errors.New("worker catalog is empty")
)

// Worker is one pickable entry of the catalog.
type Worker struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Catalog is the fixed, ordered list of workers offered by the picker.
type Catalog []Worker

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Workers []Worker `yaml:"workers"`
}

// DefaultCatalog returns the built-in sample workers.
func DefaultCatalog() Catalog {
	c := make(Catalog, 6)
	for i := range c {
		c[i] = Worker{
			ID:    fmt.Sprintf("sample-%d", i+1),
			Label: fmt.Sprintf("Sample %d", i+1),
		}
	}
	return c
}

// Find looks a worker up by ID, then by label (case-insensitive).
func (c Catalog) Find(key string) (Worker, error) {
	key = strings.TrimSpace(key)
	for _, w := range c {
		if w.ID == key {
			return w, nil
		}
	}
	for _, w := range c {
		if strings.EqualFold(w.Label, key) {
			return w, nil
		}
	}
	return Worker{}, fmt.Errorf("%w %q", ErrUnknownWorker, key)
}

// Labels returns the worker labels in catalog order.
func (c Catalog) Labels() []string {
	labels := make([]string, len(c))
	for i, w := range c {
		labels[i] = w.Label
	}
	return labels
}

// ParseCatalog decodes a YAML catalog. Workers without an ID are rejected;
// a missing label falls back to the ID.
func ParseCatalog(data []byte) (Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(f.Workers) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(f.Workers))
	c := make(Catalog, 0, len(f.Workers))
	for i, w := range f.Workers {
		w.ID = strings.TrimSpace(w.ID)
		w.Label = strings.TrimSpace(w.Label)
		if w.ID == "" {
			return nil, fmt.Errorf("worker %d: missing id", i+1)
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("worker %d: duplicate id %q", i+1, w.ID)
		}
		seen[w.ID] = true
		if w.Label == "" {
			w.Label = w.ID
		}
		c = append(c, w)
	}
	return c, nil
}

// LoadCatalog reads a catalog file. An empty path yields the default catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return ParseCatalog(data)
}

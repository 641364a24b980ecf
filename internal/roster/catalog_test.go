package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	require.Len(t, c, 6)
	assert.Equal(t, Worker{ID: "sample-1", Label: "Sample 1"}, c[0])
	assert.Equal(t, Worker{ID: "sample-6", Label: "Sample 6"}, c[5])
	assert.Equal(t, "Sample 3", c.Labels()[2])
}

func TestCatalogFind(t *testing.T) {
	c := DefaultCatalog()

	t.Run("by id", func(t *testing.T) {
		w, err := c.Find("sample-2")
		require.NoError(t, err)
		assert.Equal(t, "Sample 2", w.Label)
	})

	t.Run("by label case-insensitive", func(t *testing.T) {
		w, err := c.Find("sample 4")
		require.NoError(t, err)
		assert.Equal(t, "sample-4", w.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := c.Find("nobody")
		assert.ErrorIs(t, err, ErrUnknownWorker)
		assert.Contains(t, err.Error(), "nobody")
	})
}

func TestParseCatalog(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		data := []byte(`
workers:
  - id: ravi
    label: Ravi Kumar
  - id: meena
`)
		c, err := ParseCatalog(data)
		require.NoError(t, err)
		require.Len(t, c, 2)
		assert.Equal(t, Worker{ID: "ravi", Label: "Ravi Kumar"}, c[0])
		assert.Equal(t, Worker{ID: "meena", Label: "meena"}, c[1])
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseCatalog([]byte("workers: []\n"))
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ParseCatalog([]byte("workers:\n  - label: Nobody\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing id")
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := ParseCatalog([]byte("workers:\n  - id: a\n  - id: a\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate id")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseCatalog([]byte("workers: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing catalog")
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		c, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog(), c)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "workers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers:\n  - id: x\n    label: X\n"), 0644))

		c, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, Catalog{{ID: "x", Label: "X"}}, c)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading catalog")
	})
}

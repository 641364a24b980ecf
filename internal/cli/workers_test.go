package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/sss/roster/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWorkers(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	require.NoError(t, runWorkers(cmd, roster.DefaultCatalog(), false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "ID        LABEL", lines[0])
	assert.Equal(t, "sample-1  Sample 1", lines[1])
	assert.Equal(t, "sample-6  Sample 6", lines[6])
}

func TestRunWorkers_WidensToLongestID(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	catalog := roster.Catalog{{ID: "ravi", Label: "Ravi Kumar"}, {ID: "mason-anil", Label: "Anil"}}
	require.NoError(t, runWorkers(cmd, catalog, false))

	assert.Contains(t, buf.String(), "ravi        Ravi Kumar\n")
	assert.Contains(t, buf.String(), "mason-anil  Anil\n")
}

func TestRunWorkers_IDsOnly(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	require.NoError(t, runWorkers(cmd, roster.DefaultCatalog(), true))

	assert.Equal(t, "sample-1\nsample-2\nsample-3\nsample-4\nsample-5\nsample-6\n", buf.String())
}

func TestWorkersCommandWithCatalogFile(t *testing.T) {
	path := writeCatalog(t, "workers:\n  - id: ravi\n    label: Ravi\n")
	t.Setenv("ROSTER_LOG_FILE", "")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"workers", "--catalog", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "ravi  Ravi")
	assert.NotContains(t, buf.String(), "sample-1")
}

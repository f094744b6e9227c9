package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSidecar(t *testing.T, dir, content string) string {
	t.Helper()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("State\nCO\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.yaml"), []byte(content), 0o644))
	return csvPath
}

func TestLoadSidecar(t *testing.T) {
	t.Run("scalar values", func(t *testing.T) {
		csvPath := writeSidecar(t, t.TempDir(), "title: PLACES health data\nyear: 2021\n")

		metadata, err := LoadSidecar(csvPath)
		require.NoError(t, err)

		title, ok := metadata.Get("title")
		require.True(t, ok)
		assert.Equal(t, "PLACES health data", title)

		year, ok := metadata.Get("year")
		require.True(t, ok)
		assert.Equal(t, "2021", year)
	})

	t.Run("key order preserved", func(t *testing.T) {
		csvPath := writeSidecar(t, t.TempDir(), "zebra: z\nalpha: a\nmiddle: m\n")

		metadata, err := LoadSidecar(csvPath)
		require.NoError(t, err)

		var keys []string
		for _, f := range metadata.Fields() {
			keys = append(keys, f.Key)
		}
		assert.Equal(t, []string{"zebra", "alpha", "middle"}, keys)
	})

	t.Run("nested values flattened", func(t *testing.T) {
		csvPath := writeSidecar(t, t.TempDir(), "columns:\n  - State\n  - Measure\n")

		metadata, err := LoadSidecar(csvPath)
		require.NoError(t, err)

		columns, ok := metadata.Get("columns")
		require.True(t, ok)
		assert.Contains(t, columns, "State")
		assert.Contains(t, columns, "Measure")
	})

	t.Run("missing sidecar", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := filepath.Join(dir, "data.csv")
		require.NoError(t, os.WriteFile(csvPath, []byte("State\nCO\n"), 0o644))

		_, err := LoadSidecar(csvPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoSidecar)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		csvPath := writeSidecar(t, t.TempDir(), "title: [unclosed\n")

		_, err := LoadSidecar(csvPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSidecarUnreadable)
	})

	t.Run("non mapping top level", func(t *testing.T) {
		csvPath := writeSidecar(t, t.TempDir(), "- just\n- a\n- list\n")

		_, err := LoadSidecar(csvPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSidecarUnreadable)
	})

	t.Run("empty descriptor", func(t *testing.T) {
		csvPath := writeSidecar(t, t.TempDir(), "")

		metadata, err := LoadSidecar(csvPath)
		require.NoError(t, err)
		assert.Equal(t, 0, metadata.Len())
	})
}

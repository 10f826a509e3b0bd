package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths_ExplicitRoot(t *testing.T) {
	root := t.TempDir()

	paths, err := GetPaths(root)
	require.NoError(t, err)

	assert.Equal(t, root, paths.DataDir)
	assert.Equal(t, filepath.Join(root, "raw"), paths.RawDir)
	assert.Equal(t, filepath.Join(root, "turncated"), paths.TruncatedDir)
}

func TestGetPaths_EnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("FLIGHT_DATA_DIR", root)

	paths, err := GetPaths("")
	require.NoError(t, err)

	assert.Equal(t, root, paths.DataDir)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")

	paths, err := GetPaths(root)
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.RawDir, paths.TruncatedDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "directory %s should exist", dir)
		assert.True(t, info.IsDir())
	}
}

func TestPaths_ArtifactNames(t *testing.T) {
	paths, err := GetPaths(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.TruncatedDir, "flightDate_daily_counts.csv"),
		paths.DailyCountsCSVPath("flightDate"))
	assert.Equal(t, filepath.Join(paths.TruncatedDir, "flightDate_daily_counts.xlsx"),
		paths.DailyCountsXLSXPath("flightDate"))
	assert.Equal(t, filepath.Join(paths.TruncatedDir, "flightDate_2022-01-02.csv"),
		paths.TruncatedCSVPath("flightDate", "2022-01-02"))
	assert.Equal(t, filepath.Join(paths.TruncatedDir, "searchDate_counts.png"),
		paths.CountsPlotPath("searchDate"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(file, []byte("a,b\n"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "absent.csv")))
	assert.False(t, FileExists(dir), "directories are not files")
}

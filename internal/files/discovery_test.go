package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightcli/internal/errors"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("flightDate\n2022-01-01\n"), 0644))
}

func TestResolver_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "custom.csv")
	writeFile(t, src)

	r := NewResolver(filepath.Join(dir, "raw"))
	got, err := r.Resolve(src)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestResolver_ExplicitPathMissing(t *testing.T) {
	r := NewResolver(t.TempDir())

	_, err := r.Resolve(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInputNotFound))
}

func TestResolver_CandidateFound(t *testing.T) {
	rawDir := t.TempDir()
	writeFile(t, filepath.Join(rawDir, "itineraries.csv"))

	r := NewResolver(rawDir)
	got, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rawDir, "itineraries.csv"), got)
}

func TestResolver_CandidateOrder(t *testing.T) {
	rawDir := t.TempDir()
	writeFile(t, filepath.Join(rawDir, "second.csv"))

	r := NewResolver(rawDir, "first.csv", "second.csv")
	got, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rawDir, "second.csv"), got)

	writeFile(t, filepath.Join(rawDir, "first.csv"))
	got, err = r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rawDir, "first.csv"), got, "earlier candidate wins once present")
}

func TestResolver_NoCandidate(t *testing.T) {
	r := NewResolver(t.TempDir())

	_, err := r.Resolve("")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInputNotFound))
	assert.Contains(t, err.Error(), "itineraries.csv")
}

package fetch

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBigCSV(t *testing.T, rows int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("legId,flightDate\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "L%d,2022-01-%02d\n", i, i%28+1)
	}
	path := filepath.Join(t.TempDir(), "full.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func readSample(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteSample_Deterministic(t *testing.T) {
	src := writeBigCSV(t, 500)

	dstA := filepath.Join(t.TempDir(), "a.csv")
	dstB := filepath.Join(t.TempDir(), "b.csv")

	nA, err := WriteSample(src, dstA, 50, 42)
	require.NoError(t, err)
	nB, err := WriteSample(src, dstB, 50, 42)
	require.NoError(t, err)

	assert.Equal(t, 50, nA)
	assert.Equal(t, nA, nB)

	a, err := os.ReadFile(dstA)
	require.NoError(t, err)
	b, err := os.ReadFile(dstB)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must yield a byte-identical sample")
}

func TestWriteSample_SeedChangesSelection(t *testing.T) {
	src := writeBigCSV(t, 500)

	dstA := filepath.Join(t.TempDir(), "a.csv")
	dstB := filepath.Join(t.TempDir(), "b.csv")

	_, err := WriteSample(src, dstA, 50, 42)
	require.NoError(t, err)
	_, err = WriteSample(src, dstB, 50, 7)
	require.NoError(t, err)

	a, err := os.ReadFile(dstA)
	require.NoError(t, err)
	b, err := os.ReadFile(dstB)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestWriteSample_SmallSourceKeepsAllRows(t *testing.T) {
	src := writeBigCSV(t, 10)
	dst := filepath.Join(t.TempDir(), "sample.csv")

	n, err := WriteSample(src, dst, 120000, 42)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	records := readSample(t, dst)
	require.Len(t, records, 11)
	assert.Equal(t, []string{"legId", "flightDate"}, records[0])
	// source order preserved when nothing is evicted
	assert.Equal(t, "L0", records[1][0])
	assert.Equal(t, "L9", records[10][0])
}

func TestWriteSample_HeaderOnly(t *testing.T) {
	src := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(src, []byte("legId,flightDate\n"), 0644))
	dst := filepath.Join(t.TempDir(), "sample.csv")

	n, err := WriteSample(src, dst, 100, 42)
	require.NoError(t, err)
	assert.Zero(t, n)

	records := readSample(t, dst)
	require.Len(t, records, 1)
}

func TestWriteSample_InvalidSize(t *testing.T) {
	src := writeBigCSV(t, 5)

	_, err := WriteSample(src, filepath.Join(t.TempDir(), "s.csv"), 0, 42)
	assert.Error(t, err)
}

func TestWriteSample_RowsComeFromSource(t *testing.T) {
	src := writeBigCSV(t, 200)
	dst := filepath.Join(t.TempDir(), "sample.csv")

	n, err := WriteSample(src, dst, 20, 42)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	records := readSample(t, dst)
	require.Len(t, records, 21)
	for _, rec := range records[1:] {
		assert.True(t, strings.HasPrefix(rec[0], "L"))
		assert.Len(t, rec, 2)
	}
}

package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		options  WriteOptions
		validate func(t *testing.T, path string)
	}{
		{
			name: "basic write with headers",
			options: WriteOptions{
				Headers: []string{"flightDate", "count"},
				Records: [][]string{
					{"2022-01-01", "2"},
					{"2022-01-02", "3"},
				},
			},
			validate: func(t *testing.T, path string) {
				content, err := os.ReadFile(path)
				require.NoError(t, err)

				lines := strings.Split(strings.TrimSpace(string(content)), "\n")
				require.Len(t, lines, 3)
				assert.Equal(t, "flightDate,count", lines[0])
				assert.Equal(t, "2022-01-01,2", lines[1])
				assert.Equal(t, "2022-01-02,3", lines[2])
			},
		},
		{
			name: "BOM prefix",
			options: WriteOptions{
				Headers:   []string{"flightDate", "count"},
				Records:   [][]string{{"2022-01-01", "1"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, path string) {
				content, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(string(content), "\xEF\xBB\xBF"))
			},
		},
		{
			name: "no records writes header only",
			options: WriteOptions{
				Headers: []string{"flightDate", "count"},
			},
			validate: func(t *testing.T, path string) {
				content, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Equal(t, "flightDate,count\n", string(content))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "out.csv")
			require.NoError(t, WriteCSV(path, tt.options))
			tt.validate(t, path)
		})
	}
}

func TestWriteCSV_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(path, WriteOptions{
		Headers: []string{"flightDate", "count"},
		Records: [][]string{{"2022-01-01", "1"}, {"2022-01-02", "2"}},
	}))
	require.NoError(t, WriteCSV(path, WriteOptions{
		Headers: []string{"flightDate", "count"},
		Records: [][]string{{"2022-01-03", "3"}},
	}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2022-01-03,3", lines[1])
}

func TestStreamWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream", "sample.csv")

	w, err := NewStreamWriter(path, []string{"legId", "flightDate"})
	require.NoError(t, err)
	require.NoError(t, w.WriteRecord([]string{"L1", "2022-01-01"}))
	require.NoError(t, w.WriteRecord([]string{"L2", "2022-01-02"}))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"legId", "flightDate"}, records[0])
	assert.Equal(t, []string{"L2", "2022-01-02"}, records[2])
}

func TestStreamWriter_NoBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")

	w, err := NewStreamWriter(path, []string{"a"})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(string(content), "\xEF\xBB\xBF"))
}

package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// lazyWriter creates the output file on the first record written.
// If nothing is ever written, the file never exists.
type lazyWriter struct {
	path   string
	header []string
	file   *os.File
	csv    *csv.Writer
}

func (w *lazyWriter) write(rows Chunk) error {
	if w.file == nil {
		if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		f, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		w.file = f
		w.csv = csv.NewWriter(f)
		if err := w.csv.Write(w.header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, row := range rows {
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	// Flush per chunk to catch disk errors immediately
	w.csv.Flush()
	return w.csv.Error()
}

func (w *lazyWriter) close() error {
	if w.file == nil {
		return nil
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// ExtractDay streams the full CSV in chunks and writes the rows whose
// date-column value string-equals targetDate to dst, preserving source
// row order. The header is written once, when the first matching chunk
// appears; chunks with zero matches produce no write at all, and if no
// chunk ever matches the output file is never created. Returns the
// number of matched rows.
func ExtractDay(src, dst, dateColumn, targetDate string, chunkSize int) (int, error) {
	reader, err := NewChunkReader(src, chunkSize)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	col, err := reader.ColumnIndex(dateColumn)
	if err != nil {
		return 0, err
	}

	out := &lazyWriter{path: dst, header: reader.Header()}
	matched := 0

	for {
		chunk, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.close()
			return matched, fmt.Errorf("extracting %s: %w", src, err)
		}

		var hits Chunk
		for _, row := range chunk {
			if row[col] == targetDate {
				hits = append(hits, row)
			}
		}
		if len(hits) == 0 {
			continue
		}
		if err := out.write(hits); err != nil {
			out.close()
			return matched, err
		}
		matched += len(hits)
	}

	if err := out.close(); err != nil {
		return matched, err
	}
	return matched, nil
}

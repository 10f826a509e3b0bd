package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"flightcli/internal/errors"
)

// Chunk is a bounded-size contiguous batch of rows read in one pass of
// the streaming loop. Memory use is capped by the chunk size, never the
// dataset size.
type Chunk [][]string

// ChunkReader streams a CSV file as a sequence of row chunks. It can
// read all columns or project to a single named column; projection is
// decided at open time so a missing column fails before any rows are
// consumed.
type ChunkReader struct {
	file      *os.File
	csv       *csv.Reader
	header    []string
	column    int // projected column index, -1 for all columns
	chunkSize int
	path      string
}

// NewChunkReader opens a reader over all columns of the file.
func NewChunkReader(path string, chunkSize int) (*ChunkReader, error) {
	return open(path, "", chunkSize)
}

// NewColumnReader opens a reader restricted to a single column. Rows
// yielded by Next contain exactly one field. Returns a COLUMN_NOT_FOUND
// error when the column is absent from the header.
func NewColumnReader(path, column string, chunkSize int) (*ChunkReader, error) {
	return open(path, column, chunkSize)
}

func open(path, column string, chunkSize int) (*ChunkReader, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		f.Close()
		return nil, fmt.Errorf("empty CSV file %s", path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	idx := -1
	if column != "" {
		for i, name := range header {
			if name == column {
				idx = i
				break
			}
		}
		if idx < 0 {
			f.Close()
			return nil, errors.ColumnNotFound(column, path)
		}
	}

	return &ChunkReader{
		file:      f,
		csv:       r,
		header:    header,
		column:    idx,
		chunkSize: chunkSize,
		path:      path,
	}, nil
}

// Header returns the source header row. For a projected reader this is
// still the full source header.
func (r *ChunkReader) Header() []string {
	return r.header
}

// ColumnIndex returns the index of the named column in the header, or a
// COLUMN_NOT_FOUND error.
func (r *ChunkReader) ColumnIndex(column string) (int, error) {
	for i, name := range r.header {
		if name == column {
			return i, nil
		}
	}
	return 0, errors.ColumnNotFound(column, r.path)
}

// Next returns the next chunk of at most chunkSize rows. It returns
// io.EOF once the file is exhausted; a final short chunk is returned
// with a nil error first.
func (r *ChunkReader) Next() (Chunk, error) {
	chunk := make(Chunk, 0, r.chunkSize)
	for len(chunk) < r.chunkSize {
		record, err := r.csv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", r.path, err)
		}
		if r.column >= 0 {
			chunk = append(chunk, []string{record[r.column]})
		} else {
			chunk = append(chunk, record)
		}
	}
	if len(chunk) == 0 {
		return nil, io.EOF
	}
	return chunk, nil
}

// Close releases the underlying file
func (r *ChunkReader) Close() error {
	return r.file.Close()
}

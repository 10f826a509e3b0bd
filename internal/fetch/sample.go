package fetch

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"

	"flightcli/internal/exporter"
)

// WriteSample writes a random sample of at most n data rows from src to
// dst, header preserved. The sample is drawn by reservoir sampling with
// a fixed seed, so the same source, size and seed always produce the
// identical file. When the source has n rows or fewer, all rows are
// kept in source order.
func WriteSample(src, dst string, n int, seed int64) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("sample size must be positive, got %d", n)
	}

	f, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w", src, err)
	}

	rng := rand.New(rand.NewSource(seed))
	reservoir := make([][]string, 0, n)
	seen := 0

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read row of %s: %w", src, err)
		}
		row := make([]string, len(record))
		copy(row, record)

		if len(reservoir) < n {
			reservoir = append(reservoir, row)
		} else if j := rng.Intn(seen + 1); j < n {
			reservoir[j] = row
		}
		seen++
	}

	out, err := exporter.NewStreamWriter(dst, header)
	if err != nil {
		return 0, err
	}
	for _, row := range reservoir {
		if err := out.WriteRecord(row); err != nil {
			out.Close()
			return 0, err
		}
	}
	if err := out.Close(); err != nil {
		return 0, err
	}

	return len(reservoir), nil
}

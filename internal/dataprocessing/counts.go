package dataprocessing

import (
	"fmt"
	"io"
	"sort"
)

// DailyCount is one row of the daily-count table
type DailyCount struct {
	Date  string
	Count int
}

// CountTable maps each distinct date value to its row count, sorted by
// date ascending. It is rebuilt from scratch on every run.
type CountTable []DailyCount

// Total returns the sum of all counts, which equals the number of data
// rows in the source file.
func (t CountTable) Total() int {
	total := 0
	for _, dc := range t {
		total += dc.Count
	}
	return total
}

// Lookup returns the count for a date and whether the date is present
func (t CountTable) Lookup(date string) (int, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].Date >= date })
	if i < len(t) && t[i].Date == date {
		return t[i].Count, true
	}
	return 0, false
}

// ComputeDailyCounts streams the date column of the CSV in chunks of
// chunkSize rows and counts occurrences of each distinct value. The
// result is independent of the chunk size.
func ComputeDailyCounts(path, dateColumn string, chunkSize int) (CountTable, error) {
	reader, err := NewColumnReader(path, dateColumn, chunkSize)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	counts := make(map[string]int)
	for {
		chunk, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("aggregating %s: %w", path, err)
		}
		for _, row := range chunk {
			counts[row[0]]++
		}
	}

	table := make(CountTable, 0, len(counts))
	for date, count := range counts {
		table = append(table, DailyCount{Date: date, Count: count})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Date < table[j].Date })

	return table, nil
}

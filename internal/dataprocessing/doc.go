// Package dataprocessing implements the streaming CSV truncation
// procedure: bounded-memory chunked reads, per-day row counting, middle
// date selection and single-day extraction.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. ChunkReader: yields row batches of a fixed maximum size from a CSV file
// 2. Aggregator: folds the date column over the chunk sequence into a CountTable
// 3. Extractor: re-streams the full file and emits only the target day's rows
//
// # Usage
//
// Counting rows per day:
//
//	table, err := dataprocessing.ComputeDailyCounts("itineraries.csv", "flightDate", 500000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Selecting and extracting the middle day:
//
//	target, err := dataprocessing.MiddleDate(table)
//	...
//	matched, err := dataprocessing.ExtractDay(src, dst, "flightDate", target, 500000)
//
// Date values are raw strings throughout; nothing is ever parsed as a
// temporal type, and row selection is exact string equality.
package dataprocessing

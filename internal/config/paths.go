package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for every file path the toolkit
// reads or writes.
type Paths struct {
	DataDir      string
	RawDir       string
	TruncatedDir string
	LogsDir      string
}

// GetPaths returns the application paths rooted at the given data
// directory. When root is empty the data root defaults to "data" under
// the current working directory, matching the project layout the
// acquisition script populates.
func GetPaths(root string) (*Paths, error) {
	if root == "" {
		if env := os.Getenv("FLIGHT_DATA_DIR"); env != "" {
			root = env
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			root = filepath.Join(wd, "data")
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	return &Paths{
		DataDir:      abs,
		RawDir:       filepath.Join(abs, RawDirName),
		TruncatedDir: filepath.Join(abs, TruncatedDirName),
		LogsDir:      filepath.Join(filepath.Dir(abs), "logs"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.RawDir,
		p.TruncatedDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetRawPath returns the path for a file under the raw data directory
func (p *Paths) GetRawPath(filename string) string {
	return filepath.Join(p.RawDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// DailyCountsCSVPath returns the daily-counts report path for a date column
// (e.g. flightDate_daily_counts.csv)
func (p *Paths) DailyCountsCSVPath(dateColumn string) string {
	return filepath.Join(p.TruncatedDir, fmt.Sprintf("%s_daily_counts.csv", dateColumn))
}

// DailyCountsXLSXPath returns the Excel counterpart of the daily-counts report
func (p *Paths) DailyCountsXLSXPath(dateColumn string) string {
	return filepath.Join(p.TruncatedDir, fmt.Sprintf("%s_daily_counts.xlsx", dateColumn))
}

// TruncatedCSVPath returns the single-day output path
// (e.g. flightDate_2022-01-02.csv)
func (p *Paths) TruncatedCSVPath(dateColumn, targetDate string) string {
	return filepath.Join(p.TruncatedDir, fmt.Sprintf("%s_%s.csv", dateColumn, targetDate))
}

// CountsPlotPath returns the counts plot path (e.g. flightDate_counts.png)
func (p *Paths) CountsPlotPath(dateColumn string) string {
	return filepath.Join(p.TruncatedDir, fmt.Sprintf("%s_counts.png", dateColumn))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"flightcli/internal/dataprocessing"
)

// CountsExporter writes the daily-count table as report artifacts.
type CountsExporter struct {
	dateColumn string
}

// NewCountsExporter creates an exporter for the given date column; the
// column name doubles as the report's first header field.
func NewCountsExporter(dateColumn string) *CountsExporter {
	return &CountsExporter{dateColumn: dateColumn}
}

// WriteCSV writes the table to path with a {dateColumn},count header,
// rows already sorted ascending by date. BOM-prefixed so the report
// opens cleanly in Excel.
func (e *CountsExporter) WriteCSV(path string, table dataprocessing.CountTable) error {
	records := make([][]string, 0, len(table))
	for _, dc := range table {
		records = append(records, []string{dc.Date, strconv.Itoa(dc.Count)})
	}

	return WriteCSV(path, WriteOptions{
		Headers:   []string{e.dateColumn, "count"},
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteWorkbook writes the same report as an Excel workbook with one
// sheet named after the date column.
func (e *CountsExporter) WriteWorkbook(path string, table dataprocessing.CountTable) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Daily Counts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", e.dateColumn); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellValue(sheet, "B1", "count"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, dc := range table {
		row := i + 2
		dateCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		countCell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, dateCell, dc.Date); err != nil {
			return fmt.Errorf("failed to write date for row %d: %w", row, err)
		}
		if err := f.SetCellValue(sheet, countCell, dc.Count); err != nil {
			return fmt.Errorf("failed to write count for row %d: %w", row, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

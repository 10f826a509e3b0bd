// Package plot renders the daily-count distribution as a PNG. The
// capability is optional: callers resolve a Renderer at startup and
// treat a failure to construct one as "plotting unavailable" rather
// than a fatal condition.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"flightcli/internal/dataprocessing"
)

// Renderer renders a daily-count table to an image file.
type Renderer interface {
	RenderCounts(table dataprocessing.CountTable, dateColumn, outPath string) error
}

// gonumRenderer draws the counts as a line over the date index.
type gonumRenderer struct{}

// NewRenderer returns the gonum/plot backed renderer.
func NewRenderer() (Renderer, error) {
	return gonumRenderer{}, nil
}

// RenderCounts plots row counts against the sorted date index and saves
// a PNG at outPath.
func (gonumRenderer) RenderCounts(table dataprocessing.CountTable, dateColumn, outPath string) error {
	if len(table) == 0 {
		return fmt.Errorf("nothing to plot: count table is empty")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Row distribution per %s", dateColumn)
	p.X.Label.Text = dateColumn
	p.Y.Label.Text = "row count"

	pts := make(plotter.XYs, len(table))
	for i, dc := range table {
		pts[i] = plotter.XY{X: float64(i), Y: float64(dc.Count)}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build line plot: %w", err)
	}
	p.Add(plotter.NewGrid(), line)

	// Label the x axis with a handful of dates; the full range does not fit.
	p.NominalX(sparseDateLabels(table)...)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}
	if err := p.Save(1400, 400, outPath); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// sparseDateLabels keeps at most 12 evenly spaced labels, blanking the rest
func sparseDateLabels(table dataprocessing.CountTable) []string {
	labels := make([]string, len(table))
	step := (len(table) + 11) / 12
	for i, dc := range table {
		if i%step == 0 {
			labels[i] = dc.Date
		}
	}
	return labels
}

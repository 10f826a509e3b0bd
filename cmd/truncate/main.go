// Command truncate reduces a large flight-prices CSV to a single
// representative day. It streams the source twice in bounded-memory
// chunks: once to count rows per date, once to extract the rows of the
// selected (middle) date. It also writes the daily-count table as a CSV
// report and, optionally, a plot and an Excel workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"flightcli/internal/config"
	"flightcli/internal/dataprocessing"
	"flightcli/internal/exporter"
	"flightcli/internal/files"
	"flightcli/internal/infrastructure"
	"flightcli/internal/plot"
)

func main() {
	csvPath := flag.String("csv", "", "explicit source CSV path (auto-detect under data/raw if omitted)")
	dateColumn := flag.String("date-column", config.DefaultDateColumn, "date column used for counting and filtering (e.g. searchDate or flightDate)")
	chunkSize := flag.Int("chunksize", config.DefaultChunkSize, "rows per streamed chunk")
	middleDate := flag.String("middle-date", "", "override the auto-selected middle date")
	noPlot := flag.Bool("no-plot", false, "skip the daily distribution plot")
	xlsx := flag.Bool("xlsx", false, "also write the daily counts as an Excel workbook")
	dataDir := flag.String("data-dir", "", "data root directory (defaults to ./data)")
	flag.Parse()

	paths, err := config.GetPaths(*dataDir)
	if err != nil {
		fmt.Printf("Error: Failed to initialize paths: %v\n", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		fmt.Printf("Error: Failed to create required directories: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Warning: Failed to load config, using defaults: %v\n", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("truncate.log"),
			},
		}
	}
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(filepath.Base(cfg.Logging.FilePath))
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize logger, using default: %v\n", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithTraceID(context.Background(), infrastructure.NewTraceID())
	logger = infrastructure.LoggerFromContext(ctx)

	if *chunkSize <= 0 {
		logger.Error("Invalid chunk size", slog.Int("chunksize", *chunkSize))
		fmt.Printf("Error: --chunksize must be positive, got %d\n", *chunkSize)
		os.Exit(1)
	}

	resolver := files.NewResolver(paths.RawDir)
	source, err := resolver.Resolve(*csvPath)
	if err != nil {
		logger.Error("Failed to resolve input CSV", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting truncation",
		slog.String("source", source),
		slog.String("date_column", *dateColumn),
		slog.Int("chunksize", *chunkSize),
		slog.String("output_dir", paths.TruncatedDir))

	fmt.Printf("Resolved input CSV: %s\n", source)
	fmt.Printf("Output directory:   %s\n", paths.TruncatedDir)

	// First pass: per-day row counts over the projected date column.
	table, err := dataprocessing.ComputeDailyCounts(source, *dateColumn, *chunkSize)
	if err != nil {
		logger.Error("Aggregation failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Daily counts computed",
		slog.Int("distinct_dates", len(table)),
		slog.Int("total_rows", table.Total()))

	countsExporter := exporter.NewCountsExporter(*dateColumn)
	countsPath := paths.DailyCountsCSVPath(*dateColumn)
	if err := countsExporter.WriteCSV(countsPath, table); err != nil {
		logger.Error("Failed to write daily counts", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	xlsxPath := ""
	if *xlsx {
		xlsxPath = paths.DailyCountsXLSXPath(*dateColumn)
		if err := countsExporter.WriteWorkbook(xlsxPath, table); err != nil {
			logger.Error("Failed to write counts workbook", slog.String("error", err.Error()))
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	target := *middleDate
	if target == "" {
		target, err = dataprocessing.MiddleDate(table)
		if err != nil {
			logger.Error("Middle date selection failed", slog.String("error", err.Error()))
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	} else if _, ok := table.Lookup(target); !ok {
		// An override is used as-is, but an absent date means the
		// extraction pass cannot match anything.
		logger.Warn("Override date not present in source",
			slog.String("middle_date", target))
	}

	// Second pass: extract the target day's rows, all columns.
	truncatedPath := paths.TruncatedCSVPath(*dateColumn, target)
	matched, err := dataprocessing.ExtractDay(source, truncatedPath, *dateColumn, target, *chunkSize)
	if err != nil {
		logger.Error("Extraction failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Extraction complete",
		slog.String("target_date", target),
		slog.Int("matched_rows", matched))

	plotPath := ""
	if !*noPlot {
		renderer, err := plot.NewRenderer()
		if err != nil {
			logger.Warn("Plot renderer unavailable, skipping plot", slog.String("error", err.Error()))
			fmt.Println("Plot renderer unavailable; skipping plot.")
		} else {
			plotPath = paths.CountsPlotPath(*dateColumn)
			if err := renderer.RenderCounts(table, *dateColumn, plotPath); err != nil {
				logger.Warn("Plot rendering failed, continuing", slog.String("error", err.Error()))
				fmt.Printf("Plot rendering failed (%v); continuing.\n", err)
				plotPath = ""
			}
		}
	}

	fmt.Printf("Middle date:        %s\n", target)
	fmt.Printf("Daily counts saved: %s\n", countsPath)
	if xlsxPath != "" {
		fmt.Printf("Counts workbook:    %s\n", xlsxPath)
	}
	if matched > 0 {
		fmt.Printf("Truncated file:     %s\n", truncatedPath)
	} else {
		fmt.Printf("No rows matched %s; truncated file not created.\n", target)
	}
	if plotPath != "" {
		fmt.Printf("Plot saved:         %s\n", plotPath)
	}
}

// Command fetch downloads the flight-prices dataset file, normalizes it
// through a fallback ladder of parse options and persists the full CSV
// plus a reproducibly-seeded random sample under data/raw.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"flightcli/internal/config"
	"flightcli/internal/fetch"
	"flightcli/internal/infrastructure"
)

func main() {
	dataset := flag.String("dataset", "", "hosted dataset identifier (defaults to config)")
	file := flag.String("file", "", "dataset file to download (defaults to config)")
	dataDir := flag.String("data-dir", "", "data root directory (defaults to ./data)")
	sampleRows := flag.Int("sample-rows", 0, "max rows in the sampled CSV (defaults to config)")
	skipDownload := flag.Bool("skip-download", false, "reuse an already downloaded file, only normalize and sample")
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
				FilePath: paths.GetLogPath("fetch.log"),
			},
			Fetch: config.FetchConfig{
				BaseURL:    config.DefaultDatasetBaseURL,
				Dataset:    config.DefaultDataset,
				File:       config.DefaultDatasetFile,
				Timeout:    config.DefaultFetchTimeout,
				RatePerSec: 2,
				Burst:      1,
				SampleRows: config.SampleRows,
				SampleSeed: config.SampleSeed,
			},
		}
	}
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(filepath.Base(cfg.Logging.FilePath))
	}
	if *dataset != "" {
		cfg.Fetch.Dataset = *dataset
	}
	if *file != "" {
		cfg.Fetch.File = *file
	}
	if *sampleRows > 0 {
		cfg.Fetch.SampleRows = *sampleRows
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize logger, using default: %v\n", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithTraceID(context.Background(), infrastructure.NewTraceID())
	logger = infrastructure.LoggerFromContext(ctx)

	downloadPath := paths.GetRawPath(cfg.Fetch.File)
	if *skipDownload {
		if !config.FileExists(downloadPath) {
			logger.Error("No downloaded file to reuse", slog.String("path", downloadPath))
			fmt.Printf("Error: --skip-download set but %s does not exist\n", downloadPath)
			os.Exit(1)
		}
		logger.Info("Reusing downloaded file", slog.String("path", downloadPath))
	} else {
		client := fetch.NewClient(cfg.Fetch, logger)
		if err := client.DownloadFile(ctx, cfg.Fetch.Dataset, cfg.Fetch.File, downloadPath); err != nil {
			logger.Error("Download failed", slog.String("error", err.Error()))
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	normalizedPath := paths.GetRawPath(config.RawNormalizedName)
	rows, err := fetch.NormalizeWithLadder(downloadPath, normalizedPath, fetch.DefaultLadder(), logger)
	if err != nil {
		logger.Error("Normalization failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	samplePath := paths.GetRawPath(config.RawSampleName)
	sampled, err := fetch.WriteSample(normalizedPath, samplePath, cfg.Fetch.SampleRows, cfg.Fetch.SampleSeed)
	if err != nil {
		logger.Error("Sampling failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Fetch complete",
		slog.String("raw", downloadPath),
		slog.String("normalized", normalizedPath),
		slog.Int("rows", rows),
		slog.String("sample", samplePath),
		slog.Int("sample_rows", sampled))

	fmt.Printf("Downloaded file:  %s\n", downloadPath)
	fmt.Printf("Full CSV saved:   %s (%d rows)\n", normalizedPath, rows)
	fmt.Printf("Sample saved to:  %s\n", samplePath)
	fmt.Printf("Sample size:      %d\n", sampled)
}

// Package fetch acquires the hosted flight-prices dataset: it downloads
// a named file from a named dataset, normalizes it through a fallback
// ladder of parse options, and persists a reproducibly-seeded random
// sample alongside the full file.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"flightcli/internal/config"
	"flightcli/internal/errors"
)

// Client downloads dataset files over HTTP. Requests are paced with a
// rate limiter so repeated runs stay inside the host's request budget.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a download client from the fetch configuration
func NewClient(cfg config.FetchConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
		baseURL:    cfg.BaseURL,
		logger:     logger,
	}
}

// DownloadFile fetches one file of a dataset and writes it to dst. The
// body is streamed to a temp file and renamed into place so a failed
// download never leaves a partial artifact behind.
func (c *Client) DownloadFile(ctx context.Context, dataset, file, dst string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	downloadURL := fmt.Sprintf("%s/datasets/download/%s/%s", c.baseURL, dataset, url.PathEscape(file))
	c.logger.Info("Downloading dataset file",
		slog.String("dataset", dataset),
		slog.String("file", file),
		slog.String("url", downloadURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.DownloadFailed(fmt.Sprintf("request to %s failed", downloadURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.DownloadFailed(
			fmt.Sprintf("unexpected status %s downloading %s from %s", resp.Status, file, dataset), nil)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return errors.DownloadFailed(fmt.Sprintf("writing %s", dst), err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move download into place: %w", err)
	}

	c.logger.Info("Download complete",
		slog.String("path", dst),
		slog.Int64("bytes", written))
	return nil
}

// Package files locates the source CSV for a truncation run.
package files

import (
	"fmt"
	"path/filepath"

	"flightcli/internal/config"
	"flightcli/internal/errors"
)

// Resolver finds the source CSV, either from an explicit path or by
// probing candidate filenames under the raw data directory.
type Resolver struct {
	rawDir     string
	candidates []string
}

// NewResolver creates a resolver probing the given directory. With no
// explicit candidates the default raw-file candidates are used.
func NewResolver(rawDir string, candidates ...string) *Resolver {
	if len(candidates) == 0 {
		candidates = config.CandidateRawFiles
	}
	return &Resolver{rawDir: rawDir, candidates: candidates}
}

// Resolve returns the absolute path of the source CSV. An explicit path
// is verified to exist and returned as-is; otherwise the first existing
// candidate under the raw directory wins. No side effects.
func (r *Resolver) Resolve(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", explicit, err)
		}
		if !config.FileExists(abs) {
			return "", errors.InputNotFound(abs)
		}
		return abs, nil
	}

	for _, name := range r.candidates {
		p := filepath.Join(r.rawDir, name)
		if config.FileExists(p) {
			return p, nil
		}
	}

	return "", errors.NoCandidateFound(r.rawDir, r.candidates)
}

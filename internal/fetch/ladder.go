package fetch

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"flightcli/internal/errors"
	"flightcli/internal/exporter"
)

// Encoding names a source byte encoding for the normalize step
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin-1"
)

// ParseOptions is one rung of the fallback ladder: how to decode and
// how forgiving to be about malformed rows.
type ParseOptions struct {
	Encoding      Encoding
	AutoDelimiter bool
	SkipBadLines  bool
}

func (o ParseOptions) String() string {
	enc := o.Encoding
	if enc == "" {
		enc = EncodingUTF8
	}
	return fmt.Sprintf("encoding=%s auto_delimiter=%t skip_bad_lines=%t", enc, o.AutoDelimiter, o.SkipBadLines)
}

// DefaultLadder returns the parse attempts in fallback order: strict
// UTF-8 first, then Latin-1, then Latin-1 with delimiter sniffing and
// bad-line skipping.
func DefaultLadder() []ParseOptions {
	return []ParseOptions{
		{},
		{Encoding: EncodingLatin1},
		{Encoding: EncodingLatin1, AutoDelimiter: true, SkipBadLines: true},
	}
}

// NormalizeWithLadder tries each rung in order until one parses the
// source; intermediate failures are logged and discarded, and only the
// final attempt's error surfaces when every rung fails. Returns the
// number of data rows written to dst.
func NormalizeWithLadder(src, dst string, ladder []ParseOptions, logger *slog.Logger) (int, error) {
	var lastErr error
	for i, opts := range ladder {
		rows, err := Normalize(src, dst, opts)
		if err == nil {
			logger.Info("Parse attempt succeeded",
				slog.Int("attempt", i+1),
				slog.String("options", opts.String()),
				slog.Int("rows", rows))
			return rows, nil
		}
		logger.Warn("Parse attempt failed",
			slog.Int("attempt", i+1),
			slog.String("options", opts.String()),
			slog.String("error", err.Error()))
		lastErr = err
	}
	return 0, errors.DownloadFailed(fmt.Sprintf("all %d parse attempts failed for %s", len(ladder), src), lastErr)
}

// Normalize re-emits src as comma-delimited UTF-8 CSV at dst using the
// given options. A failed attempt removes any partial output.
func Normalize(src, dst string, opts ParseOptions) (rows int, err error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if opts.Encoding == EncodingLatin1 {
		reader = charmap.ISO8859_1.NewDecoder().Reader(f)
	}

	delim := ','
	if opts.AutoDelimiter {
		delim, err = sniffDelimiter(src, opts.Encoding)
		if err != nil {
			return 0, err
		}
	}

	cr := csv.NewReader(reader)
	cr.Comma = delim
	cr.FieldsPerRecord = -1 // field counts validated below
	cr.LazyQuotes = opts.SkipBadLines

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w", src, err)
	}
	if opts.Encoding != EncodingLatin1 && !recordValidUTF8(header) {
		return 0, fmt.Errorf("header of %s is not valid UTF-8", src)
	}

	out, err := exporter.NewStreamWriter(dst, header)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(dst)
		}
	}()

	for {
		record, readErr := cr.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if opts.SkipBadLines {
				continue
			}
			return rows, fmt.Errorf("failed to parse row of %s: %w", src, readErr)
		}
		if len(record) != len(header) {
			if opts.SkipBadLines {
				continue
			}
			return rows, fmt.Errorf("row %d of %s has %d fields, header has %d",
				rows+2, src, len(record), len(header))
		}
		if opts.Encoding != EncodingLatin1 && !recordValidUTF8(record) {
			return rows, fmt.Errorf("row %d of %s is not valid UTF-8", rows+2, src)
		}
		if writeErr := out.WriteRecord(record); writeErr != nil {
			err = writeErr
			return rows, err
		}
		rows++
	}

	if err = out.Close(); err != nil {
		return rows, err
	}
	return rows, nil
}

// sniffDelimiter picks the delimiter with the most occurrences in the
// first line, defaulting to a comma.
func sniffDelimiter(path string, enc Encoding) (rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return ',', fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if enc == EncodingLatin1 {
		reader = charmap.ISO8859_1.NewDecoder().Reader(f)
	}

	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && err != io.EOF {
		return ',', fmt.Errorf("failed to read first line of %s: %w", path, err)
	}

	best, bestCount := ',', strings.Count(line, ",")
	for _, cand := range []rune{';', '\t', '|'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	return best, nil
}

func recordValidUTF8(record []string) bool {
	for _, field := range record {
		if !utf8.ValidString(field) {
			return false
		}
	}
	return true
}

// Package store implements the flat-file persistence layer. Every store owns
// one file and a mutex around its reload-then-mutate-then-persist sequence;
// reads reload from disk wholesale instead of trusting an in-memory cache, so
// records written by a previous process are always visible.
package store

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"travel-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// readLines loads a store file. A missing file is a first run, not an error:
// it reads as an empty store.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to open store file")
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read store file")
	}
	return lines, nil
}

// writeAll rewrites the whole store through a temp file and a rename, so a
// crash mid-write never leaves a truncated store behind.
func writeAll(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.Wrap(err, "failed to create store directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create temp store file")
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return errs.Wrap(err, "failed to write store file")
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to flush store file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to close temp store file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to replace store file")
	}
	return nil
}

// appendLine appends a single record. Used by the append-only stores where a
// lost entry is a correctness issue, so failures propagate untouched.
func appendLine(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.Wrap(err, "failed to create store directory")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.Wrap(err, "failed to open store file for append")
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return errs.Wrap(err, "failed to append store record")
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

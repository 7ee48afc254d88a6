package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// loadJSON reads and decodes one JSON file. A missing, unreadable, or
// malformed file reports ok=false so the caller substitutes its default;
// read problems are never surfaced as errors.
func loadJSON[T any](path string) (T, bool) {
	var value T

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read data file, using defaults",
				"path", path,
				"error", err)
		}
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		slog.Warn("Failed to parse data file, using defaults",
			"path", path,
			"error", err)
		var zero T
		return zero, false
	}

	return value, true
}

// saveJSON writes one JSON file whole, creating parent directories as
// needed. The content is staged in a temporary file and renamed into
// place so a crash mid-write never corrupts the previous version.
func saveJSON[T any](path string, value T) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", filepath.Base(path), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}

	return nil
}

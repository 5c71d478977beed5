package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes header and rows to path, creating parent directories and
// replacing any existing file. No index column is written.
func Save(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Cell renders an optional string; nil becomes an empty cell.
func Cell(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

package fashion

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ListCategoryFiles returns the files in dir ending in ext, sorted by name.
// A non-empty selected list keeps only files whose name or stem is listed.
func ListCategoryFiles(dir, ext string, selected []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	allowed := make(map[string]bool, len(selected))
	for _, name := range selected {
		allowed[name] = false
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}

		stem := strings.TrimSuffix(name, ext)
		if len(allowed) > 0 {
			_, byName := allowed[name]
			_, byStem := allowed[stem]
			if !byName && !byStem {
				slog.Debug("Skipping unselected file", "file", name)
				continue
			}
			if byName {
				allowed[name] = true
			}
			if byStem {
				allowed[stem] = true
			}
		}

		files = append(files, filepath.Join(dir, name))
	}

	for _, name := range selected {
		if !allowed[name] {
			slog.Warn("Selected file not found", "dir", dir, "file", name)
		}
	}

	return files, nil
}

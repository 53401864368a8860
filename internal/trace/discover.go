// internal/trace/discover.go
package trace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Discover expands the given paths into the list of trace files to
// analyze. A directory contributes every .json entry at its top level; a
// file path is taken as-is. An empty result is an error so a run never
// silently analyzes nothing.
func Discover(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read trace path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read trace directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, errors.New("no trace files found")
	}
	return files, nil
}

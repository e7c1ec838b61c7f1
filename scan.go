package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// listFixtures returns the paths of the regular files directly inside dir.
// Subdirectories are not descended into. A missing or unreadable directory
// aborts the whole generation run; a half-scanned suite is worse than none.
//
// The result is sorted so emitted suites are reproducible and diffable even
// on file systems that enumerate entries in arbitrary order.
func listFixtures(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning fixture directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

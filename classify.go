package main

import (
	"path/filepath"
	"strings"
)

// category is the conformance class a fixture name encodes.
type category int

const (
	// categoryNone marks files outside the naming convention; they are
	// skipped silently, not reported.
	categoryNone category = iota

	// categoryAccept (y_*.json): must parse under the strict configuration.
	categoryAccept

	// categoryReject (n_*.json): must fail under the strict configuration.
	categoryReject

	// categoryImplDefined (i_*.json): implementation-defined, must parse
	// under the flexible configuration and fail under the strict one.
	categoryImplDefined
)

const fixtureSuffix = ".json"

// classify derives a fixture's category from the final component of path.
// Matching is case-sensitive and must consume the whole base name:
// a required one-letter prefix, an arbitrary body, and the .json suffix.
func classify(path string) category {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, fixtureSuffix) {
		return categoryNone
	}
	// The prefix and suffix may not overlap ("y_.json" is the shortest
	// well-formed name).
	if len(base) < len("y_")+len(fixtureSuffix) {
		return categoryNone
	}
	switch {
	case strings.HasPrefix(base, "y_"):
		return categoryAccept
	case strings.HasPrefix(base, "n_"):
		return categoryReject
	case strings.HasPrefix(base, "i_"):
		return categoryImplDefined
	}
	return categoryNone
}

// fixtureStem returns the base name of path with the .json suffix removed.
// It feeds the identifier sanitizer, so the category prefix stays part of
// the emitted test name.
func fixtureStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), fixtureSuffix)
}

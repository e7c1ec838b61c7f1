package main

import (
	"io"
	"path/filepath"
)

// collectBlocks classifies paths and builds the emission blocks for those
// inside the naming convention. Unmatched files are dropped without
// comment; a fixture directory routinely carries README files and
// collateral that no category covers.
//
// Embedded paths use forward slashes regardless of host OS so generated
// suites are identical across platforms. os.ReadFile accepts slash paths
// everywhere.
func collectBlocks(paths []string) []emissionBlock {
	var blocks []emissionBlock
	for _, path := range paths {
		cat := classify(path)
		if cat == categoryNone {
			continue
		}
		blocks = append(blocks, emissionBlock{
			Identifier: sanitizeIdentifier(fixtureStem(path)),
			Category:   cat,
			FilePath:   filepath.ToSlash(path),
		})
	}
	return blocks
}

// generate runs the whole pipeline as one synchronous pass: scan dir,
// classify and sanitize each entry, emit the suite to output.
func (g *emitter) generate(output io.Writer, dir string) error {
	paths, err := listFixtures(dir)
	if err != nil {
		return err
	}
	return g.emit(output, collectBlocks(paths))
}

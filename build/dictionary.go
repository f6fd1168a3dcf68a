// Package build orchestrates the two glossary pipelines: the dictionary
// scan over a static term database and the model-assisted extraction.
package build

import (
	"context"
	"path/filepath"

	"github.com/pwalczak/gloss"
)

// DocumentReader reads one input document into memory.
type DocumentReader interface {
	Read(path string) (string, error)
}

// DictionaryScan scans a set of documents against a term database and
// accumulates the union of found terms.
type DictionaryScan struct {
	Database gloss.Database
	Reader   DocumentReader
	Reporter gloss.Reporter

	// Indexer optionally builds a word index per document so the
	// scanner can skip terms that cannot occur. Nil disables the
	// prefilter.
	Indexer func(content string) gloss.WordIndex

	scanner *gloss.Scanner
}

// Run scans each path in order and returns the accumulated glossary.
// Unreadable files are skipped with a warning; they never abort the scan.
func (s *DictionaryScan) Run(ctx context.Context, paths []string) (*gloss.Glossary, error) {
	if s.scanner == nil {
		s.scanner = gloss.NewScanner(s.Database)
	}
	reporter := s.reporter()

	g := gloss.NewGlossary()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		reporter.Statusf("Scanning: %s...", filepath.Base(path))

		content, err := s.Reader.Read(path)
		if err != nil {
			reporter.Warnf("could not read %q: %s, skipping", path, gloss.ErrorMessage(err))
			continue
		}

		var idx gloss.WordIndex
		if s.Indexer != nil {
			idx = s.Indexer(content)
		}

		found := s.scanner.ScanIndexed(content, idx)
		if len(found) > 0 {
			reporter.Infof("Found %d terms in %s", len(found), filepath.Base(path))
		}
		for _, term := range found {
			g.Add(term, s.Database[term])
		}
	}

	reporter.Infof("Total unique terms found: %d", g.Len())
	return g, nil
}

func (s *DictionaryScan) reporter() gloss.Reporter {
	if s.Reporter != nil {
		return s.Reporter
	}
	return gloss.NopReporter{}
}

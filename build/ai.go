package build

import (
	"context"
	"sort"

	"github.com/pwalczak/gloss"
)

// AIExtraction runs the model-assisted pipeline: chunk the document, ask
// the model for terms per chunk, generate definitions, and merge into a
// glossary capped at gloss.MaxTerms.
type AIExtraction struct {
	Extractor gloss.TermExtractor
	Definer   gloss.Definer
	Reporter  gloss.Reporter

	// Cache, when set with CacheKeyFn, short-circuits repeat runs over
	// unchanged content.
	Cache      gloss.DefinitionCache
	CacheKeyFn func(content string) string

	// MaxChunkChars overrides gloss.DefaultMaxChunkChars when positive.
	MaxChunkChars int
}

// Run processes the document content and returns the merged glossary.
// Failures on individual chunks are reported as warnings and skipped; the
// run only fails outright when the context is canceled.
func (b *AIExtraction) Run(ctx context.Context, content string) (*gloss.Glossary, error) {
	reporter := b.reporter()

	key := ""
	if b.Cache != nil && b.CacheKeyFn != nil {
		key = b.CacheKeyFn(content)
		if g, ok := b.lookupCache(ctx, key, reporter); ok {
			return g, nil
		}
	}

	maxChars := b.MaxChunkChars
	if maxChars <= 0 {
		maxChars = gloss.DefaultMaxChunkChars
	}
	chunks := gloss.SplitChunks(content, maxChars)

	g := gloss.NewGlossary()
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(chunks) > 1 {
			reporter.Statusf("Processing chunk %d/%d...", i+1, len(chunks))
		}

		reporter.Statusf("Extracting technical terms...")
		terms, err := b.Extractor.ExtractTerms(ctx, chunk)
		if err != nil {
			reporter.Warnf("extracting terms: %s", gloss.ErrorMessage(err))
			continue
		}
		if len(terms) > gloss.MaxTerms {
			terms = terms[:gloss.MaxTerms]
		}
		if len(terms) == 0 {
			continue
		}
		reporter.Infof("Found %d technical terms", len(terms))

		reporter.Statusf("Generating definitions...")
		entries, err := b.Definer.DefineTerms(ctx, terms, chunk)
		if err != nil {
			reporter.Warnf("generating definitions: %s", gloss.ErrorMessage(err))
			continue
		}
		mergeChunk(g, terms, entries)
	}

	if g.Len() > gloss.MaxTerms {
		reporter.Warnf("Limiting glossary to %d most important terms (found %d)", gloss.MaxTerms, g.Len())
		g.Truncate(gloss.MaxTerms)
	}

	if key != "" && g.Len() > 0 {
		if err := b.Cache.Put(ctx, key, g.Terms(), g.Map()); err != nil {
			reporter.Warnf("caching glossary: %s", gloss.ErrorMessage(err))
		}
	}
	return g, nil
}

// mergeChunk folds one chunk's definitions into the glossary. Terms are
// added in extraction order; any extra keys the model invented on its own
// follow in sorted order so merges stay deterministic.
func mergeChunk(g *gloss.Glossary, terms []string, entries map[string]gloss.Entry) {
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if entry, ok := entries[term]; ok {
			g.Add(term, entry)
			seen[term] = true
		}
	}

	var extras []string
	for term := range entries {
		if !seen[term] {
			extras = append(extras, term)
		}
	}
	sort.Strings(extras)
	for _, term := range extras {
		g.Add(term, entries[term])
	}
}

func (b *AIExtraction) lookupCache(ctx context.Context, key string, reporter gloss.Reporter) (*gloss.Glossary, bool) {
	entries, terms, err := b.Cache.Get(ctx, key)
	if err != nil {
		if gloss.ErrorCode(err) != gloss.ENOTFOUND {
			reporter.Warnf("reading cache: %s", gloss.ErrorMessage(err))
		}
		return nil, false
	}

	reporter.Infof("Using cached glossary")
	g := gloss.NewGlossary()
	for _, term := range terms {
		if entry, ok := entries[term]; ok {
			g.Add(term, entry)
		}
	}
	return g, true
}

func (b *AIExtraction) reporter() gloss.Reporter {
	if b.Reporter != nil {
		return b.Reporter
	}
	return gloss.NopReporter{}
}

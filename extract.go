package gloss

import "context"

// MaxTerms is the cap on extracted terms, both per chunk and in the
// final merged glossary.
const MaxTerms = 8

// TermExtractor proposes notable technical terms found in a chunk of
// documentation. Implementations instruct the service to self-limit to
// MaxTerms; callers must still enforce the cap locally since the service
// is untrusted.
type TermExtractor interface {
	ExtractTerms(ctx context.Context, content string) ([]string, error)
}

// Definer generates definitions for a batch of extracted terms, using
// the chunk they came from as context.
type Definer interface {
	DefineTerms(ctx context.Context, terms []string, docContext string) (map[string]Entry, error)
}

// DefinitionCache stores generated glossaries keyed by document content
// and audience, so unchanged inputs are not re-billed.
type DefinitionCache interface {
	// Get returns the cached entries for the key, or ENOTFOUND.
	Get(ctx context.Context, key string) (map[string]Entry, []string, error)

	// Put stores entries with their discovery order under the key.
	Put(ctx context.Context, key string, terms []string, entries map[string]Entry) error
}

// Limiter throttles calls to the model service.
type Limiter interface {
	// Wait blocks until the rate limit allows another call.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}

// ExtractResult holds the content extracted from an HTML input file.
type ExtractResult struct {
	// Title is the page title from metadata, if any.
	Title string

	// ContentHTML is the main content with boilerplate removed.
	ContentHTML string
}

// ContentExtractor pulls main content out of HTML input files so they can
// be scanned or chunked like plain documentation.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

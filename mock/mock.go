// Package mock provides function-field mock implementations of the gloss
// interfaces for testing.
package mock

import (
	"context"

	"github.com/pwalczak/gloss"
)

var _ gloss.TermExtractor = (*TermExtractor)(nil)

// TermExtractor is a mock implementation of gloss.TermExtractor.
type TermExtractor struct {
	ExtractTermsFn func(ctx context.Context, content string) ([]string, error)
}

func (m *TermExtractor) ExtractTerms(ctx context.Context, content string) ([]string, error) {
	return m.ExtractTermsFn(ctx, content)
}

var _ gloss.Definer = (*Definer)(nil)

// Definer is a mock implementation of gloss.Definer.
type Definer struct {
	DefineTermsFn func(ctx context.Context, terms []string, docContext string) (map[string]gloss.Entry, error)
}

func (m *Definer) DefineTerms(ctx context.Context, terms []string, docContext string) (map[string]gloss.Entry, error) {
	return m.DefineTermsFn(ctx, terms, docContext)
}

var _ gloss.DefinitionCache = (*DefinitionCache)(nil)

// DefinitionCache is a mock implementation of gloss.DefinitionCache.
type DefinitionCache struct {
	GetFn func(ctx context.Context, key string) (map[string]gloss.Entry, []string, error)
	PutFn func(ctx context.Context, key string, terms []string, entries map[string]gloss.Entry) error
}

func (m *DefinitionCache) Get(ctx context.Context, key string) (map[string]gloss.Entry, []string, error) {
	return m.GetFn(ctx, key)
}

func (m *DefinitionCache) Put(ctx context.Context, key string, terms []string, entries map[string]gloss.Entry) error {
	return m.PutFn(ctx, key, terms, entries)
}

var _ gloss.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of gloss.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (m *Limiter) Wait(ctx context.Context) error {
	if m.WaitFn == nil {
		return nil
	}
	return m.WaitFn(ctx)
}

var _ gloss.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of gloss.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*gloss.ExtractResult, error)
}

func (m *ContentExtractor) Extract(html string) (*gloss.ExtractResult, error) {
	return m.ExtractFn(html)
}

var _ gloss.Converter = (*Converter)(nil)

// Converter is a mock implementation of gloss.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (m *Converter) Convert(html string) (string, error) {
	return m.ConvertFn(html)
}

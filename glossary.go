package gloss

import (
	"sort"
	"strings"
)

// Glossary accumulates term entries in discovery order.
//
// Discovery order matters: the model-assisted pipeline truncates the
// merged result to the earliest-discovered terms. Adding an existing term
// replaces its entry but keeps its original position, so a term proposed
// by several chunks is defined by the last chunk yet ranked by the first.
type Glossary struct {
	order   []string
	entries map[string]Entry
}

// NewGlossary returns an empty glossary.
func NewGlossary() *Glossary {
	return &Glossary{entries: make(map[string]Entry)}
}

// Add inserts or replaces the entry for a term. Terms are normalized to
// lowercase. Re-adding a term keeps its discovery position.
func (g *Glossary) Add(term string, entry Entry) {
	term = strings.ToLower(term)
	if _, ok := g.entries[term]; !ok {
		g.order = append(g.order, term)
	}
	g.entries[term] = entry
}

// Get returns the entry for a term and whether it exists.
func (g *Glossary) Get(term string) (Entry, bool) {
	entry, ok := g.entries[strings.ToLower(term)]
	return entry, ok
}

// Len returns the number of terms.
func (g *Glossary) Len() int {
	return len(g.order)
}

// Terms returns term keys in discovery order.
func (g *Glossary) Terms() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// SortedTerms returns term keys sorted case-insensitively for rendering.
func (g *Glossary) SortedTerms() []string {
	out := g.Terms()
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// Truncate keeps the first n terms by discovery order and drops the rest.
// It is a no-op when the glossary has n or fewer terms.
func (g *Glossary) Truncate(n int) {
	if n < 0 || len(g.order) <= n {
		return
	}
	for _, term := range g.order[n:] {
		delete(g.entries, term)
	}
	g.order = g.order[:n]
}

// Map returns a copy of the glossary as a plain map for serialization.
func (g *Glossary) Map() map[string]Entry {
	out := make(map[string]Entry, len(g.entries))
	for term, entry := range g.entries {
		out[term] = entry
	}
	return out
}

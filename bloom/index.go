// Package bloom provides a probabilistic word index used by the scanner
// to skip terms that cannot occur in a document.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/pwalczak/gloss"
)

// falsePositiveRate trades a little wasted regex work for a small filter.
const falsePositiveRate = 0.01

// Ensure WordIndex implements gloss.WordIndex at compile time.
var _ gloss.WordIndex = (*WordIndex)(nil)

// WordIndex is a Bloom filter over the lowercase words of one document.
// A negative answer is definitive; a positive answer may be a false
// positive, which only costs the scanner a regex pass it would have made
// anyway.
type WordIndex struct {
	f *bloom.BloomFilter
}

// NewWordIndex builds an index over all words in content.
func NewWordIndex(content string) *WordIndex {
	words := gloss.Words(content)

	n := uint(len(words))
	if n == 0 {
		n = 1
	}
	f := bloom.NewWithEstimates(n, falsePositiveRate)
	for _, word := range words {
		f.AddString(word)
	}
	return &WordIndex{f: f}
}

// MightContain reports whether the word may occur in the document.
func (w *WordIndex) MightContain(word string) bool {
	return w.f.TestString(word)
}

// EstimatedWords returns the approximate number of distinct words indexed.
func (w *WordIndex) EstimatedWords() uint {
	return uint(w.f.ApproximatedSize())
}

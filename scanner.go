package gloss

import (
	"regexp"
	"strings"
)

// WordIndex reports whether a single word might occur in a document.
// Implementations are allowed false positives but never false negatives,
// so a negative answer lets the scanner skip a term without a full scan.
type WordIndex interface {
	MightContain(word string) bool
}

// Scanner matches database terms against document text.
//
// A term is found if it occurs anywhere in the document as a whole word,
// case-insensitively. Multi-word terms match as literal phrases with word
// boundaries at both ends; regex metacharacters in terms are escaped so
// they match literally.
type Scanner struct {
	terms []scanTerm
}

type scanTerm struct {
	term       string
	pattern    *regexp.Regexp
	singleWord bool
}

// NewScanner compiles a scanner for all terms in the database.
func NewScanner(db Database) *Scanner {
	s := &Scanner{terms: make([]scanTerm, 0, len(db))}
	for _, term := range db.Terms() {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		s.terms = append(s.terms, scanTerm{
			term:       term,
			pattern:    pattern,
			singleWord: isSingleWord(term),
		})
	}
	return s
}

// Scan returns the set of database terms found in content.
// An empty document yields an empty set.
func (s *Scanner) Scan(content string) []string {
	return s.ScanIndexed(content, nil)
}

// ScanIndexed is Scan with an optional word index over the document.
// Single-word terms absent from the index are skipped without running
// their pattern; multi-word terms always take the full scan path.
func (s *Scanner) ScanIndexed(content string, idx WordIndex) []string {
	if content == "" {
		return nil
	}

	var found []string
	for _, st := range s.terms {
		if idx != nil && st.singleWord && !idx.MightContain(st.term) {
			continue
		}
		if st.pattern.MatchString(content) {
			found = append(found, st.term)
		}
	}
	return found
}

// isSingleWord reports whether the term is one index-able word: letters,
// digits, and underscores only. Anything else (spaces, hyphens, dots)
// cannot be looked up in a word index and must be scanned.
func isSingleWord(term string) bool {
	if term == "" {
		return false
	}
	for _, r := range term {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}

// Words splits content into lowercase words for building a WordIndex.
// Splitting follows the same word-character class the scanner's \b
// boundaries use, so index membership agrees with boundary matching.
func Words(content string) []string {
	var words []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			words = append(words, strings.ToLower(b.String()))
			b.Reset()
		}
	}
	for _, r := range content {
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return words
}

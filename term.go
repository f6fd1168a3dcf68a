package gloss

import "strings"

// Entry holds the definition metadata for a single glossary term.
// Only Definition is required; the remaining fields are optional and
// absent when zero.
type Entry struct {
	Definition  string   `json:"definition"`
	Category    string   `json:"category,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Related     []string `json:"related,omitempty"`
	ContextNote string   `json:"context_note,omitempty"`
	DocLink     string   `json:"doc_link,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Definition == "" {
		return Errorf(EINVALID, "entry definition required")
	}
	return nil
}

// Database is a read-only mapping from lowercase term to its entry,
// loaded once at startup from a JSON source.
type Database map[string]Entry

// Terms returns all term keys in unspecified order.
func (db Database) Terms() []string {
	terms := make([]string, 0, len(db))
	for term := range db {
		terms = append(terms, term)
	}
	return terms
}

// Normalize returns a copy of the database with all keys lowercased.
// Later entries win when two keys collapse to the same lowercase form.
func (db Database) Normalize() Database {
	out := make(Database, len(db))
	for term, entry := range db {
		out[strings.ToLower(term)] = entry
	}
	return out
}

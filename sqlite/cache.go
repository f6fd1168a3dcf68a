package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pwalczak/gloss"
)

// Compile-time interface verification.
var _ gloss.DefinitionCache = (*CacheService)(nil)

// CacheService stores generated glossaries keyed by document content and
// audience, so re-running the model-assisted tool over unchanged input
// reuses the previous result instead of re-billing the API.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// CacheKey derives the cache key for a document and audience level.
func CacheKey(content string, level gloss.ExpertiseLevel) string {
	return fmt.Sprintf("%016x:%s", xxhash.Sum64String(content), level)
}

// Get returns the cached entries and their discovery order for the key.
// Returns ENOTFOUND when the key has never been stored.
func (s *CacheService) Get(ctx context.Context, key string) (map[string]gloss.Entry, []string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT term, entry
		FROM definitions
		WHERE cache_key = ?
		ORDER BY position
	`, key)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	entries := make(map[string]gloss.Entry)
	var terms []string
	for rows.Next() {
		var term, raw string
		if err := rows.Scan(&term, &raw); err != nil {
			return nil, nil, err
		}
		var entry gloss.Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, nil, fmt.Errorf("failed to decode cached entry for %q: %w", term, err)
		}
		terms = append(terms, term)
		entries[term] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(terms) == 0 {
		return nil, nil, gloss.Errorf(gloss.ENOTFOUND, "no cached glossary for key")
	}

	return entries, terms, nil
}

// Put stores entries under the key, replacing any previous value.
func (s *CacheService) Put(ctx context.Context, key string, terms []string, entries map[string]gloss.Entry) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM definitions WHERE cache_key = ?`, key); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, term := range terms {
		entry, ok := entries[term]
		if !ok {
			continue
		}
		raw, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO definitions (cache_key, position, term, entry, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, key, i, term, string(raw), now)
		if err != nil {
			return err
		}
	}
	return nil
}

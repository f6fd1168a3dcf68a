// Package fs provides file-based loading and writing for glossary tools:
// the JSON term database, input documents, and rendered output.
package fs

import (
	"encoding/json"
	"os"

	"github.com/pwalczak/gloss"
)

// LoadDatabase reads a JSON term database from path. Top-level keys are
// terms (normalized to lowercase), values are entries with a required
// definition. A missing file is ENOTFOUND and malformed JSON is EINVALID;
// both are fatal startup errors for the caller.
func LoadDatabase(path string) (gloss.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gloss.Errorf(gloss.ENOTFOUND, "database file %q not found", path)
		}
		return nil, err
	}

	var db gloss.Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, gloss.Errorf(gloss.EINVALID, "parsing JSON database %q: %s", path, err)
	}

	return db.Normalize(), nil
}

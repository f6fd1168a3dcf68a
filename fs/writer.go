package fs

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteGlossary writes rendered glossary content to path, creating parent
// directories as needed. The content lands in a uniquely named temp file
// first and is renamed into place, so a failed write never leaves a
// truncated artifact behind.
func WriteGlossary(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

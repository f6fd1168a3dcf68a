package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pwalczak/gloss"
)

// defaultPatterns are the documentation file patterns used when scanning
// a directory without an explicit --pattern.
var defaultPatterns = []string{"*.md", "*.txt", "*.rst"}

// DocumentReader reads input documents into memory. Files with an .html
// or .htm extension are routed through the content extractor and
// markdown converter so they can be scanned like plain documentation;
// everything else is returned as-is.
type DocumentReader struct {
	Extractor gloss.ContentExtractor
	Converter gloss.Converter
}

// Read returns the text content of the document at path.
func (r *DocumentReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", gloss.Errorf(gloss.ENOTFOUND, "file %q not found", path)
		}
		return "", err
	}
	content := string(data)

	if !isHTML(path) || r.Extractor == nil || r.Converter == nil {
		return content, nil
	}

	result, err := r.Extractor.Extract(content)
	if err != nil {
		return "", gloss.Errorf(gloss.EINVALID, "extracting content from %q: %s", path, err)
	}
	markdown, err := r.Converter.Convert(result.ContentHTML)
	if err != nil {
		return "", gloss.Errorf(gloss.EINVALID, "converting %q to markdown: %s", path, err)
	}
	return markdown, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// CollectFiles expands file and directory arguments into a flat list of
// document paths. Directories are walked recursively; pattern filters
// their entries by base name (defaults to *.md, *.txt, *.rst). Plain file
// arguments pass through untouched, existing or not, so per-file
// missing-file handling stays with the pipeline.
func CollectFiles(args []string, pattern string) ([]string, error) {
	patterns := defaultPatterns
	if pattern != "" {
		patterns = []string{pattern}
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			for _, p := range patterns {
				ok, err := filepath.Match(p, d.Name())
				if err != nil {
					return gloss.Errorf(gloss.EINVALID, "bad pattern %q: %s", p, err)
				}
				if ok {
					paths = append(paths, path)
					return nil
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

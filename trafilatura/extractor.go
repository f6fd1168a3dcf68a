// Package trafilatura extracts main content from HTML input files so
// they can be scanned or chunked like plain documentation.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pwalczak/gloss"
	"golang.org/x/net/html"
)

// Ensure Extractor implements gloss.ContentExtractor at compile time.
var _ gloss.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to strip boilerplate (nav, footer,
// sidebars) from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*gloss.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, gloss.Errorf(gloss.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &gloss.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

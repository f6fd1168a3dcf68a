package gloss

import "strings"

// DefaultMaxChunkChars is the default chunk size bound for model requests.
const DefaultMaxChunkChars = 8000

// SplitChunks splits content into bounded-size chunks on paragraph
// boundaries for processing by the model service.
//
// Content at or below maxChars is returned unmodified as a single chunk.
// Otherwise paragraphs (separated by blank lines) are packed greedily:
// a chunk closes when the next paragraph would push it past maxChars,
// counting separator overhead. A single paragraph longer than maxChars
// becomes its own oversized chunk rather than being truncated; the bound
// is a target, not a hard cap. Chunk order follows paragraph order and
// no content is dropped.
func SplitChunks(content string, maxChars int) []string {
	if len(content) <= maxChars {
		return []string{content}
	}

	const sep = "\n\n"

	var chunks []string
	var current strings.Builder

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
	}

	for _, para := range strings.Split(content, sep) {
		if current.Len()+len(para)+len(sep) > maxChars {
			flush()
		}
		current.WriteString(para)
		current.WriteString(sep)
	}
	flush()

	return chunks
}

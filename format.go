package gloss

// Format identifies an output format for a rendered glossary.
type Format string

// Supported output formats. FormatTable is display-only and cannot be
// redirected to a file.
const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
	FormatPlain    Format = "plain"
	FormatTable    Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatMarkdown, FormatJSON, FormatHTML, FormatPlain, FormatTable:
		return f, nil
	default:
		return "", Errorf(EINVALID, "unknown format %q (expected markdown, json, html, plain, or table)", name)
	}
}

package gloss

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

// RenderOptions controls presentation details shared by the renderers.
type RenderOptions struct {
	// Title of the glossary document. Defaults to "Glossary".
	Title string

	// Audience description shown as a subtitle when set (model-assisted
	// variant), e.g. "junior developer with 2-3 years of experience".
	Audience string

	// GroupByLetter groups markdown output under per-letter headings
	// (dictionary variant).
	GroupByLetter bool
}

func (o RenderOptions) title() string {
	if o.Title == "" {
		return "Glossary"
	}
	return o.Title
}

// Render renders the glossary in the given format. FormatTable is
// display-only and handled by the console layer, not here.
func Render(g *Glossary, format Format, opts RenderOptions) (string, error) {
	switch format {
	case FormatMarkdown:
		return RenderMarkdown(g, opts), nil
	case FormatJSON:
		return RenderJSON(g)
	case FormatHTML:
		return RenderHTML(g, opts)
	case FormatPlain:
		return RenderPlain(g, opts), nil
	case FormatTable:
		return "", Errorf(EINVALID, "table format is display-only")
	default:
		return "", Errorf(EINVALID, "unknown format %q", format)
	}
}

// RenderMarkdown renders the glossary as a Markdown document. Terms are
// sorted case-insensitively; with GroupByLetter set they are grouped
// under per-letter headings.
func RenderMarkdown(g *Glossary, opts RenderOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", opts.title())
	if opts.Audience != "" {
		fmt.Fprintf(&b, "\n*Generated for: %s*\n", opts.Audience)
	}

	currentLetter := ""
	for _, term := range g.SortedTerms() {
		entry, _ := g.Get(term)

		if opts.GroupByLetter {
			letter := strings.ToUpper(term[:1])
			if letter != currentLetter {
				currentLetter = letter
				fmt.Fprintf(&b, "\n## %s\n", currentLetter)
			}
			fmt.Fprintf(&b, "\n### %s\n", TitleCase(term))
		} else {
			fmt.Fprintf(&b, "\n## %s\n", TitleCase(term))
		}

		fmt.Fprintf(&b, "\n%s\n", entry.Definition)

		if entry.Category != "" {
			fmt.Fprintf(&b, "\n*Category: %s*\n", entry.Category)
		}
		if len(entry.Examples) > 0 {
			b.WriteString("\n**Examples:**\n")
			for _, example := range entry.Examples {
				fmt.Fprintf(&b, "- %s\n", example)
			}
		}
		if len(entry.Related) > 0 {
			fmt.Fprintf(&b, "\n**Related terms:** %s\n", strings.Join(entry.Related, ", "))
		}
		if entry.ContextNote != "" {
			fmt.Fprintf(&b, "\n*Context: %s*\n", entry.ContextNote)
		}
		if entry.DocLink != "" {
			fmt.Fprintf(&b, "\n[Documentation](%s)\n", entry.DocLink)
		}
	}

	return b.String()
}

// RenderJSON renders the glossary as indented JSON keyed by term.
func RenderJSON(g *Glossary) (string, error) {
	data, err := json.MarshalIndent(g.Map(), "", "  ")
	if err != nil {
		return "", Errorf(EINTERNAL, "marshaling glossary: %s", err)
	}
	return string(data), nil
}

// RenderPlain renders the glossary as plain text.
func RenderPlain(g *Glossary, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(opts.title()) + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	if opts.Audience != "" {
		fmt.Fprintf(&b, "For: %s\n", opts.Audience)
	}

	for _, term := range g.SortedTerms() {
		entry, _ := g.Get(term)

		fmt.Fprintf(&b, "\n%s\n", strings.ToUpper(term))
		b.WriteString(strings.Repeat("-", len(term)) + "\n")
		b.WriteString(entry.Definition + "\n")

		if entry.Category != "" {
			fmt.Fprintf(&b, "Category: %s\n", entry.Category)
		}
		if len(entry.Examples) > 0 {
			b.WriteString("\nExamples:\n")
			for _, example := range entry.Examples {
				fmt.Fprintf(&b, "  * %s\n", example)
			}
		}
		if len(entry.Related) > 0 {
			fmt.Fprintf(&b, "\nRelated: %s\n", strings.Join(entry.Related, ", "))
		}
		if entry.ContextNote != "" {
			fmt.Fprintf(&b, "\nContext: %s\n", entry.ContextNote)
		}
		if entry.DocLink != "" {
			fmt.Fprintf(&b, "\nDocumentation: %s\n", entry.DocLink)
		}
	}

	return b.String()
}

// htmlTemplate renders the glossary as a standalone styled page.
// html/template provides contextual escaping for definition text coming
// from documents or the model.
var htmlTemplate = template.Must(template.New("glossary").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; line-height: 1.6; }
        h1 { color: #2563eb; }
        .subtitle { color: #6b7280; font-style: italic; margin-bottom: 2em; }
        .term { margin-bottom: 20px; padding: 15px; background: #f5f5f5; border-radius: 5px; }
        .term-title { font-weight: bold; color: #0066cc; font-size: 1.2em; }
        .definition { margin-top: 10px; }
        .category { color: #666; font-style: italic; }
        .examples { margin-top: 10px; }
        .related { margin-top: 10px; color: #666; }
        .context { margin-top: 10px; font-style: italic; color: #666; }
        .doc-link { display: inline-block; margin-top: 10px; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
{{- if .Audience}}
    <div class="subtitle">Generated for: {{.Audience}}</div>
{{- end}}
{{- range .Terms}}
    <div class="term">
        <div class="term-title">{{.Name}}</div>
        <div class="definition">{{.Entry.Definition}}</div>
{{- if .Entry.Category}}
        <div class="category">Category: {{.Entry.Category}}</div>
{{- end}}
{{- if .Entry.Examples}}
        <div class="examples"><strong>Examples:</strong><ul>
{{- range .Entry.Examples}}
            <li>{{.}}</li>
{{- end}}
        </ul></div>
{{- end}}
{{- if .Entry.Related}}
        <div class="related"><strong>Related:</strong> {{join .Entry.Related ", "}}</div>
{{- end}}
{{- if .Entry.ContextNote}}
        <div class="context">Context: {{.Entry.ContextNote}}</div>
{{- end}}
{{- if .Entry.DocLink}}
        <a href="{{.Entry.DocLink}}" class="doc-link" target="_blank">Documentation</a>
{{- end}}
    </div>
{{- end}}
</body>
</html>
`))

type htmlTerm struct {
	Name  string
	Entry Entry
}

type htmlPage struct {
	Title    string
	Audience string
	Terms    []htmlTerm
}

// RenderHTML renders the glossary as a standalone HTML document.
func RenderHTML(g *Glossary, opts RenderOptions) (string, error) {
	page := htmlPage{
		Title:    opts.title(),
		Audience: opts.Audience,
	}
	for _, term := range g.SortedTerms() {
		entry, _ := g.Get(term)
		page.Terms = append(page.Terms, htmlTerm{Name: TitleCase(term), Entry: entry})
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, page); err != nil {
		return "", Errorf(EINTERNAL, "rendering HTML: %s", err)
	}
	return b.String(), nil
}

// TitleCase uppercases the first letter of each space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

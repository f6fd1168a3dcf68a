package color

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pwalczak/gloss"
)

// TableOptions selects the metadata columns for the console table.
type TableOptions struct {
	// Title shown above the table. Defaults to "Glossary".
	Title string

	// ShowCategory adds the Category column (dictionary variant).
	ShowCategory bool

	// ShowDocLink adds a Documentation presence column (model variant).
	ShowDocLink bool
}

// WriteTable renders the glossary as an aligned console table. This is
// the display-only output; it cannot be redirected to a file.
//
// Color is applied to the title only. ANSI escapes inside cells would
// throw off tabwriter's width accounting.
func WriteTable(w io.Writer, g *gloss.Glossary, opts TableOptions) error {
	title := opts.Title
	if title == "" {
		title = "Glossary"
	}
	color.New(color.FgMagenta, color.Bold).Fprintln(w, title)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"Term", "Definition"}
	if opts.ShowCategory {
		header = append(header, "Category")
	}
	if opts.ShowDocLink {
		header = append(header, "Documentation")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, term := range g.SortedTerms() {
		entry, _ := g.Get(term)

		row := []string{gloss.TitleCase(term), entry.Definition}
		if opts.ShowCategory {
			category := entry.Category
			if category == "" {
				category = "N/A"
			}
			row = append(row, category)
		}
		if opts.ShowDocLink {
			mark := "-"
			if entry.DocLink != "" {
				mark = "yes"
			}
			row = append(row, mark)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pwalczak/gloss"
	"github.com/pwalczak/gloss/bloom"
	"github.com/pwalczak/gloss/build"
	"github.com/pwalczak/gloss/color"
	"github.com/pwalczak/gloss/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Reader   build.DocumentReader
	Reporter gloss.Reporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Paths    []string `arg:"" name:"path" help:"Documentation files or directories to scan."`
	Database string   `short:"d" default:"glossary_database.json" help:"Path to the JSON term database."`
	Output   string   `short:"o" placeholder:"FILE" help:"Write the glossary to a file instead of stdout."`
	Format   string   `short:"f" default:"markdown" enum:"markdown,json,html,plain,table" help:"Output format (${enum})."`
	Pattern  string   `short:"p" help:"Glob filter for directory scans (default: *.md, *.txt, *.rst)."`
}

// Run executes the dictionary scan.
func (c *CLI) Run(deps *Dependencies) error {
	format, err := gloss.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	if format == gloss.FormatTable && c.Output != "" {
		return gloss.Errorf(gloss.EINVALID, "table format is display-only and cannot be combined with --output")
	}

	db, err := fs.LoadDatabase(c.Database)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gloss.ErrorMessage(err))
		return err
	}

	paths, err := fs.CollectFiles(c.Paths, c.Pattern)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(deps.Stdout, "No documentation files found.")
		return nil
	}

	scan := &build.DictionaryScan{
		Database: db,
		Reader:   deps.Reader,
		Reporter: deps.Reporter,
		Indexer: func(content string) gloss.WordIndex {
			return bloom.NewWordIndex(content)
		},
	}
	g, err := scan.Run(deps.Ctx, paths)
	if err != nil {
		return err
	}
	if g.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No glossary terms found in the scanned documents.")
		return nil
	}

	if format == gloss.FormatTable {
		return color.WriteTable(deps.Stdout, g, color.TableOptions{
			Title:        "Glossary",
			ShowCategory: true,
		})
	}

	rendered, err := gloss.Render(g, format, gloss.RenderOptions{
		GroupByLetter: format == gloss.FormatMarkdown,
	})
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := fs.WriteGlossary(c.Output, rendered); err != nil {
			return err
		}
		deps.Reporter.Infof("Glossary saved to: %s", c.Output)
		return nil
	}

	fmt.Fprintln(deps.Stdout, rendered)
	return nil
}

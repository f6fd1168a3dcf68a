package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pwalczak/gloss"
	"github.com/pwalczak/gloss/build"
	"github.com/pwalczak/gloss/color"
	"github.com/pwalczak/gloss/fs"
	"github.com/pwalczak/gloss/gemini"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Reader   build.DocumentReader
	Reporter gloss.Reporter

	Extractor gloss.TermExtractor
	Definer   gloss.Definer

	// Cache and CacheKeyFn are nil when --no-cache is set or the cache
	// database could not be opened.
	Cache      gloss.DefinitionCache
	CacheKeyFn func(content string) string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path           string        `arg:"" help:"Documentation file to process."`
	APIKey         string        `help:"Gemini API key (defaults to the GEMINI_API_KEY environment variable)."`
	ExpertiseLevel string        `default:"junior" enum:"junior,mid,senior" help:"Target audience for definitions (${enum})."`
	Output         string        `short:"o" placeholder:"FILE" help:"Write the glossary to a file instead of stdout."`
	Format         string        `short:"f" default:"markdown" enum:"markdown,json,html,plain,table" help:"Output format (${enum})."`
	EstimateCost   bool          `help:"Show the estimated API cost and ask for confirmation before processing."`
	NoProgress     bool          `help:"Suppress progress output."`
	NoCache        bool          `help:"Bypass the definition cache."`
	Timeout        time.Duration `default:"60s" help:"Timeout per model call."`
	Verbose        bool          `short:"v" help:"Log model calls."`
}

// Run executes the model-assisted extraction.
func (c *CLI) Run(deps *Dependencies) error {
	format, err := gloss.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	if format == gloss.FormatTable && c.Output != "" {
		return gloss.Errorf(gloss.EINVALID, "table format is display-only and cannot be combined with --output")
	}
	level := gloss.ExpertiseLevel(c.ExpertiseLevel)

	content, err := deps.Reader.Read(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gloss.ErrorMessage(err))
		return err
	}
	if strings.TrimSpace(content) == "" {
		fmt.Fprintln(deps.Stdout, "No technical terms found in the document.")
		return nil
	}

	if c.EstimateCost {
		proceed, err := confirmCost(content, deps)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(deps.Stdout, "Aborted.")
			return nil
		}
	}

	pipeline := &build.AIExtraction{
		Extractor:  deps.Extractor,
		Definer:    deps.Definer,
		Reporter:   deps.Reporter,
		Cache:      deps.Cache,
		CacheKeyFn: deps.CacheKeyFn,
	}
	g, err := pipeline.Run(deps.Ctx, content)
	if err != nil {
		return err
	}
	if g.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No technical terms found in the document.")
		return nil
	}

	if format == gloss.FormatTable {
		return color.WriteTable(deps.Stdout, g, color.TableOptions{
			Title:       "Technical Glossary",
			ShowDocLink: true,
		})
	}

	rendered, err := gloss.Render(g, format, gloss.RenderOptions{
		Title:    "Technical Glossary",
		Audience: level.Description(),
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

// confirmCost prints the cost estimate and asks the operator to confirm.
func confirmCost(content string, deps *Dependencies) (bool, error) {
	total, breakdown := gemini.EstimateCost(content)
	fmt.Fprintf(deps.Stdout, "Estimated API cost: $%.4f (%s)\n", total, breakdown)
	fmt.Fprint(deps.Stdout, "Proceed? [y/N]: ")

	line, err := bufio.NewReader(deps.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

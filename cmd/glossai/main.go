package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pwalczak/gloss"
	"github.com/pwalczak/gloss/color"
	"github.com/pwalczak/gloss/fs"
	"github.com/pwalczak/gloss/gemini"
	"github.com/pwalczak/gloss/htmltomarkdown"
	glosslog "github.com/pwalczak/gloss/slog"
	"github.com/pwalczak/gloss/sqlite"
	"github.com/pwalczak/gloss/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// modelRPS throttles Gemini calls; the pipeline is sequential so a small
// steady rate is enough to stay under free-tier quotas.
const modelRPS = 1.0

// Main represents the program.
type Main struct {
	// Cache database path. Set before calling Run().
	CachePath string

	// Stdin for the cost-estimate confirmation prompt.
	Stdin io.Reader

	// SQLite database backing the definition cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
		Stdin:     os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("glossai"),
		kong.Description("Extract technical terms from a document and generate a glossary with Gemini."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input file specified. Run 'glossai --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Flags take precedence over the environment; .env fills the
	// environment for local use.
	_ = godotenv.Load()
	apiKey := cli.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	level := gloss.ExpertiseLevel(cli.ExpertiseLevel)
	svc := gemini.NewService(client, level).
		WithLimiter(gemini.NewRateLimiter(modelRPS)).
		WithTimeout(cli.Timeout)

	deps.Extractor = svc
	deps.Definer = svc
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		logged := glosslog.NewLoggingService(svc, svc, logger)
		deps.Extractor = logged
		deps.Definer = logged
	}

	deps.Reader = &fs.DocumentReader{
		Extractor: trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	}
	if cli.NoProgress {
		deps.Reporter = gloss.NopReporter{}
	} else {
		deps.Reporter = color.NewReporter(stderr)
	}

	if !cli.NoCache {
		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			// The cache is an optimization; run without it.
			deps.Reporter.Warnf("could not open cache at %q: %s", m.CachePath, err)
			m.DB = nil
		} else {
			defer m.Close()
			deps.Cache = sqlite.NewCacheService(m.DB)
			deps.CacheKeyFn = func(content string) string {
				return sqlite.CacheKey(content, level)
			}
		}
	}

	return kongCtx.Run(deps)
}

func defaultCachePath() string {
	if path := os.Getenv("GLOSS_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gloss-cache.db"
	}
	dir := filepath.Join(home, ".gloss")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cache.db")
}

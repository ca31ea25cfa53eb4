package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/policyprism/analyze"
	"github.com/fwojciec/policyprism/gemini"
	"github.com/fwojciec/policyprism/goquery"
	prismhttp "github.com/fwojciec/policyprism/http"
	"github.com/fwojciec/policyprism/pdf"
	prismslog "github.com/fwojciec/policyprism/slog"
	"github.com/fwojciec/policyprism/sqlite"
	"google.golang.org/genai"
)

func main() {
	if err := NewMain().Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the config and analysis stores.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{DBPath: defaultDBPath()}
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
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("policyprism"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	switch {
	case len(args) == 0:
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'policyprism --help' to see available commands")
	case args[0] == "help" || args[0] == "--help" || args[0] == "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.openDatabase(stderr); err != nil {
		return err
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Config = sqlite.NewConfigService(m.DB)
	deps.Analyses = sqlite.NewAnalysisService(m.DB)
	deps.Scraper = goquery.NewScraper()

	// Command-specific wiring. The analysis pipeline and the Gemini
	// client are only constructed for commands that use them.
	switch args[0] {
	case "analyze":
		deps.Batch = newBatch(stderr, cli.Analyze.Rate, cli.Analyze.Concurrency)
	case "portal":
		if cli.Portal.LLM {
			summarizer, err := newGeminiSummarizer(ctx, stderr)
			if err != nil {
				return err
			}
			deps.Summarizer = summarizer
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDatabase(stderr io.Writer) error {
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POLICYPRISM_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

func newBatch(stderr io.Writer, rate float64, concurrency int) *analyze.Batch {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return &analyze.Batch{
		Analyzer: &analyze.Pipeline{
			Fetcher: prismslog.NewLoggingFetcher(prismhttp.NewFetcher(), logger),
			Decoder: pdf.NewDecoder(),
			Logger:  logger,
		},
		RateLimiter: analyze.NewDomainLimiter(rate),
		Concurrency: concurrency,
	}
}

func newGeminiSummarizer(ctx context.Context, stderr io.Writer) (*gemini.Summarizer, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewSummarizer(client), nil
}

func defaultDBPath() string {
	if path := os.Getenv("POLICYPRISM_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "policyprism.db"
	}
	dir := filepath.Join(home, ".policyprism")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "policyprism.db")
}

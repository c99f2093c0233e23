package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/legaldoc"
	"github.com/fwojciec/legaldoc/analyze"
	"github.com/fwojciec/legaldoc/classify"
	"github.com/fwojciec/legaldoc/crawl"
	"github.com/fwojciec/legaldoc/fs"
	"github.com/fwojciec/legaldoc/gemini"
	"github.com/fwojciec/legaldoc/goquery"
	ldhttp "github.com/fwojciec/legaldoc/http"
	"github.com/fwojciec/legaldoc/lingua"
	ldslog "github.com/fwojciec/legaldoc/slog"
	"github.com/fwojciec/legaldoc/sqlite"
	_ "github.com/joho/godotenv/autoload"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. When set, they replace the
	// corresponding production wiring.
	Analyses   legaldoc.AnalysisService
	Fetcher    legaldoc.Fetcher
	Prober     legaldoc.Prober
	Summarizer legaldoc.Summarizer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		Stdout: stdout,
		Stderr: stderr,
		NewWriter: func(dir string) legaldoc.DocumentWriter {
			return fs.NewWriter(dir)
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("legaldoc"),
		kong.Description("Find, extract and summarize the legal documents of websites"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'legaldoc --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger, err = newLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}

	if cmd == "extract" || cmd == "analyze" {
		deps.Extractor = ldslog.NewLoggingDocumentExtractor(m.newEngine(cli, deps.Logger), deps.Logger)
	}

	if cmd != "extract" {
		analyses, err := m.openAnalyses(cli.DB, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Analyses = analyses
		deps.Analyzer = &analyze.Analyzer{
			Extractor: deps.Extractor,
			Analyses:  analyses,
			CacheTTL:  cli.CacheTTL,
		}
	}

	if cmd == "analyze" {
		summarizer, err := m.newSummarizer(ctx, cli.Model, stderr)
		if err != nil {
			return err
		}
		deps.Analyzer.Summarizer = ldslog.NewLoggingSummarizer(summarizer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newEngine wires the extraction engine from the global flags.
func (m *Main) newEngine(cli *CLI, logger *slog.Logger) *crawl.Engine {
	var opts []ldhttp.Option
	if cli.UserAgent != "" {
		opts = append(opts, ldhttp.WithUserAgent(cli.UserAgent))
	}
	if cli.MaxBodySize > 0 {
		opts = append(opts, ldhttp.WithMaxBodySize(cli.MaxBodySize))
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		timeout := ldhttp.WithTimeout(max(cli.SeedTimeout, cli.ContentTimeout))
		fetcher = ldhttp.NewFetcher(append([]ldhttp.Option{timeout}, opts...)...)
	}
	prober := m.Prober
	if prober == nil {
		timeout := ldhttp.WithTimeout(cli.ProbeTimeout)
		prober = ldhttp.NewProber(append([]ldhttp.Option{timeout}, opts...)...)
	}

	return &crawl.Engine{
		Fetcher:        ldslog.NewLoggingFetcher(fetcher, logger),
		Prober:         ldslog.NewLoggingProber(prober, logger),
		Links:          goquery.NewLinkScanner(),
		Classifier:     classify.NewClassifier(),
		Extractor:      goquery.NewContentExtractor(),
		Languages:      lingua.NewDetector(),
		RateLimiter:    crawl.NewDomainLimiter(cli.Rate, cli.Burst),
		Concurrency:    cli.Concurrency,
		SeedTimeout:    cli.SeedTimeout,
		ProbeTimeout:   cli.ProbeTimeout,
		ContentTimeout: cli.ContentTimeout,
	}
}

func (m *Main) openAnalyses(path string, stderr io.Writer) (legaldoc.AnalysisService, error) {
	if m.Analyses != nil {
		return m.Analyses, nil
	}
	if path == "" {
		path = m.DBPath
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEGALDOC_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	m.Analyses = sqlite.NewAnalysisService(m.DB)
	return m.Analyses, nil
}

func (m *Main) newSummarizer(ctx context.Context, model string, stderr io.Writer) (legaldoc.Summarizer, error) {
	if m.Summarizer != nil {
		return m.Summarizer, nil
	}

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
	return gemini.NewSummarizer(client, model), nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func defaultDBPath() string {
	if path := os.Getenv("LEGALDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "legaldoc.db"
	}
	dir := filepath.Join(home, ".legaldoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "legaldoc.db")
}

package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/legaldoc"
	"github.com/fwojciec/legaldoc/analyze"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor legaldoc.DocumentExtractor
	Analyses  legaldoc.AnalysisService
	Analyzer  *analyze.Analyzer

	// NewWriter returns the exporter for extract --out.
	NewWriter func(dir string) legaldoc.DocumentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `name:"db" env:"LEGALDOC_DB" help:"Database path (default ~/.legaldoc/legaldoc.db)"`

	Concurrency    int           `short:"c" default:"4" env:"LEGALDOC_CONCURRENCY" help:"Concurrent probe and document fetch limit"`
	Rate           float64       `default:"2" env:"LEGALDOC_RATE" help:"Requests per second per domain (0 disables limiting)"`
	Burst          int           `default:"4" env:"LEGALDOC_BURST" help:"Requests allowed back to back per domain"`
	UserAgent      string        `name:"user-agent" env:"LEGALDOC_USER_AGENT" help:"User-Agent header (default browser-like)"`
	MaxBodySize    int64         `name:"max-body-size" default:"10485760" env:"LEGALDOC_MAX_BODY_SIZE" help:"Maximum response body size in bytes"`
	SeedTimeout    time.Duration `default:"10s" env:"LEGALDOC_SEED_TIMEOUT" help:"Seed page fetch timeout"`
	ProbeTimeout   time.Duration `default:"5s" env:"LEGALDOC_PROBE_TIMEOUT" help:"Common path probe timeout"`
	ContentTimeout time.Duration `default:"15s" env:"LEGALDOC_CONTENT_TIMEOUT" help:"Document fetch timeout"`
	CacheTTL       time.Duration `name:"cache-ttl" default:"24h" env:"LEGALDOC_CACHE_TTL" help:"How long a successful analysis is reused"`
	Model          string        `default:"gemini-2.5-flash" env:"LEGALDOC_MODEL" help:"Gemini model used for summaries"`
	LogLevel       string        `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"LEGALDOC_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFormat      string        `name:"log-format" default:"text" enum:"text,json" env:"LEGALDOC_LOG_FORMAT" help:"Log format (text, json)"`

	Extract ExtractCmd `cmd:"" help:"Find and extract the legal documents of a website"`
	Analyze AnalyzeCmd `cmd:"" help:"Extract, summarize and store the legal documents of a website"`
	Show    ShowCmd    `cmd:"" help:"Show the stored analysis of a domain"`
	List    ListCmd    `cmd:"" help:"List recent successful analyses"`
	Delete  DeleteCmd  `cmd:"" help:"Delete the stored analysis of a domain"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Website URL or bare domain"`
	JSON   bool   `help:"Print the extraction as JSON"`
	Probes bool   `help:"Show common path probe results"`
	Out    string `help:"Write each extracted document as a text file under this directory" type:"path"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL   string `arg:"" help:"Website URL or bare domain"`
	Force bool   `short:"f" help:"Ignore a cached analysis"`
	JSON  bool   `help:"Print the analysis as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Domain string `arg:"" help:"Domain name"`
	JSON   bool   `help:"Print the analysis as JSON"`
	Full   bool   `help:"Show full document content"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of analyses"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Domain string `arg:"" help:"Domain name"`
	Force  bool   `help:"Confirm deletion"`
}

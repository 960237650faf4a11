package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sheetscrape"
	"github.com/fwojciec/sheetscrape/goquery"
	sshttp "github.com/fwojciec/sheetscrape/http"
	"github.com/fwojciec/sheetscrape/scrape"
	ssslog "github.com/fwojciec/sheetscrape/slog"
	"github.com/fwojciec/sheetscrape/xlsx"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now stamps export metadata. Set before calling Run() for testing.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments. Logs go to stderr and
// the configured log file; the run summary goes to stdout.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sheetscrape"),
		kong.Description("Scrape text matching a CSS selector from a web page into an Excel workbook"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if cli.Config != "" {
		fc, err := LoadConfigFile(cli.Config)
		if err != nil {
			return err
		}
		fc.Apply(&cfg)
	}
	cli.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logCloser, err := openLogger(stderr, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if !goquery.ValidSelector(cfg.Selector) {
		logger.Warn("selector does not compile, no items will match", "selector", cfg.Selector)
	}

	fetcher := sshttp.NewFetcher(
		sshttp.WithTimeout(cfg.Timeout),
		sshttp.WithUserAgent(cfg.UserAgent),
		sshttp.WithRequestDelay(cfg.RequestDelay),
	)

	var runner sheetscrape.Runner = &scrape.Pipeline{
		Fetcher:    ssslog.NewLoggingFetcher(fetcher, logger),
		Extractor:  ssslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithMinLength(cfg.MinDataLength)), logger),
		Exporter:   ssslog.NewLoggingExporter(xlsx.NewExporter(xlsx.WithSheetName(cfg.WorksheetName)), logger),
		Logger:     logger,
		OutputPath: cfg.Output,
		Now:        m.Now,
	}
	if cfg.MaxRetries > 0 {
		runner = &scrape.Retrier{
			Runner:     runner,
			Logger:     logger,
			MaxRetries: uint64(cfg.MaxRetries),
			Delay:      cfg.RetryDelay,
		}
	}

	target := sheetscrape.Target{URL: cfg.URL, Selector: cfg.Selector}
	outcome := runner.Run(ctx, target)

	return report(stdout, stderr, cfg, outcome)
}

// report prints the run summary. Only fetch failures are returned as errors.
func report(stdout, stderr io.Writer, cfg Config, outcome *sheetscrape.Outcome) error {
	switch outcome.Status {
	case sheetscrape.StatusFetchFailed:
		return fmt.Errorf("failed to fetch webpage: %w", outcome.Err)
	case sheetscrape.StatusSkippedExport:
		fmt.Fprintln(stdout, "No data extracted. Check the selector.")
	case sheetscrape.StatusDone:
		fmt.Fprintf(stdout, "Extracted %d items from %s\n", outcome.Count, cfg.URL)
		if outcome.ExportErr != nil {
			fmt.Fprintf(stderr, "warning: results not saved: %s\n", outcome.ExportErr)
		} else {
			fmt.Fprintf(stdout, "Saved to %s\n", cfg.Output)
		}
	}

	if cfg.LogFile != "" {
		fmt.Fprintf(stdout, "See %s for details.\n", cfg.LogFile)
	}
	return nil
}

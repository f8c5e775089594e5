package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/goquery"
	"github.com/fwojciec/readable/htmltomarkdown"
	readhttp "github.com/fwojciec/readable/http"
	"github.com/fwojciec/readable/opengraph"
	"github.com/fwojciec/readable/readability"
	"github.com/fwojciec/readable/scrape"
	readslog "github.com/fwojciec/readable/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readable"),
		kong.Description("Extract the readable content of a web page"),
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

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}
	if cli.URL == "" {
		return fmt.Errorf("url is required")
	}

	// Wire dependencies
	fetchOpts := []readhttp.Option{}
	if cli.RateLimit > 0 {
		fetchOpts = append(fetchOpts, readhttp.WithRateLimit(cli.RateLimit))
	}

	var scraper readable.Scraper = &scrape.Pipeline{
		Fetcher:    readhttp.NewFetcher(fetchOpts...),
		Classifier: readability.NewClassifier(),
		Extractor:  readability.NewExtractor(),
		Metadata:   opengraph.NewScraper(),
		Text:       goquery.NewTextExtractor(),
		Converter:  htmltomarkdown.NewConverter(),
	}
	if cli.Verbose {
		logger := stdlog.New(stdlog.NewTextHandler(stderr, nil))
		scraper = readslog.NewLoggingScraper(scraper, logger)
	}

	mode := readable.ModeText
	if cli.Markdown {
		mode = readable.ModeMarkdown
	}

	// The pipeline implements no cancellation of its own; the whole call
	// runs under this caller-side timeout.
	ctx, cancel := context.WithTimeout(ctx, cli.Timeout)
	defer cancel()

	result, err := scraper.Scrape(ctx, cli.URL, mode)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("no extractable content for %s", cli.URL)
	}

	return printResult(result, stdout, stderr)
}

// printResult writes the result content to stdout and any article metadata
// to stderr.
func printResult(result readable.Result, stdout, stderr io.Writer) error {
	switch r := result.(type) {
	case *readable.Article:
		if r.Title != "" {
			fmt.Fprintf(stderr, "Title: %s\n", r.Title)
		}
		if r.Byline != "" {
			fmt.Fprintf(stderr, "Byline: %s\n", r.Byline)
		}
		if r.SiteName != "" {
			fmt.Fprintf(stderr, "Site: %s\n", r.SiteName)
		}
		fmt.Fprintln(stdout, r.Content)
		return nil
	case *readable.Fallback:
		fmt.Fprintln(stdout, r.Markdown)
		return nil
	default:
		return fmt.Errorf("unknown result type %T", result)
	}
}

package main

import "time"

// CLI defines the command-line interface.
type CLI struct {
	URL       string        `arg:"" optional:"" help:"Page URL to scrape."`
	Markdown  bool          `help:"Convert extracted article content to markdown."`
	Timeout   time.Duration `default:"30s" help:"Overall scrape timeout."`
	RateLimit float64       `name:"rate-limit" default:"0" help:"Outgoing requests per second (0 disables limiting)."`
	Verbose   bool          `short:"v" help:"Log pipeline details to stderr."`
}

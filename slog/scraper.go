// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readable"
)

// Ensure LoggingScraper implements readable.Scraper at compile time.
var _ readable.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with structured logging of outcomes and
// timing.
type LoggingScraper struct {
	next   readable.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next readable.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs which branch produced
// the result.
func (s *LoggingScraper) Scrape(ctx context.Context, url string, mode readable.Mode) (readable.Result, error) {
	begin := time.Now()
	result, err := s.next.Scrape(ctx, url, mode)
	if err != nil {
		s.logger.Error("scrape failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("scrape",
		"url", url,
		"result", resultKind(result),
		"duration", time.Since(begin),
	)
	return result, nil
}

// resultKind names the result variant for log output.
func resultKind(result readable.Result) string {
	switch result.(type) {
	case *readable.Article:
		return "article"
	case *readable.Fallback:
		return "fallback"
	default:
		return "none"
	}
}

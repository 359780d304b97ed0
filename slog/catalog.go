// Package slog provides log/slog decorators for docset services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure LoggingCatalog implements docset.Catalog.
var _ docset.Catalog = (*LoggingCatalog)(nil)

// LoggingCatalog wraps a Catalog with query logging.
type LoggingCatalog struct {
	next   docset.Catalog
	logger *slog.Logger
}

// NewLoggingCatalog creates a new LoggingCatalog.
func NewLoggingCatalog(next docset.Catalog, logger *slog.Logger) *LoggingCatalog {
	return &LoggingCatalog{next: next, logger: logger}
}

// Pages delegates to the wrapped catalog.
func (c *LoggingCatalog) Pages() []*docset.Page {
	return c.next.Pages()
}

// Docset delegates to the wrapped catalog and logs the query.
func (c *LoggingCatalog) Docset(ctx context.Context, version, locale string) (docs []*docset.Page, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("docset query",
			"version", version,
			"locale", locale,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Docset(ctx, version, locale)
}

// ScanStats describes a completed catalog build.
type ScanStats struct {
	Root     string
	Pages    int
	Skipped  []string
	Duration time.Duration
}

// LogScan logs a catalog build and warns about each skipped path.
func LogScan(logger *slog.Logger, stats ScanStats) {
	logger.Info("catalog scan",
		"root", stats.Root,
		"pages", stats.Pages,
		"skipped", len(stats.Skipped),
		"duration", stats.Duration,
	)
	for _, path := range stats.Skipped {
		logger.Warn("skipped page", "path", path, "reason", "fewer than two path segments")
	}
}

// Package slog provides logging decorators for bibliofind services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmartel/bibliofind"
)

// Ensure LoggingCatalogSource implements bibliofind.CatalogSource.
var _ bibliofind.CatalogSource = (*LoggingCatalogSource)(nil)

// LoggingCatalogSource wraps a CatalogSource and emits one diagnostic line
// per load: which source was used, row count, duplicate-title count, and
// duration.
type LoggingCatalogSource struct {
	next   bibliofind.CatalogSource
	logger *slog.Logger
}

// NewLoggingCatalogSource creates a new LoggingCatalogSource.
func NewLoggingCatalogSource(next bibliofind.CatalogSource, logger *slog.Logger) *LoggingCatalogSource {
	return &LoggingCatalogSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingCatalogSource) Name() string {
	return s.next.Name()
}

// Load delegates to the wrapped source and logs the outcome.
func (s *LoggingCatalogSource) Load(ctx context.Context) ([]bibliofind.Article, error) {
	begin := time.Now()
	articles, err := s.next.Load(ctx)
	if err != nil {
		s.logger.Error("catalog load",
			"source", s.next.Name(),
			"err", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	s.logger.Info("catalog load",
		"source", s.next.Name(),
		"rows", len(articles),
		"duplicate_titles", bibliofind.DuplicateTitles(articles),
		"duration", time.Since(begin),
	)
	return articles, nil
}

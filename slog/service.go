// Package slog provides logging decorators for the model service
// interfaces, used in verbose mode.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwalczak/gloss"
)

// Ensure LoggingService implements both decorated interfaces.
var (
	_ gloss.TermExtractor = (*LoggingService)(nil)
	_ gloss.Definer       = (*LoggingService)(nil)
)

// LoggingService wraps a TermExtractor and Definer with timing and
// outcome logging.
type LoggingService struct {
	extractor gloss.TermExtractor
	definer   gloss.Definer
	logger    *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(extractor gloss.TermExtractor, definer gloss.Definer, logger *slog.Logger) *LoggingService {
	return &LoggingService{extractor: extractor, definer: definer, logger: logger}
}

// ExtractTerms delegates to the wrapped extractor and logs the outcome.
func (s *LoggingService) ExtractTerms(ctx context.Context, content string) ([]string, error) {
	begin := time.Now()
	terms, err := s.extractor.ExtractTerms(ctx, content)
	if err != nil {
		s.logger.Warn("term extraction failed",
			"chunk_chars", len(content),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("term extraction",
		"chunk_chars", len(content),
		"terms", len(terms),
		"duration", time.Since(begin),
	)
	return terms, nil
}

// DefineTerms delegates to the wrapped definer and logs the outcome.
func (s *LoggingService) DefineTerms(ctx context.Context, terms []string, docContext string) (map[string]gloss.Entry, error) {
	begin := time.Now()
	entries, err := s.definer.DefineTerms(ctx, terms, docContext)
	if err != nil {
		s.logger.Warn("definition generation failed",
			"terms", len(terms),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("definition generation",
		"terms", len(terms),
		"definitions", len(entries),
		"duration", time.Since(begin),
	)
	return entries, nil
}

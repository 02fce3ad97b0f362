package parser

import (
	"context"
	"fmt"
	"log/slog"

	"PatentScraper/internal/domain"
	"PatentScraper/internal/ports"
	"PatentScraper/internal/scanner"
)

// StrategySource implements PatentSource via a registered scanner strategy.
type StrategySource struct {
	registry *scanner.Registry
	source   string
	logger   *slog.Logger
}

var _ ports.PatentSource = (*StrategySource)(nil)

// NewStrategySource wires the scanner registry with the configured strategy name.
func NewStrategySource(reg *scanner.Registry, source string, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		source:   source,
		logger:   log,
	}
}

// Patent resolves the strategy and scans a single patent number.
func (s *StrategySource) Patent(ctx context.Context, number domain.PatentNumber, withReferences bool) (domain.Patent, error) {
	if s.registry == nil {
		return domain.Patent{}, fmt.Errorf("scanner registry is not configured")
	}

	strategy, err := s.registry.Resolve(s.source)
	if err != nil {
		return domain.Patent{}, fmt.Errorf("source %s: %w", s.source, err)
	}

	s.debug("scan patent", "patent", number, "scanner", strategy.Name(), "references", withReferences)
	patent, err := strategy.Scan(ctx, scanner.Request{
		Number:           number,
		FollowReferences: withReferences,
	})
	if err != nil {
		return domain.Patent{}, err
	}

	s.debug("patent scanned", "patent", number, "assignees", len(patent.Assignees), "references", len(patent.ReferenceNumbers))
	return patent, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

package parser

import (
	"context"
	"fmt"
	"log/slog"

	"PatentScraper/internal/config"
	"PatentScraper/internal/domain"
	"PatentScraper/internal/scanner"
)

// PatftOptions tunes the PatFT strategy.
type PatftOptions struct {
	Origin            string
	MaxReferencePages int
	Matcher           Matcher
}

// PatftScanner loads patent pages from the legacy full-text search and extracts their fields.
type PatftScanner struct {
	fetcher  PageFetcher
	matcher  Matcher
	origin   string
	maxPages int
	logger   *slog.Logger
}

var _ scanner.Scanner = (*PatftScanner)(nil)

// NewPatftScanner wires a page fetcher; empty options fall back to the PatFT defaults.
func NewPatftScanner(fetcher PageFetcher, opts PatftOptions, logger *slog.Logger) *PatftScanner {
	if fetcher == nil {
		fetcher = NewHTTPFetcher(nil, "", logger)
	}
	if opts.Origin == "" {
		opts.Origin = config.DefaultOrigin
	}
	if opts.Matcher == nil {
		opts.Matcher = DefaultRules()
	}
	if opts.MaxReferencePages < 1 {
		opts.MaxReferencePages = config.Default().Scan.MaxReferencePages
	}
	return &PatftScanner{
		fetcher:  fetcher,
		matcher:  opts.Matcher,
		origin:   opts.Origin,
		maxPages: opts.MaxReferencePages,
		logger:   logger,
	}
}

// Name identifies the strategy inside the registry.
func (s *PatftScanner) Name() string {
	return config.DefaultSource
}

// Scan fetches the patent page, extracts its fields and, when asked, walks the
// reference listing. Each call builds its result from scratch.
func (s *PatftScanner) Scan(ctx context.Context, req scanner.Request) (domain.Patent, error) {
	page, err := s.fetcher.Fetch(ctx, QueryURL(s.origin, req.Number))
	if err != nil {
		return domain.Patent{}, fmt.Errorf("patent %s: %w", req.Number, err)
	}

	patent, err := s.extract(page, req.Number)
	if err != nil {
		return domain.Patent{}, err
	}

	if !req.FollowReferences {
		patent.ReferencesSkipped = true
		return patent, nil
	}

	link, ok := FindReferencesLink(page, s.matcher)
	if !ok {
		s.debug("no references link", "patent", req.Number)
		return patent, nil
	}

	refs, err := NewPaginator(s.fetcher, s.matcher, s.origin, s.maxPages, s.logger).Collect(ctx, link)
	if err != nil {
		return domain.Patent{}, fmt.Errorf("patent %s references: %w", req.Number, err)
	}
	patent.ReferenceNumbers = refs
	s.debug("references collected", "patent", req.Number, "count", len(refs))

	return patent, nil
}

func (s *PatftScanner) extract(page *Page, number domain.PatentNumber) (domain.Patent, error) {
	issued, err := ExtractIssueDate(page, s.matcher)
	if err != nil {
		return domain.Patent{}, fmt.Errorf("patent %s: %w", number, err)
	}

	return domain.Patent{
		Number:    number,
		IssueDate: issued,
		Assignees: ExtractAssignees(page, s.matcher),
	}, nil
}

func (s *PatftScanner) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

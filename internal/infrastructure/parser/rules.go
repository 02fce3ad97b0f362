package parser

import (
	"regexp"
	"strings"
	"unicode"

	"PatentScraper/internal/config"
	"PatentScraper/internal/domain"
)

// Matcher isolates every markup-dependent rule used to locate patent fields,
// so a layout change on the search site touches only its implementation.
type Matcher interface {
	// IsAssigneeLabel reports whether a row fragment marks the assignee row.
	IsAssigneeLabel(text string) bool
	// IsReferencesLabel reports whether a bold fragment introduces the references link.
	IsReferencesLabel(text string) bool
	// IsNextPageMarker reports whether an image alt text marks the "next page" link.
	IsNextPageMarker(alt string) bool
	// IsReferenceNumber reports whether a link text is a cited patent identifier.
	IsReferenceNumber(text string) bool
	// DateFragment splits a date-like fragment into month name and year text.
	DateFragment(text string) (month, year string, ok bool)
}

var (
	dateExpr   = regexp.MustCompile(`^([a-zA-Z]+)\s\d{1,2}\D\s\d{4}`)
	numberExpr = regexp.MustCompile(`^[0-9,]`)
)

// Rules is the literal rule set matching the PatFT page layout.
type Rules struct {
	AssigneeLabel   string
	ReferencesLabel string
	NextPageAlt     string
}

var _ Matcher = Rules{}

// DefaultRules returns the markers used by the PatFT result pages.
func DefaultRules() Rules {
	return RulesFromConfig(config.Default().Rules)
}

// RulesFromConfig builds a rule set from configured markers.
func RulesFromConfig(cfg config.RulesConfig) Rules {
	return Rules{
		AssigneeLabel:   cfg.AssigneeLabel,
		ReferencesLabel: cfg.ReferencesLabel,
		NextPageAlt:     cfg.NextPageAlt,
	}
}

// IsAssigneeLabel is a case-sensitive prefix match.
func (r Rules) IsAssigneeLabel(text string) bool {
	return strings.HasPrefix(text, r.AssigneeLabel)
}

// IsReferencesLabel is a case-sensitive prefix match.
func (r Rules) IsReferencesLabel(text string) bool {
	return strings.HasPrefix(text, r.ReferencesLabel)
}

// IsNextPageMarker requires the alt text to equal the marker exactly.
func (r Rules) IsNextPageMarker(alt string) bool {
	return alt == r.NextPageAlt
}

// IsReferenceNumber accepts text starting with a digit or comma, or a reissue prefix.
func (r Rules) IsReferenceNumber(text string) bool {
	return numberExpr.MatchString(text) || domain.ReissueExpr.MatchString(text)
}

// DateFragment matches "Month D, YYYY" style text anchored at the start. The
// year is the first four characters after the first comma, left-trimmed; it is
// empty when the fragment has no comma.
func (r Rules) DateFragment(text string) (string, string, bool) {
	m := dateExpr.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}

	var year string
	if _, after, found := strings.Cut(text, ","); found {
		year = strings.TrimLeftFunc(after, unicode.IsSpace)
		if len(year) > 4 {
			year = year[:4]
		}
	}
	return m[1], year, true
}

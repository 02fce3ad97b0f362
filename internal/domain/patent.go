package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ReissueExpr matches identifiers of reissued grants ("RE" followed by a digit or comma).
var ReissueExpr = regexp.MustCompile(`^RE[0-9,]`)

// PatentNumber is a patent identifier as printed by the patent office:
// digits with optional comma separators, or a reissue number prefixed "RE".
type PatentNumber string

func (n PatentNumber) String() string {
	return string(n)
}

// IsReissue reports whether the number denotes a reissued grant.
func (n PatentNumber) IsReissue() bool {
	return ReissueExpr.MatchString(string(n))
}

// Validate rejects identifiers that cannot name a report file.
func (n PatentNumber) Validate() error {
	s := string(n)
	switch {
	case strings.TrimSpace(s) == "":
		return fmt.Errorf("%w: empty identifier", ErrInvalidNumber)
	case s == "." || s == "..":
		return fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidNumber, s)
	}
	return nil
}

// Patent is the record extracted for a primary patent.
type Patent struct {
	Number    PatentNumber
	IssueDate string
	Assignees []string

	// ReferenceNumbers lists cited patents in discovery order, repeats included.
	ReferenceNumbers []PatentNumber

	// References holds the records fetched for ReferenceNumbers, same order.
	References []Reference

	// ReferencesSkipped is set when the references listing was not walked,
	// so ReferenceNumbers says nothing about the cited patents.
	ReferencesSkipped bool
}

// Reissue reports whether the primary number is a reissue.
func (p Patent) Reissue() bool {
	return p.Number.IsReissue()
}

// AsReference drops the reference list, keeping the fields reported for a cited patent.
func (p Patent) AsReference() Reference {
	return Reference{
		Number:    p.Number,
		IssueDate: p.IssueDate,
		Assignees: p.Assignees,
	}
}

// Reference is the record reported for a single cited patent.
type Reference struct {
	Number    PatentNumber
	IssueDate string
	Assignees []string
}

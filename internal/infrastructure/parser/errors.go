package parser

import (
	"fmt"

	"PatentScraper/internal/domain"
)

// FetchError reports a page that could not be retrieved: malformed URL,
// transport failure or a non-success HTTP status.
type FetchError struct {
	URL    string
	Status string
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	case e.Status != "":
		return fmt.Sprintf("fetch %s: unexpected status %s", e.URL, e.Status)
	default:
		return fmt.Sprintf("fetch %s failed", e.URL)
	}
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrFetch}
	}
	return []error{domain.ErrFetch, e.Err}
}

// DateError reports a date-like fragment whose month or year could not be interpreted.
type DateError struct {
	Fragment string
	Reason   string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("date %q: %s", e.Fragment, e.Reason)
}

func (e *DateError) Unwrap() error {
	return domain.ErrParse
}

package domain

import "errors"

// Status enumerates how processing of a single identifier ended.
type Status string

const (
	StatusOK         Status = "ok"
	StatusFetchError Status = "fetch_error"
	StatusParseError Status = "parse_error"
	StatusWriteError Status = "write_error"
	StatusInvalid    Status = "invalid"
)

// StatusFromError maps an error onto the status class it belongs to.
// Unclassified errors count as fetch failures.
func StatusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInvalidNumber):
		return StatusInvalid
	case errors.Is(err, ErrParse):
		return StatusParseError
	case errors.Is(err, ErrWrite):
		return StatusWriteError
	default:
		return StatusFetchError
	}
}

// Outcome is the typed result of processing one input identifier.
type Outcome struct {
	Number     PatentNumber
	Status     Status
	Err        error
	References int
	OutputPath string
}

// Failed returns a copy of the outcome marked with err.
func (o Outcome) Failed(err error) Outcome {
	o.Err = err
	o.Status = StatusFromError(err)
	return o
}

// Summary collects outcomes of a run in input order.
type Summary struct {
	Outcomes []Outcome
}

// Add appends an outcome.
func (s *Summary) Add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Succeeded counts identifiers whose report was written.
func (s Summary) Succeeded() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == StatusOK {
			n++
		}
	}
	return n
}

// Failed counts identifiers that produced no report.
func (s Summary) Failed() int {
	return len(s.Outcomes) - s.Succeeded()
}

// HasFailures reports whether any identifier failed.
func (s Summary) HasFailures() bool {
	return s.Failed() > 0
}

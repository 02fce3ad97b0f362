package domain

import "errors"

// Error classes shared by adapters. Adapters wrap them so callers can classify
// failures with errors.Is without knowing the concrete error types.
var (
	ErrFetch         = errors.New("fetch failed")
	ErrParse         = errors.New("parse failed")
	ErrWrite         = errors.New("write failed")
	ErrInvalidNumber = errors.New("invalid patent number")
)

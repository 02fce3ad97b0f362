package ports

import (
	"context"

	"PatentScraper/internal/domain"
)

// PatentSource loads the record of a single patent from upstream.
type PatentSource interface {
	Patent(ctx context.Context, number domain.PatentNumber, withReferences bool) (domain.Patent, error)
}

// ReportWriter persists the text report of a patent and returns where it went.
type ReportWriter interface {
	Write(ctx context.Context, patent domain.Patent) (string, error)
}

// Progress reports the reference walk of one primary patent on the console.
type Progress interface {
	Begin(number domain.PatentNumber, total int)
	Step(index int, reference domain.PatentNumber)
	End()
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"PatentScraper/internal/domain"
	"PatentScraper/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source   ports.PatentSource
	Writer   ports.ReportWriter
	Progress ports.Progress
	Logger   *slog.Logger

	// FollowReferences collects and reports cited patents of every primary patent.
	FollowReferences bool
	// Strict stops the run at the first failed identifier.
	Strict bool
}

// Pipeline implements the patent-report workflow.
type Pipeline struct {
	source           ports.PatentSource
	writer           ports.ReportWriter
	progress         ports.Progress
	logger           *slog.Logger
	followReferences bool
	strict           bool
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:           deps.Source,
		writer:           deps.Writer,
		progress:         deps.Progress,
		logger:           deps.Logger,
		followReferences: deps.FollowReferences,
		strict:           deps.Strict,
	}
}

// Run processes identifiers sequentially, one report per identifier. A failed
// identifier is recorded in the summary and the run moves on, unless the
// pipeline is strict. Context cancellation always ends the run.
func (p *Pipeline) Run(ctx context.Context, numbers []domain.PatentNumber) (domain.Summary, error) {
	var summary domain.Summary
	if p.source == nil || p.writer == nil {
		return summary, fmt.Errorf("pipeline is not configured")
	}

	for _, number := range numbers {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome := p.process(ctx, number)
		summary.Add(outcome)

		if outcome.Err == nil {
			p.logInfo("patent reported", "patent", number, "references", outcome.References, "path", outcome.OutputPath)
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		p.logError("patent failed", "patent", number, "status", outcome.Status, "error", outcome.Err)
		if p.strict {
			return summary, fmt.Errorf("patent %s: %w", number, outcome.Err)
		}
	}

	return summary, nil
}

func (p *Pipeline) process(ctx context.Context, number domain.PatentNumber) domain.Outcome {
	outcome := domain.Outcome{Number: number}

	if err := number.Validate(); err != nil {
		return outcome.Failed(err)
	}

	patent, err := p.source.Patent(ctx, number, p.followReferences)
	if err != nil {
		return outcome.Failed(err)
	}

	if err := p.loadReferences(ctx, &patent); err != nil {
		return outcome.Failed(err)
	}

	path, err := p.writer.Write(ctx, patent)
	if err != nil {
		return outcome.Failed(err)
	}

	outcome.Status = domain.StatusOK
	outcome.References = len(patent.References)
	outcome.OutputPath = path
	return outcome
}

// loadReferences fetches every cited patent once, in discovery order. Cited
// patents are not followed further.
func (p *Pipeline) loadReferences(ctx context.Context, patent *domain.Patent) error {
	if len(patent.ReferenceNumbers) == 0 {
		return nil
	}

	if p.progress != nil {
		p.progress.Begin(patent.Number, len(patent.ReferenceNumbers))
		defer p.progress.End()
	}

	references := make([]domain.Reference, 0, len(patent.ReferenceNumbers))
	for i, number := range patent.ReferenceNumbers {
		if p.progress != nil {
			p.progress.Step(i, number)
		}

		cited, err := p.source.Patent(ctx, number, false)
		if err != nil {
			return fmt.Errorf("reference %s: %w", number, err)
		}
		references = append(references, cited.AsReference())
	}

	patent.References = references
	return nil
}

func (p *Pipeline) logInfo(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) logError(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"

	"PatentScraper/internal/config"
	"PatentScraper/internal/domain"
	"PatentScraper/internal/infrastructure/input"
	"PatentScraper/internal/infrastructure/parser"
	"PatentScraper/internal/infrastructure/progress"
	"PatentScraper/internal/infrastructure/report"
	"PatentScraper/internal/logging"
	"PatentScraper/internal/scanner"
	"PatentScraper/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. Progress is drawn on progressOut;
// a nil progressOut disables it.
func New(cfg config.Config, baseLogger *slog.Logger, progressOut *os.File) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging)
	}
	baseLogger = baseLogger.With("run", uuid.NewString())

	client := &http.Client{Timeout: cfg.HTTP.Timeout}
	fetcher := parser.NewHTTPFetcher(client, cfg.HTTP.UserAgent, baseLogger.With("component", "fetcher"))

	registry := scanner.NewRegistry()
	registry.Register(parser.NewPatftScanner(fetcher, parser.PatftOptions{
		Origin:            cfg.HTTP.Origin,
		MaxReferencePages: cfg.Scan.MaxReferencePages,
		Matcher:           parser.RulesFromConfig(cfg.Rules),
	}, baseLogger.With("component", "scanner.patft")))

	if _, err := registry.Resolve(cfg.Scan.Source); err != nil {
		return nil, fmt.Errorf("source %s: %w", cfg.Scan.Source, err)
	}

	source := parser.NewStrategySource(registry, cfg.Scan.Source, baseLogger.With("component", "source"))
	writer := report.NewTextWriter(cfg.Output.Dir, baseLogger.With("component", "report"))

	deps := usecase.PipelineDeps{
		Source:           source,
		Writer:           writer,
		Logger:           baseLogger.With("component", "pipeline"),
		FollowReferences: cfg.Scan.FollowReferences,
		Strict:           cfg.Output.Strict,
	}
	if progressOut != nil {
		deps.Progress = progress.New(progressOut, cfg.Progress.Enabled)
	}

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		pipeline: usecase.NewPipeline(deps),
	}, nil
}

// Run reads identifiers from inputPath and writes one report per identifier.
func (a *Application) Run(ctx context.Context, inputPath string) (domain.Summary, error) {
	numbers, err := input.ReadFile(inputPath)
	if err != nil {
		return domain.Summary{}, err
	}

	a.logger.Info("run started", "input", inputPath, "patents", len(numbers), "output", a.cfg.Output.Dir)
	summary, err := a.pipeline.Run(ctx, numbers)
	a.logger.Info("run finished", "succeeded", summary.Succeeded(), "failed", summary.Failed())
	return summary, err
}

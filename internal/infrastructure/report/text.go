package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"PatentScraper/internal/domain"
	"PatentScraper/internal/ports"
)

// TextWriter stores one plain-text report per primary patent, named after the patent number.
type TextWriter struct {
	dir    string
	logger *slog.Logger
}

var _ ports.ReportWriter = (*TextWriter)(nil)

// NewTextWriter writes reports into dir, creating it when missing.
func NewTextWriter(dir string, logger *slog.Logger) *TextWriter {
	return &TextWriter{dir: dir, logger: logger}
}

// Write renders the report to a temporary file and renames it over <dir>/<number>,
// replacing any existing file without warning.
func (w *TextWriter) Write(ctx context.Context, patent domain.Patent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := patent.Number.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create output dir: %w", domain.ErrWrite, err)
	}

	target := filepath.Join(w.dir, patent.Number.String())
	tmp, err := os.CreateTemp(w.dir, "."+patent.Number.String()+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %w", domain.ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if err := Render(tmp, patent); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: render %s: %w", domain.ErrWrite, patent.Number, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %w", domain.ErrWrite, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("%w: rename to %s: %w", domain.ErrWrite, target, err)
	}

	if w.logger != nil {
		w.logger.Debug("report written", "patent", patent.Number, "path", target)
	}
	return target, nil
}

// Render writes the flat text report of patent and its references. The
// reference section is left out when the listing was not walked.
func Render(out io.Writer, patent domain.Patent) error {
	bw := bufio.NewWriter(out)

	bw.WriteString("Primary Patent #: " + patent.Number.String() + "\n")
	if patent.Reissue() {
		bw.WriteString("Patent is a reissue.\n")
	}
	bw.WriteString("Primary Patent Issue date: " + patent.IssueDate + "\n")
	bw.WriteString("Primary Patent Assignee: ")
	writeLines(bw, patent.Assignees)

	if patent.ReferencesSkipped {
		return bw.Flush()
	}

	bw.WriteString("Number of References: " + strconv.Itoa(len(patent.ReferenceNumbers)) + "\n")
	for _, ref := range patent.References {
		bw.WriteString("Reference Patent #: " + ref.Number.String() + "\n")
		bw.WriteString("Reference Patent Issue date: " + ref.IssueDate + "\n")
		bw.WriteString("Reference Patent Assignee: ")
		writeLines(bw, ref.Assignees)
	}

	return bw.Flush()
}

func writeLines(bw *bufio.Writer, lines []string) {
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteString("\n")
	}
}

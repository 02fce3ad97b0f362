package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"PatentScraper/internal/domain"
	"PatentScraper/internal/ports"
)

// New picks a progress bar when enabled and out is a terminal, the plain
// reference counter otherwise.
func New(out *os.File, enabled bool) ports.Progress {
	if enabled && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		return NewBar(out)
	}
	return NewCounter(out)
}

// Counter prints the 0-based index of every reference as it is fetched.
type Counter struct {
	out io.Writer
}

var _ ports.Progress = (*Counter)(nil)

// NewCounter writes counter lines to out.
func NewCounter(out io.Writer) *Counter {
	return &Counter{out: out}
}

func (c *Counter) Begin(domain.PatentNumber, int) {}

func (c *Counter) Step(index int, _ domain.PatentNumber) {
	fmt.Fprintln(c.out, index)
}

func (c *Counter) End() {}

// Bar renders the reference walk of one patent as a progress bar.
type Bar struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

var _ ports.Progress = (*Bar)(nil)

// NewBar draws on out.
func NewBar(out io.Writer) *Bar {
	return &Bar{out: out}
}

func (b *Bar) Begin(number domain.PatentNumber, total int) {
	if total == 0 {
		b.bar = nil
		return
	}
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("%s references", number)),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Step(index int, reference domain.PatentNumber) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(fmt.Sprintf("reference %s", reference))
	_ = b.bar.Set(index + 1)
}

func (b *Bar) End() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	b.bar = nil
}

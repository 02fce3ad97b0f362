package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"PatentScraper/internal/app"
	"PatentScraper/internal/config"
	"PatentScraper/internal/domain"
	"PatentScraper/internal/logging"
)

const inputPrompt = "Enter the file name that contains the patentNumbers you'd like to process: "

type rootOptions struct {
	configPath string
	outputDir  string
	timeout    time.Duration
	logLevel   string
	strict     bool
	noProgress bool
}

// NewRootCmd builds the patentscraper command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "patentscraper [input-file]",
		Short: "Write text reports for US patents listed in a file",
		Long: `patentscraper reads patent numbers from a file, one per line, looks each one
up in the patent full-text database and writes a plain-text report named after
the number. The report carries the issue date and assignees of the patent and of
every patent it cites.

When input-file is omitted the file name is read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: $PATENT_SCRAPER_CONFIG or patentscraper/config.yaml in the XDG config dirs)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "directory receiving the reports (default: current directory)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-request HTTP timeout, e.g. 30s")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.strict, "strict", false, "stop at the first patent that fails")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "print plain reference counters instead of a progress bar")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := opts.apply(cmd, &cfg); err != nil {
		return err
	}

	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	} else {
		inputPath, err = promptInputPath(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	logger := logging.New(cfg.Logging)
	// progress needs a file to detect a terminal; other writers get none
	progressOut, _ := cmd.OutOrStdout().(*os.File)
	application, err := app.New(cfg, logger, progressOut)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := application.Run(ctx, inputPath)
	if len(summary.Outcomes) > 0 {
		printSummary(cmd.OutOrStdout(), summary)
	}
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d of %d patents failed", summary.Failed(), len(summary.Outcomes))
	}
	return nil
}

// apply copies explicitly set flags over the loaded configuration.
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.Output.Dir = o.outputDir
	}
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout = o.timeout
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("strict") {
		cfg.Output.Strict = o.strict
	}
	if flags.Changed("no-progress") {
		cfg.Progress.Enabled = !o.noProgress
	}
	return cfg.Validate()
}

func promptInputPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, inputPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input file name: %w", err)
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no input file given")
	}
	return path, nil
}

func printSummary(out io.Writer, summary domain.Summary) {
	for _, o := range summary.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(out, "%s\t%s\t%v\n", o.Number, o.Status, o.Err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", o.Number, o.Status, o.OutputPath)
	}
	fmt.Fprintf(out, "%d succeeded, %d failed\n", summary.Succeeded(), summary.Failed())
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NightKikko/datasearcher/internal/config"
	"github.com/NightKikko/datasearcher/internal/display"
	"github.com/NightKikko/datasearcher/internal/logger"
	"github.com/NightKikko/datasearcher/internal/report"
	"github.com/NightKikko/datasearcher/internal/search"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term] [directory]",
		Short: "Search a directory tree for a term",
		Long: `Search every text file under a directory for a literal term.

Files are filtered by exclusion patterns (regular expressions matched anywhere
in the path), by extension, and by a binary sniff of their first 1024 bytes.
JSON files are additionally searched key by key and value by value.

Configuration is loaded from .datasearcher/config.yaml if present
(or $DATASEARCHER_HOME/config.yaml). CLI flags override configuration file
settings. Without a term, or with --interactive, every parameter is prompted.

Examples:
  datasearcher search password ./dump
  datasearcher search --case-sensitive ApiKey . --ext json,env
  datasearcher search token /data --all --workers 64
  datasearcher search admin ./db --format json --output results.json
  datasearcher search --exclude 'node_modules,\.min\.' secret .
  datasearcher search --timeout 30s needle /big/tree
  datasearcher search --interactive`,
		Args: cobra.MaximumNArgs(2),
		RunE: runSearch,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .datasearcher/config.yaml)")
	cmd.Flags().StringSlice("exclude", nil, "Regular expressions of paths to skip (comma separated)")
	cmd.Flags().StringSlice("ext", nil, "File extensions to search (comma separated)")
	cmd.Flags().Bool("all", false, "Search every file regardless of extension")
	cmd.Flags().Int("workers", config.DefaultMaxWorkers, "Maximum number of files searched concurrently")
	cmd.Flags().Bool("case-sensitive", false, "Match the term without case folding")
	cmd.Flags().String("format", "", "Report format: text, json, yaml, markdown, html")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().String("timeout", "", "Maximum search time (e.g., 30s, 5m)")
	cmd.Flags().String("log-dir", "", "Directory for run log files")
	cmd.Flags().Bool("no-log-file", false, "Do not write a run log file")
	cmd.Flags().BoolP("verbose", "v", false, "Show debug output")
	cmd.Flags().BoolP("quiet", "q", false, "Only show warnings, errors and results")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for every search parameter")

	return cmd
}

// runSearch implements the search command logic
func runSearch(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags, err := collectFlags(cmd)
	if err != nil {
		return err
	}
	cfg.MergeWithFlags(flags)

	var term, root string
	if len(args) > 0 {
		term = args[0]
	}
	if len(args) > 1 {
		root = args[1]
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	colorOut := report.UseColor(out)
	quiet, _ := cmd.Flags().GetBool("quiet")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if !quiet {
		display.Banner(out, colorOut)
	}
	if interactive || term == "" {
		p := newPrompter(cmd.InOrStdin(), out, colorOut)
		term, root, err = p.promptSearch(cfg, term, root)
		if err != nil {
			return err
		}
	}

	if term == "" {
		return fmt.Errorf("search term is required")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	searchCfg := cfg.BuildSearchConfig(term, root)
	if !quiet {
		display.ShowParameters(out, searchCfg, colorOut)
	}

	collector := &failureCollector{}
	observers := search.MultiObserver{logger.NewConsoleLogger(errOut, cfg.LogLevel), collector}

	runID := uuid.New().String()
	logPath := ""
	if !cfg.NoLogFile {
		// Run logs always carry the summary, even with --quiet
		fileLevel := cfg.LogLevel
		if fileLevel == "warn" || fileLevel == "error" {
			fileLevel = "info"
		}
		fileLogger, err := logger.NewFileLogger(cfg.LogDir, fileLevel)
		if err != nil {
			return fmt.Errorf("failed to create run log: %w", err)
		}
		defer fileLogger.Close()
		observers = append(observers, fileLogger)
		runID = fileLogger.RunID()
		logPath = fileLogger.Path()
	}

	searcher, err := search.NewSearcher(searchCfg, search.WithObserver(observers))
	if err != nil {
		return fmt.Errorf("invalid search configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	results, stats, runErr := searcher.Run(ctx)

	if stats.Canceled {
		display.WarnCancelled(stats, runErr).Display(errOut)
	}
	if len(collector.paths) > 0 {
		display.WarnFileErrors(collector.paths, logPath).Display(errOut)
	}

	rep := &report.Report{
		Term:          searchCfg.Term,
		Root:          searchCfg.Root,
		CaseSensitive: searchCfg.CaseSensitive,
		Results:       results,
		Stats:         stats,
		RunID:         runID,
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		// The export itself is not interrupted by the run context
		if err := rep.Export(context.Background(), outputPath, cfg.Format); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(out, "Report written to %s\n", outputPath)
		}
	} else if err := rep.Write(out, cfg.Format); err != nil {
		return err
	}

	if runErr != nil {
		if errors.Is(runErr, context.DeadlineExceeded) {
			return fmt.Errorf("search timed out after %s: results are partial", cfg.Timeout)
		}
		return fmt.Errorf("search interrupted: %w", runErr)
	}
	return nil
}

// collectFlags builds config overrides from the flags that were set explicitly.
func collectFlags(cmd *cobra.Command) (config.Flags, error) {
	var f config.Flags
	flags := cmd.Flags()

	if flags.Changed("verbose") && flags.Changed("quiet") {
		return f, fmt.Errorf("cannot use both --verbose and --quiet")
	}

	if flags.Changed("exclude") {
		v, _ := flags.GetStringSlice("exclude")
		f.Exclude = &v
	}
	if flags.Changed("ext") {
		v, _ := flags.GetStringSlice("ext")
		f.Extensions = &v
	}
	if flags.Changed("all") {
		v, _ := flags.GetBool("all")
		f.AllFiles = &v
	}
	if flags.Changed("workers") {
		v, _ := flags.GetInt("workers")
		f.MaxWorkers = &v
	}
	if flags.Changed("case-sensitive") {
		v, _ := flags.GetBool("case-sensitive")
		f.CaseSensitive = &v
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		f.Format = &v
	}
	if flags.Changed("timeout") {
		s, _ := flags.GetString("timeout")
		timeout, err := time.ParseDuration(s)
		if err != nil {
			return f, fmt.Errorf("invalid timeout format %q: %w", s, err)
		}
		f.Timeout = &timeout
	}
	if flags.Changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		f.LogDir = &v
	}
	if flags.Changed("no-log-file") {
		v, _ := flags.GetBool("no-log-file")
		f.NoLogFile = &v
	}
	if v, _ := flags.GetBool("verbose"); v {
		level := "debug"
		f.LogLevel = &level
	}
	if v, _ := flags.GetBool("quiet"); v {
		level := "warn"
		f.LogLevel = &level
	}

	return f, nil
}

// failureCollector records the paths of files whose scan failed.
type failureCollector struct {
	search.NopObserver
	paths []string
}

func (fc *failureCollector) FileFailed(path string, err error) {
	fc.paths = append(fc.paths, path)
}

var _ search.Observer = (*failureCollector)(nil)

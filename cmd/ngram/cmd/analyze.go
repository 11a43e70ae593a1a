package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	fsw "github.com/corey/ngram/internal/adapters/fsnotify"
	"github.com/corey/ngram/internal/app"
	"github.com/corey/ngram/internal/config"
	"github.com/corey/ngram/internal/domain/ngram"
	"github.com/corey/ngram/internal/domain/report"
	"github.com/spf13/cobra"
)

// resolveConfig loads the config file and environment, then applies every
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("top-k") {
		cfg.TopK = opts.topK
	}
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if f.Changed("cache") {
		cfg.CachePath = opts.cache
	}
	if f.Changed("progress") {
		cfg.Progress = opts.progress
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// runAnalysis loads req, analyzes it and writes the report to stdout; with
// --watch it keeps rerunning until interrupted.
func runAnalysis(cmd *cobra.Command, opts *rootOptions, cfg *config.Config, req app.Request) error {
	logger := app.NewLogger(cfg.Log)

	a, err := app.New(cfg, logger)
	if err != nil {
		if isCacheLockError(err) {
			return fmt.Errorf("%w\n%s", err, diagnoseCacheLock(cfg.CachePath))
		}
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	p := newPalette(!opts.json && resolveColor(opts.color, opts.noColor))
	emit := func(res *ngram.Result) error {
		if opts.json {
			return writeDump(out, report.NewDump(res.Table, res.Classification))
		}
		_, err := fmt.Fprint(out, formatSummary(report.Rank(res.Table, cfg.TopK), p))
		return err
	}

	if opts.watch {
		w, err := fsw.NewWatcher()
		if err != nil {
			return fmt.Errorf("watcher: %w", err)
		}
		return a.Watch(ctx, req, w, emit)
	}

	res, err := a.Run(ctx, req)
	if err != nil {
		return err
	}
	return emit(res)
}

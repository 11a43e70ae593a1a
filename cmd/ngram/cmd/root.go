package cmd

import (
	"github.com/corey/ngram/internal/app"
	"github.com/corey/ngram/internal/version"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags every analysis command shares.
type rootOptions struct {
	configPath string
	topK       int
	json       bool
	cache      string
	watch      bool
	progress   bool
	workers    int
	logLevel   string
	logFormat  string
	color      string
	noColor    bool
}

// newRootCmd builds a fresh command tree. Each call gets its own flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ngram",
		Short: "Weighted n-gram analysis of word-frequency lexicons",
		Long: "Counts every letter substring of every word in a frequency lexicon, weighted by\n" +
			"the word's frequency, and reports the heaviest n-grams per length.",
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (default $NGRAM_CONFIG)")
	f.IntVarP(&opts.topK, "top-k", "k", 10, "N-grams listed per length (1..100)")
	f.BoolVar(&opts.json, "json", false, "Dump every table as JSON instead of the ranked summary")
	f.StringVar(&opts.cache, "cache", "", `Cache validated lexicons in a bbolt file ("auto" = user cache dir)`)
	f.Lookup("cache").NoOptDefVal = app.AutoCachePath
	f.BoolVar(&opts.watch, "watch", false, "Rerun the analysis whenever the input file changes")
	f.BoolVar(&opts.progress, "progress", false, "Show a progress bar on stderr")
	f.IntVar(&opts.workers, "workers", 1, "Goroutines accumulating partial tables")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")
	f.StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")
	f.BoolVar(&opts.noColor, "no-color", false, "Suppress color output")

	rootCmd.AddCommand(newSubtlexCmd(opts))
	rootCmd.AddCommand(newCountCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

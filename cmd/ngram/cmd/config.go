package cmd

import (
	"fmt"

	"github.com/corey/ngram/internal/app"
	"github.com/corey/ngram/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Shows the effective settings after the config file, environment and flags are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			p := newPalette(resolveColor(opts.color, opts.noColor))
			fmt.Fprint(cmd.OutOrStdout(), formatConfig(cfg, opts.configPath, p))
			return nil
		},
	}
}

func formatConfig(cfg *config.Config, path string, p palette) string {
	source := path
	if source == "" {
		source = "$" + config.PathEnv + " or environment only"
	}
	cache := cfg.CachePath
	switch cache {
	case "":
		cache = "disabled"
	case app.AutoCachePath:
		cache = app.DefaultCachePath()
	}
	progress := "log every 10000 words"
	if cfg.Progress {
		progress = "bar"
	}

	return fmt.Sprintf("%sngram config%s\n", p.bold, p.reset) +
		fmt.Sprintf("  Config:     %s\n", source) +
		fmt.Sprintf("  Top K:      %d\n", cfg.TopK) +
		fmt.Sprintf("  Workers:    %d\n", cfg.Workers) +
		fmt.Sprintf("  Column:     %s\n", cfg.Column) +
		fmt.Sprintf("  Cache:      %s\n", cache) +
		fmt.Sprintf("  Progress:   %s\n", progress) +
		fmt.Sprintf("  Log:        %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
}

package cmd

import (
	"github.com/corey/ngram/internal/app"
	"github.com/spf13/cobra"
)

func newCountCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count <dictionary>",
		Short: "Analyze a word/count dictionary",
		Long:  "Reads whitespace-separated \"word count\" pairs and weights each word by its integer count.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runAnalysis(cmd, opts, cfg, app.Request{
				Source: app.SourceWordCount,
				Path:   args[0],
			})
		},
	}
}

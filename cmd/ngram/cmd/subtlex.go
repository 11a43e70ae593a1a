package cmd

import (
	"github.com/corey/ngram/internal/app"
	"github.com/spf13/cobra"
)

func newSubtlexCmd(opts *rootOptions) *cobra.Command {
	var (
		path   string
		column string
	)

	c := &cobra.Command{
		Use:   "subtlex --subtlex <path>",
		Short: "Analyze a SUBTLEX-US CSV",
		Long: "Reads a SUBTLEX-US frequency table (15 typed columns, any order) and weights\n" +
			"each word by a numeric column, SUBTLWF (frequency per million) by default.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("column") {
				cfg.Column = column
			}
			return runAnalysis(cmd, opts, cfg, app.Request{
				Source: app.SourceSubtlex,
				Path:   path,
				Column: cfg.Column,
			})
		},
	}

	c.Flags().StringVar(&path, "subtlex", "", "SUBTLEX CSV file")
	c.Flags().StringVar(&column, "column", "SUBTLWF", "Numeric column used as the word weight")
	_ = c.MarkFlagRequired("subtlex")
	return c
}

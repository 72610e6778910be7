package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Stairs/internal/calc/importer"
)

func newImportCmd(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "import FILE.xlsx",
		Short: "Calculate every structural design row of a workbook",
		Long: `Import reads the first sheet of an .xlsx workbook, one flight per row with
a header row naming the columns, and prints the structural result of each row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := importer.Calculate(f)
			if err != nil {
				return err
			}
			for _, row := range res.Rows {
				if row.Err != "" {
					opts.log.Warn().Int("line", row.Line).Str("error", row.Err).Msg("row rejected")
				}
			}
			if err := write(cmd.OutOrStdout(), opts.format, res); err != nil {
				return err
			}
			if strict && res.Count != len(res.Rows) {
				return fmt.Errorf("%d of %d rows rejected", len(res.Rows)-res.Count, len(res.Rows))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any row is rejected")
	return cmd
}

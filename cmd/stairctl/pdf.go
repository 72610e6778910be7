package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Stairs/internal/calc/report"
)

func newPDFCmd(opts *options) *cobra.Command {
	var (
		out  string
		meta report.Meta
	)
	cmd := &cobra.Command{
		Use:   "pdf FILE",
		Short: "Render the calculation book of a flight as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := calculate(args[0])
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(f)
			if err := report.Render(w, meta, b); err != nil {
				f.Close()
				return fmt.Errorf("render: %w", err)
			}
			if err := w.Flush(); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			opts.log.Info().Str("file", out).Msg("report written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "book.pdf", "output file")
	cmd.Flags().StringVar(&meta.Project, "project", "", "project name")
	cmd.Flags().StringVar(&meta.Author, "author", "", "author")
	cmd.Flags().StringVar(&meta.Title, "title", "", "report title")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Stairs/internal/calc/book"
)

// calculate reads a flight input file and runs both design stages.
func calculate(path string) (book.CalculationBook, error) {
	raw, err := readRaw(path)
	if err != nil {
		return book.CalculationBook{}, err
	}
	in, err := book.NewInput(raw)
	if err != nil {
		return book.CalculationBook{}, fmt.Errorf("%s: %w", path, err)
	}
	b, err := book.Calculate(in)
	if err != nil {
		return book.CalculationBook{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func newCalcCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calc FILE",
		Short: "Calculate the calculation book of a flight",
		Long: `Calc reads structural_design and detailed_design from FILE, runs the
structural and detailing stages and prints the calculation book.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := calculate(args[0])
			if err != nil {
				return err
			}
			d := b.DetailedDesignResult
			opts.log.Info().
				Float64("design_load", b.StructuralDesignResult.DesignLoad).
				Str("lifting", d.LiftingParameter.PartName()).
				Str("demolding", d.DemoldingParameter.PartName()).
				Msg("calculated")
			return write(cmd.OutOrStdout(), opts.format, b)
		},
	}
}

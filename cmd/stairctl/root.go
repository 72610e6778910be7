package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	format  string
	verbose bool
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "stairctl",
		Short: "Validate and calculate precast staircase designs",
		Long: `stairctl reads staircase designs from YAML or JSON files and runs the
same validation and calculation stages as the HTTP API.

Examples:
  stairctl validate --kind structure flight.yaml
  stairctl calc flight.yaml
  stairctl pdf --out book.pdf flight.yaml
  stairctl import flights.xlsx`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			opts.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "json", "output format: json or yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every stage")
	opts.log = zerolog.New(os.Stderr).Level(zerolog.Disabled)

	root.AddCommand(
		newValidateCmd(opts),
		newCalcCmd(opts),
		newPDFCmd(opts),
		newImportCmd(opts),
	)
	return root
}

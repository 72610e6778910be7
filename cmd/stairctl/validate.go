package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"Stairs/internal/calc/book"
	dmodel "Stairs/internal/model/detailed"
	smodel "Stairs/internal/model/structure"
	"Stairs/internal/record"
)

var validators = map[string]func(any) (any, error){
	"structure":        wrap(smodel.NewStructuralDesign),
	"structure-result": wrap(smodel.NewStructuralDesignResult),
	"detailed":         wrap(dmodel.NewDetailedDesign),
	"construction":     wrap(dmodel.NewConstructionDetailed),
	"inserts":          wrap(dmodel.NewInsertsDetailed),
	"rebar":            wrap(dmodel.NewRebarDetailed),
	"detailed-result":  wrap(dmodel.NewDetailedDesignResult),
	"book":             wrap(book.Assemble),
	"input":            wrap(book.NewInput),
}

func wrap[T any](f func(any) (T, error)) func(any) (any, error) {
	return func(raw any) (any, error) { return f(raw) }
}

func kinds() []string {
	out := make([]string, 0, len(validators))
	for k := range validators {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func newValidateCmd(opts *options) *cobra.Command {
	var (
		kind string
		dump bool
	)
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate design files against a record type",
		Long: `Validate builds the named record from each file and prints the normalized
record, or the field it was rejected on.

Kinds: ` + strings.Join(kinds(), ", "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := validators[kind]
			if !ok {
				return fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(kinds(), ", "))
			}
			failed := 0
			for _, path := range args {
				raw, err := readRaw(path)
				if err != nil {
					return err
				}
				rec, err := build(raw)
				if err != nil {
					failed++
					opts.log.Debug().Str("file", path).Str("field", record.FieldOf(err)).Msg("rejected")
					fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid: %v\n", path, err)
					continue
				}
				opts.log.Debug().Str("file", path).Str("kind", kind).Msg("valid")
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				switch {
				case dump:
					// shows the concrete variant behind each union field
					spew.Fdump(cmd.OutOrStdout(), rec)
				case opts.verbose:
					if err := write(cmd.OutOrStdout(), opts.format, rec); err != nil {
						return err
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "input", "record type of the files")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the Go value of each valid record")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/toyz/fakegen/internal/config"
	"github.com/toyz/fakegen/internal/parser"
)

func (a *app) parseCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the parsed property tree of a definition",
		Long: `Print the parsed property tree of a definition.

The tree shows how every field was classified (array, union, object, enum,
literal or scalar) and lists the field chunks that were skipped.`,
		Example: `  fakegen parse -i "type Point = { x: number; y: number }"
  fakegen parse -f user.ts --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, name, err := readDefinition(opts, cmd.InOrStdin())
			if err != nil {
				return err
			}

			def, err := parser.NewParser().ParseSource(name, text)
			if err != nil {
				return err
			}
			if def.HasDiagnostics() {
				NewDiagnosticReporter(cmd.ErrOrStderr(), a.cfg.Verbose).ReportSkipped(def)
			}

			out, err := encode(def, a.cfg.Format)
			if err != nil {
				return err
			}
			return writeOutput(opts.Output, cmd.OutOrStdout(), out)
		},
	}

	addInputFlags(cmd, opts)
	cmd.Flags().String("format", config.FormatJSON, "Output format: json or yaml")
	return cmd
}

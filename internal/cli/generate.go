package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/toyz/fakegen/internal/config"
	"github.com/toyz/fakegen/internal/utils"
)

func (a *app) generateCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate mock data or mock factory source from a definition",
		Long: `Generate mock data or mock factory source from a definition.

Modes:
  data    records encoded as JSON or YAML (default)
  source  a restated declaration plus a generate<Name>Mock factory
  both    a markdown document with the factory and example data

The definition is read from --interface, --file, or standard input.`,
		Example: `  fakegen generate -i 'interface User { id: string; email: string }' -c 3
  fakegen generate -f user.ts --format yaml
  fakegen generate -f user.ts --mode source --target go --go-package fixtures -o user_mock.go
  cat user.ts | fakegen generate --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	addInputFlags(cmd, opts)
	cmd.Flags().IntP("count", "c", 1, "Number of records to generate")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible output (0 = random)")
	cmd.Flags().String("mode", config.ModeData, "Output mode: data, source or both")
	cmd.Flags().StringP("target", "t", "typescript", "Mock source language: typescript or go")
	cmd.Flags().String("format", config.FormatJSON, "Data format: json or yaml")
	cmd.Flags().String("go-package", "mocks", "Package name of generated Go source")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *Options) error {
	d := a.diagnostics
	d.Header("Generating mocks")

	if a.cfg.Verbose {
		d.Section("Configuration")
		d.List("Mode: %s", a.cfg.Mode)
		d.List("Count: %d", a.cfg.Count)
		if a.cfg.Mode != config.ModeData {
			d.List("Target: %s", strings.ToLower(a.cfg.Target))
		}
		if a.cfg.Seed != 0 {
			d.List("Seed: %d", a.cfg.Seed)
		}
	}

	reporter := NewDiagnosticReporter(cmd.ErrOrStderr(), a.cfg.Verbose)
	generator, err := NewGenerator(a.cfg, d, reporter)
	if err != nil {
		return err
	}
	if err := generator.Run(opts, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return err
	}

	summary := generator.GetSummary()
	stats := []utils.Stat{
		{Key: "Definition", Value: summary.Definition},
		{Key: "Fields", Value: summary.Fields},
	}
	if summary.Records > 0 {
		stats = append(stats, utils.Stat{Key: "Records", Value: summary.Records})
	}
	if summary.Skipped > 0 {
		stats = append(stats, utils.Stat{Key: "Skipped fields", Value: summary.Skipped})
	}
	if a.cfg.Verbose {
		stats = append(stats, utils.Stat{Key: "Elapsed", Value: summary.Elapsed.Round(time.Microsecond)})
	}
	d.Summary("Summary", stats...)
	d.Done("Generation complete")
	return nil
}

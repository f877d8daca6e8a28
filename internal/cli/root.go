package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/fakegen/internal/config"
	"github.com/toyz/fakegen/internal/utils"
)

// app carries the state shared by all commands of one invocation
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile  string
	cfg         *config.Config
	diagnostics *utils.DiagnosticSystem
}

// Execute runs the fakegen command line and returns the process exit code
func Execute(ctx context.Context) int {
	return Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command line with explicit arguments and streams
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		verbose := a.cfg != nil && a.cfg.Verbose
		NewDiagnosticReporter(stderr, verbose).ReportError(err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fakegen",
		Short: "Generate mock data from TypeScript interface definitions",
		Long: `fakegen - realistic mock data from TypeScript interface definitions.

fakegen reads one 'interface Name { ... }' or 'type Name = { ... }' definition
and produces records whose values are chosen from the field names and types
(emails for email fields, UUIDs for ids, recent dates for timestamps), or the
source of a mock factory in TypeScript (faker.js) or Go (gofakeit).

Available commands:
  generate - Generate mock data and/or mock factory source
  parse    - Print the parsed property tree
  serve    - Expose generation as an MCP tool or an HTTP API

Examples:
  fakegen generate -i 'interface User { id: string; email: string }'
  fakegen generate -f user.ts -c 10 -o users.json
  fakegen generate -f user.ts --mode source --target go
  fakegen serve mcp`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: ./fakegen.yaml if present)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output and detailed error reporting")
	root.PersistentFlags().BoolP("quiet", "q", false, "Only show errors and final results")

	root.AddCommand(a.generateCommand())
	root.AddCommand(a.parseCommand())
	root.AddCommand(a.serveCommand())
	return root
}

// load layers defaults, config file, environment and flags into a.cfg
func (a *app) load(cmd *cobra.Command, _ []string) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	switch {
	case cfg.Quiet:
		a.diagnostics = utils.NewQuietDiagnostics()
	case cfg.Verbose:
		a.diagnostics = utils.NewVerboseDiagnostics()
	default:
		a.diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if a.stderr != io.Writer(os.Stderr) {
		a.diagnostics.WithWriter(a.stderr)
	}
	return nil
}

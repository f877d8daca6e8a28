package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyz/fakegen/internal/server"
)

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose mock generation as an MCP tool or an HTTP API",
	}
	cmd.PersistentFlags().Bool("log-json", false, "Write structured JSON logs")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible output (0 = random)")

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the generate_mock_data tool over MCP stdio",
		Long: `Serve the generate_mock_data tool over the Model Context Protocol on
stdin and stdout. Logs are written to stderr.

The tool takes an 'interface' definition and an optional 'count' and returns
the mock factory together with example data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			return server.NewMCPServer(svc).ServeStdio()
		},
	}

	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the JSON API",
		Long: `Serve the JSON API:

  POST /v1/mock   {"interface": "...", "count": 3, "mode": "data|source|both", "target": "typescript|go", "seed": 0}
  POST /v1/parse  {"interface": "..."}
  GET  /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.NewHTTPServer(svc).Start(ctx, a.cfg.Server.HTTPAddr)
		},
	}
	httpCmd.Flags().String("addr", ":8089", "Listen address")

	cmd.AddCommand(mcpCmd, httpCmd)
	return cmd
}

func (a *app) service() (*server.Service, error) {
	logger, err := server.NewLogger(a.cfg.Server)
	if err != nil {
		return nil, err
	}
	return server.NewService(a.cfg, logger), nil
}

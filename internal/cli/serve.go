package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/boardgraph/internal/server"
	"github.com/matzehuels/boardgraph/pkg/observability"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the relation graph API. The listen address, renderer and cache
come from the configuration; --addr overrides server.addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr != "" {
				c.Config.Server.Addr = addr
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			logger := loggerFromContext(ctx)
			if c.verbose {
				observability.SetHTTPHooks(httpLogHooks{logger: logger})
			}
			logger.Info("starting server",
				"renderer", runner.Renderer.Name(),
				"cache", c.Config.Cache.Backend,
				"timeout", c.Config.Server.RequestTimeout.Duration)

			srv := server.New(server.Options{
				Runner:         runner,
				Logger:         logger,
				RequestTimeout: c.Config.Server.RequestTimeout.Duration,
			})
			return srv.ListenAndServe(ctx, c.Config.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8000)")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pydex/pydex/internal/server"
)

// serveCommand creates the serve command: the pipeline behind an HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		cacheBackend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve package metadata and examples over HTTP",
		Long: `Start an HTTP server exposing the pipeline as a JSON API.

Endpoints:
  GET /healthz
  GET /api/v1/packages/{name}            full metadata and examples
  GET /api/v1/packages/{name}/examples   examples only

Both package endpoints accept ?version= and ?refresh=1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			svc, err := c.newService(ctx, cacheBackend, false)
			if err != nil {
				return err
			}

			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			return server.New(svc, addr, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().StringVar(&cacheBackend, "cache", "", "cache backend: file, redis, or none")

	return cmd
}

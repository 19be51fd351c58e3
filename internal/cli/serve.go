package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyunparse/pkg/buildinfo"
	pyerrors "github.com/matzehuels/pyunparse/pkg/errors"
)

// shutdownTimeout bounds how long in-flight requests may finish after a signal.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer over HTTP",
		Long: `Serve the renderer over HTTP.

Endpoints:
  POST /v1/unparse   render a JSON tree (query: indent, raw_strings, refresh)
  POST /v1/tree      draw a JSON tree (query: format, max_depth, detailed)
  GET  /healthz      build information

Every response carries an X-Request-ID header. Errors are JSON objects with a
machine-readable code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if err := pyerrors.ValidateAddr(addr); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config: :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	s := &server{
		runner:   runner,
		logger:   c.Logger,
		defaults: c.renderOptions(),
		maxBody:  c.Config.Server.MaxBodyBytes,
	}
	httpServer := &http.Server{
		Addr:        addr,
		Handler:     s.handler(),
		ReadTimeout: c.Config.Server.ReadTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "version", buildinfo.Version, "cache", c.Config.Cache.Backend)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

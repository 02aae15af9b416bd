package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wallcable/internal/api"
	"github.com/matzehuels/wallcable/pkg/cache"
	"github.com/matzehuels/wallcable/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		prefix   string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes the cabling engine over HTTP:

  POST /v1/cabling   cable schedule of a wall
  POST /v1/bom       bill of materials
  POST /v1/diagram   wall diagram (svg, dot or json)

Results are cached in the local cache directory, or in Redis with --redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ch, keyer, err := c.serveCache(ctx, noCache, redisURL, prefix)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(ch, keyer, c.Logger)
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.New(runner, c.Logger).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return c.listen(ctx, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the shared result cache (redis://host:6379/0)")
	cmd.Flags().StringVar(&prefix, "prefix", appName, "key prefix in Redis")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) serveCache(ctx context.Context, noCache bool, redisURL, prefix string) (cache.Cache, cache.Keyer, error) {
	if noCache || redisURL == "" {
		ch, err := newCache(noCache)
		return ch, nil, err
	}
	rc, err := cache.NewRedisCache(ctx, redisURL)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Info("using redis cache", "prefix", prefix)
	return rc, cache.NewScopedKeyer(nil, prefix+":"), nil
}

// listen serves until ctx is canceled, then shuts down gracefully.
func (c *CLI) listen(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

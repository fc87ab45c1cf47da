package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notewall/internal/server"
	"github.com/matzehuels/notewall/pkg/cache"
	"github.com/matzehuels/notewall/pkg/observability"
	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		metrics bool
		redis   cache.RedisConfig
		src     sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "serve [notes.json]",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

GET /v1/wall lays out the configured notes (a JSON file argument or
--mongo-uri). POST /v1/layout lays out the notes in the request body and
works without a configured source. With --redis-addr computed walls are
cached in Redis and shared between instances.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newServeRunner(ctx, args, &src, redis)
			if err != nil {
				return err
			}
			defer runner.Close()

			var (
				hooks observability.Multi
				opts  []server.Option
			)
			if metrics {
				reg := prometheus.NewRegistry()
				hooks = append(hooks, observability.NewPromHooks(reg, appName))
				opts = append(opts, server.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
			}
			if c.Logger.GetLevel() <= log.DebugLevel {
				hooks = append(hooks, observability.NewLogHooks(c.Logger))
			}
			if len(hooks) > 0 {
				hooks.Register()
				defer observability.Reset()
			}

			printInfo("Serving on %s", StyleLink.Render("http://"+displayAddr(addr)))
			return server.New(runner, c.Logger, opts...).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr(envListenAddr, ":8080"), "listen address (env "+envListenAddr+")")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "expose Prometheus metrics at /metrics")
	cmd.Flags().StringVar(&redis.Addr, "redis-addr", os.Getenv(envRedisAddr), "Redis address for the wall cache (env "+envRedisAddr+")")
	cmd.Flags().StringVar(&redis.Password, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&redis.DB, "redis-db", 0, "Redis database number")
	src.register(cmd)

	return cmd
}

// newServeRunner wires the source and the shared cache. Without a file or
// --mongo-uri the server still answers POST /v1/layout.
func (c *CLI) newServeRunner(ctx context.Context, args []string, src *sourceFlags, rc cache.RedisConfig) (*pipeline.Runner, error) {
	var s source.Source
	if len(args) > 0 || src.mongo.URI != "" {
		var err error
		if s, err = src.open(ctx, args); err != nil {
			return nil, err
		}
	} else {
		printWarning("No note source configured; GET /v1/wall will fail")
	}

	th, err := c.loadTheme()
	if err != nil {
		closeSource(s)
		return nil, err
	}

	var wc cache.Cache = cache.NewNullCache()
	if rc.Addr != "" {
		rcache, err := cache.NewRedisCache(ctx, rc)
		if err != nil {
			closeSource(s)
			return nil, err
		}
		c.Logger.Info("wall cache", "backend", "redis", "addr", rc.Addr)
		wc = rcache
	}

	runner := pipeline.NewRunner(s, wc, th, c.Logger)
	runner.Keyer = cache.NewScopedKeyer(runner.Keyer, appName+":")
	return runner, nil
}

func closeSource(s source.Source) {
	if s != nil {
		s.Close()
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

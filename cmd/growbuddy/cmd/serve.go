package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/growbuddy/modules/api"
	"github.com/dmitrymomot/growbuddy/pkg/httpserver"
	"github.com/dmitrymomot/growbuddy/pkg/logger"
	"github.com/dmitrymomot/growbuddy/pkg/metrics"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var (
				collector *metrics.Collector
				rec       metrics.Recorder = metrics.Nop{}
			)
			if a.cfg.MetricsEnabled {
				collector = metrics.NewCollector()
				rec = collector
			}

			g := a.newGarden(rec)
			if a.cfg.LoadDemo {
				results := g.LoadDemo(ctx)
				a.log.InfoContext(ctx, "demo data loaded", logger.Count(len(results)))
			}

			router := api.Router(api.RouterOptions{
				API:     api.NewService(g, a.log),
				Metrics: collector,
				Logger:  a.log,
			})

			opts := []httpserver.Option{httpserver.WithLogger(a.log)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			return httpserver.NewFromConfig(a.cfg.HTTP, opts...).Run(ctx, router)
		},
	}
	c.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return c
}

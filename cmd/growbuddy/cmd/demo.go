package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/growbuddy/pkg/metrics"
	"github.com/dmitrymomot/growbuddy/pkg/report"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load the demo plants and print the statistics report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.newGarden(metrics.Nop{})
			results := g.LoadDemo(cmd.Context())

			p := report.New(cmd.OutOrStdout())
			if err := p.Demo(results, g.Len()); err != nil {
				return err
			}
			return p.Stats(g.Stats(), validator.Default())
		},
	}
}

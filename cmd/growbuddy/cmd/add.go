package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/growbuddy/pkg/form"
	"github.com/dmitrymomot/growbuddy/pkg/metrics"
	"github.com/dmitrymomot/growbuddy/pkg/report"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Enter a plant interactively and print its validation report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			driver := a.prompts
			if driver == nil {
				driver = form.NewSurveyDriver()
			}

			record, err := form.New(driver).Run(cmd.Context())
			if errors.Is(err, form.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}

			g := a.newGarden(metrics.Nop{})
			p, err := g.Add(cmd.Context(), record)
			if err != nil {
				return err
			}
			r, err := g.Report(p.ID)
			if err != nil {
				return err
			}
			return report.New(cmd.OutOrStdout()).Plant(p, r)
		},
	}
}

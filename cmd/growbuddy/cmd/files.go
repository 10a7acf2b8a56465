package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/growbuddy/pkg/importer"
	"github.com/dmitrymomot/growbuddy/pkg/logger"
	"github.com/dmitrymomot/growbuddy/pkg/metrics"
	"github.com/dmitrymomot/growbuddy/pkg/report"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func newBatchCmd(a *app) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "batch <file>",
		Short: "Audit a batch of plant records",
		Long: `Validate every record in a JSON, YAML or TOML file and print a summary.
The format is chosen by file extension. Nothing is stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			res := a.newGarden(metrics.Nop{}).ValidateBatch(cmd.Context(), records)
			a.log.InfoContext(cmd.Context(), "batch audited",
				logger.Count(res.Total),
				"valid", res.Valid,
				"invalid", res.Invalid,
			)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return report.New(cmd.OutOrStdout()).Batch(res)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return c
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Build plants from a batch file and print garden statistics",
		Long: `Create a plant from every valid record in a JSON, YAML or TOML file and
print the garden statistics report. Rejected records are logged and
skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			g := a.newGarden(metrics.Nop{})
			for i, record := range records {
				if _, err := g.Add(cmd.Context(), record); err != nil {
					a.log.WarnContext(cmd.Context(), "record skipped", logger.RecordIndex(i), logger.Error(err))
				}
			}
			if g.Len() < len(records) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d records skipped\n", len(records)-g.Len(), len(records))
			}

			return report.New(cmd.OutOrStdout()).Stats(g.Stats(), validator.Default())
		},
	}
}

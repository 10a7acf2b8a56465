package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/growbuddy/pkg/config"
	"github.com/dmitrymomot/growbuddy/pkg/form"
	"github.com/dmitrymomot/growbuddy/pkg/garden"
	"github.com/dmitrymomot/growbuddy/pkg/logger"
	"github.com/dmitrymomot/growbuddy/pkg/metrics"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// ErrCheckFailed makes the process exit non-zero without printing an
// error; the command has already reported the failure.
var ErrCheckFailed = errors.New("check failed")

// Option configures the root command.
type Option func(*app)

// WithPromptDriver replaces the terminal driver used by the add command.
func WithPromptDriver(d form.PromptDriver) Option {
	return func(a *app) {
		if d != nil {
			a.prompts = d
		}
	}
}

type app struct {
	cfg     AppConfig
	log     *slog.Logger
	prompts form.PromptDriver
}

// newGarden returns an empty garden wired to the app logger and rec.
func (a *app) newGarden(rec metrics.Recorder) *garden.Garden {
	return garden.New(
		garden.WithLogger(a.log),
		garden.WithRecorder(rec),
		garden.WithValidator(validator.New(nil)),
	)
}

// NewRootCmd builds the growbuddy command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{log: logger.Discard()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "growbuddy",
		Short: "Plant record validation toolkit",
		Long: `growbuddy validates plant records against a fixed catalog of field
patterns, builds plants with generated ids and coerced stats, and reports
on a garden of them.

Configuration is read from the environment (APP_ENV, LOG_LEVEL,
LOG_FORMAT, HTTP_ADDR, METRICS_ENABLED, GARDEN_LOAD_DEMO) and an optional
.env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := newLogger(a.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	root.AddCommand(
		newPatternsCmd(),
		newCheckCmd(a),
		newExtractCmd(),
		newBatchCmd(a),
		newStatsCmd(a),
		newDemoCmd(a),
		newAddCmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the command tree with ctx and reports errors on stderr.
func Execute(ctx context.Context, opts ...Option) error {
	root := NewRootCmd(opts...)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrCheckFailed) {
		root.PrintErrln("Error:", err)
	}
	return err
}

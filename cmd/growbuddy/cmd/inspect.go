package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/growbuddy/pkg/analyzer"
	"github.com/dmitrymomot/growbuddy/pkg/logger"
	"github.com/dmitrymomot/growbuddy/pkg/report"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the validation pattern catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.New(cmd.OutOrStdout()).Patterns(validator.Default())
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	var examples bool

	c := &cobra.Command{
		Use:   "check <field> [value]",
		Short: "Test a value against a catalog pattern",
		Long: `Test a value against the pattern registered for field and print VALID
or INVALID. The command exits non-zero when the value does not match.

With --examples the built-in sample inputs for the field are checked
instead (name, owner_email, location and disease_name have samples).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := validator.Field(args[0])
			v := validator.New(nil)
			if _, ok := v.Rule(field); !ok {
				return fmt.Errorf("%w: %s", validator.ErrUnknownField, field)
			}

			p := report.New(cmd.OutOrStdout())
			if examples {
				samples, ok := validator.Examples[field]
				if !ok {
					return fmt.Errorf("no examples for field %s", field)
				}
				for _, sample := range samples {
					valid, msg := v.Field(field, sample)
					if err := p.Check(field, sample, valid, msg); err != nil {
						return err
					}
				}
				return nil
			}

			if len(args) != 2 {
				return fmt.Errorf("check %s: a value is required unless --examples is set", field)
			}
			valid, msg := v.Field(field, args[1])
			a.log.DebugContext(cmd.Context(), "pattern checked", logger.Field(string(field)), "valid", valid)
			if err := p.Check(field, args[1], valid, msg); err != nil {
				return err
			}
			if !valid {
				return ErrCheckFailed
			}
			return nil
		},
	}
	c.Flags().BoolVar(&examples, "examples", false, "check the built-in sample inputs for the field")
	return c
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "extract <mentions|dates|numbers> <text>...",
		Short:     "Extract plant mentions, dates or numbers from text",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"mentions", "dates", "numbers"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")

			var found []string
			switch args[0] {
			case "mentions":
				found = analyzer.ExtractPlantMentions(text)
			case "dates":
				found = validator.ExtractMatches(text, validator.DateMentionPattern)
			case "numbers":
				found = analyzer.ExtractNumbers(text)
			default:
				return fmt.Errorf("unknown extraction %q: use mentions, dates or numbers", args[0])
			}

			for _, s := range found {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

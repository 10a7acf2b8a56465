package garden

import (
	"log/slog"

	"github.com/dmitrymomot/growbuddy/pkg/metrics"
	"github.com/dmitrymomot/growbuddy/pkg/plant"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// Option configures a Garden.
type Option func(*Garden)

func WithLogger(l *slog.Logger) Option {
	return func(g *Garden) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRecorder sets the metrics sink. Nil keeps metrics.Nop.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Garden) {
		if r != nil {
			g.rec = r
		}
	}
}

// WithValidator sets the validator used for records and care actions.
func WithValidator(v *validator.Validator) Option {
	return func(g *Garden) {
		if v != nil {
			g.v = v
		}
	}
}

// WithPlantOptions passes options to every plant.New call, for example a
// fixed clock in tests.
func WithPlantOptions(opts ...plant.Option) Option {
	return func(g *Garden) {
		g.plantOpts = append(g.plantOpts, opts...)
	}
}

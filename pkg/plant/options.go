package plant

import (
	"math/rand/v2"
	"time"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// Option configures a Plant at construction time.
type Option func(*Plant)

// WithClock sets the time source used for creation and care timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Plant) {
		if now != nil {
			p.now = now
		}
	}
}

// WithRand sets the random source used for IDs and disease severity.
func WithRand(r *rand.Rand) Option {
	return func(p *Plant) {
		p.rng = r
	}
}

// WithValidator sets the validator used for construction and care actions.
func WithValidator(v *validator.Validator) Option {
	return func(p *Plant) {
		if v != nil {
			p.v = v
		}
	}
}

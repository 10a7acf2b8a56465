package garden

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/growbuddy/pkg/analyzer"
	"github.com/dmitrymomot/growbuddy/pkg/logger"
	"github.com/dmitrymomot/growbuddy/pkg/metrics"
	"github.com/dmitrymomot/growbuddy/pkg/plant"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// maxIDAttempts bounds retries when a generated ID is already taken.
const maxIDAttempts = 16

// Garden is a concurrency safe plant collection.
type Garden struct {
	mu     sync.RWMutex
	plants []*plant.Plant
	byID   map[string]*plant.Plant

	v         *validator.Validator
	log       *slog.Logger
	rec       metrics.Recorder
	plantOpts []plant.Option
}

// New returns an empty garden.
func New(opts ...Option) *Garden {
	g := &Garden{
		byID: make(map[string]*plant.Plant),
		v:    validator.New(nil),
		log:  logger.Discard(),
		rec:  metrics.Nop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("garden"))
	return g
}

// Validator returns the validator the garden checks records with.
func (g *Garden) Validator() *validator.Validator {
	return g.v
}

// Add builds a plant from record and stores it. Construction errors come
// from plant.New and wrap plant.ErrInvalidPlant.
func (g *Garden) Add(ctx context.Context, record validator.Record) (*plant.Plant, error) {
	opts := append([]plant.Option{plant.WithValidator(g.v)}, g.plantOpts...)

	g.mu.Lock()
	defer g.mu.Unlock()

	for range maxIDAttempts {
		p, err := plant.New(record, opts...)
		if err != nil {
			g.rec.PlantRejected()
			g.log.InfoContext(ctx, "plant rejected", logger.Error(err))
			return nil, err
		}
		if _, taken := g.byID[p.ID]; taken {
			continue
		}
		g.plants = append(g.plants, p)
		g.byID[p.ID] = p
		g.rec.PlantCreated(p.Type)
		g.log.InfoContext(ctx, "plant created", logger.PlantID(p.ID), slog.String("type", p.Type))
		return p.Clone(), nil
	}
	return nil, ErrIDExhausted
}

// Get returns a copy of the plant with id.
func (g *Garden) Get(id string) (*plant.Plant, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlantNotFound, id)
	}
	return p.Clone(), nil
}

// List returns copies of all plants in insertion order.
func (g *Garden) List() []*plant.Plant {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*plant.Plant, 0, len(g.plants))
	for _, p := range g.plants {
		out = append(out, p.Clone())
	}
	return out
}

// Len returns the number of plants.
func (g *Garden) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.plants)
}

// Stats aggregates the current collection.
func (g *Garden) Stats() analyzer.Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return analyzer.Statistics(g.plants)
}

// Report re-validates the plant with id.
func (g *Garden) Report(id string) (plant.Report, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.byID[id]
	if !ok {
		return plant.Report{}, fmt.Errorf("%w: %s", ErrPlantNotFound, id)
	}
	return p.Report(), nil
}

// Validate checks record without storing anything.
func (g *Garden) Validate(ctx context.Context, record validator.Record, fields ...validator.Field) validator.Outcome {
	out := g.v.Record(record, fields...)
	for field, ok := range out.Fields {
		g.rec.FieldChecked(string(field), ok)
	}
	if !out.Valid {
		g.log.DebugContext(ctx, "record failed validation", logger.Count(len(out.Errors)))
	}
	return out
}

// ValidateBatch audits records without storing anything.
func (g *Garden) ValidateBatch(ctx context.Context, records []validator.Record) analyzer.BatchResult {
	res := analyzer.ValidateBatchWith(g.v, records)
	g.rec.BatchValidated(res.Valid, res.Invalid)
	for _, e := range res.Errors {
		g.log.DebugContext(ctx, "batch record rejected", logger.RecordIndex(e.Index), logger.Count(len(e.Errors)))
	}
	return res
}

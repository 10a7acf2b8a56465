package garden

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/growbuddy/pkg/logger"
	"github.com/dmitrymomot/growbuddy/pkg/plant"
)

// Care actions accepted by Care.
const (
	ActionWater   = "water"
	ActionDisease = "disease"
	ActionTrait   = "trait"
	ActionNote    = "note"
	ActionColor   = "color"
	ActionWeather = "weather"
	ActionSeason  = "season"
)

// Care applies a single-argument care action to the plant with id and
// returns the updated plant. A rejected argument leaves the plant unchanged
// and returns an error wrapping plant.ErrInvalidInput.
func (g *Garden) Care(ctx context.Context, id, action, value string) (*plant.Plant, error) {
	return g.mutate(ctx, id, action, func(p *plant.Plant) error {
		switch action {
		case ActionWater:
			return p.Water(value)
		case ActionDisease:
			return p.AddDisease(value)
		case ActionTrait:
			_, err := p.AddTrait(value)
			return err
		case ActionNote:
			return p.AddCareNote(value)
		case ActionColor:
			return p.SetColor(value)
		case ActionWeather:
			return p.LogWeather(value)
		case ActionSeason:
			return p.PlantedIn(value)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownAction, action)
		}
	})
}

// Schedule adds a care reminder to the plant with id.
func (g *Garden) Schedule(ctx context.Context, id, date, clock string) (*plant.Plant, error) {
	return g.mutate(ctx, id, "schedule", func(p *plant.Plant) error {
		return p.Schedule(date, clock)
	})
}

func (g *Garden) mutate(ctx context.Context, id, action string, fn func(*plant.Plant) error) (*plant.Plant, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlantNotFound, id)
	}

	err := fn(p)
	g.rec.CareAction(action, err == nil)
	if err != nil {
		g.log.InfoContext(ctx, "care action rejected", logger.PlantID(id), slog.String("action", action), logger.Error(err))
		return nil, err
	}
	g.log.DebugContext(ctx, "care action applied", logger.PlantID(id), slog.String("action", action))
	return p.Clone(), nil
}

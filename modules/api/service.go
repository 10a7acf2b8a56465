package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/growbuddy/handler"
	"github.com/dmitrymomot/growbuddy/pkg/analyzer"
	"github.com/dmitrymomot/growbuddy/pkg/binder"
	"github.com/dmitrymomot/growbuddy/pkg/garden"
	"github.com/dmitrymomot/growbuddy/pkg/plant"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// careActions maps the plant sub-resource in the URL to a garden action.
var careActions = map[string]string{
	"water":    garden.ActionWater,
	"diseases": garden.ActionDisease,
	"traits":   garden.ActionTrait,
	"notes":    garden.ActionNote,
	"color":    garden.ActionColor,
	"weather":  garden.ActionWeather,
	"season":   garden.ActionSeason,
}

// Service exposes a garden over JSON HTTP.
type Service struct {
	garden       *garden.Garden
	v            *validator.Validator
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService returns a Service backed by g. Binding errors are logged to log.
func NewService(g *garden.Garden, log *slog.Logger) *Service {
	return &Service{
		garden:       g,
		v:            g.Validator(),
		errorHandler: handler.NewErrorHandler(log),
	}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/patterns", handler.Wrap(s.patterns,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/patterns/{field}/test", handler.Wrap(s.testPattern,
		handler.WithBinders[handler.Context, PatternTestRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, PatternTestRequest](s.errorHandler),
	))

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, validator.Record](binder.Record()),
		handler.WithErrorHandler[handler.Context, validator.Record](s.errorHandler),
	))
	r.Post("/validate/batch", handler.Wrap(s.validateBatch,
		handler.WithBinders[handler.Context, []validator.Record](binder.JSON()),
		handler.WithErrorHandler[handler.Context, []validator.Record](s.errorHandler),
	))
	r.Post("/extract", handler.Wrap(s.extract,
		handler.WithBinders[handler.Context, ExtractRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, ExtractRequest](s.errorHandler),
	))

	r.Route("/plants", func(r chi.Router) {
		r.Get("/", handler.Wrap(s.listPlants,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
		r.Post("/", handler.Wrap(s.createPlant,
			handler.WithBinders[handler.Context, validator.Record](binder.Record()),
			handler.WithErrorHandler[handler.Context, validator.Record](s.errorHandler),
		))
		r.Get("/{id}", handler.Wrap(s.getPlant,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
		r.Get("/{id}/report", handler.Wrap(s.plantReport,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
		r.Post("/{id}/reminders", handler.Wrap(s.schedule,
			handler.WithBinders[handler.Context, ReminderRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, ReminderRequest](s.errorHandler),
		))
		r.Post("/{id}/{action}", handler.Wrap(s.care,
			handler.WithBinders[handler.Context, CareRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, CareRequest](s.errorHandler),
		))
	})

	r.Get("/stats", handler.Wrap(s.stats,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) patterns(_ handler.Context, _ struct{}) handler.Response {
	rules := s.v.Catalog().Rules()
	out := make([]PatternView, 0, len(rules))
	for _, rule := range rules {
		out = append(out, newPatternView(rule))
	}
	return handler.JSON(out)
}

func (s *Service) testPattern(ctx handler.Context, req PatternTestRequest) handler.Response {
	field := validator.Field(chi.URLParam(ctx.Request(), "field"))
	if _, ok := s.v.Rule(field); !ok {
		return handler.JSONError(fmt.Errorf("%w: %s", handler.ErrNotFound, field))
	}
	valid, message := s.v.Field(field, req.Value)
	return handler.JSON(PatternTestResponse{
		Field:   field,
		Value:   req.Value,
		Valid:   valid,
		Message: message,
	})
}

// validate checks only the fields named in the comma separated "fields"
// query parameter, or every plant field when it is absent.
func (s *Service) validate(ctx handler.Context, record validator.Record) handler.Response {
	out := s.garden.Validate(ctx, record, queryFields(ctx.Request())...)
	if !out.Valid {
		return handler.JSONError(out.Err())
	}
	return handler.JSON(out)
}

func (s *Service) validateBatch(ctx handler.Context, records []validator.Record) handler.Response {
	return handler.JSON(s.garden.ValidateBatch(ctx, records))
}

func (s *Service) extract(_ handler.Context, req ExtractRequest) handler.Response {
	return handler.JSON(ExtractResponse{
		Mentions: analyzer.ExtractPlantMentions(req.Text),
		Dates:    validator.ExtractMatches(req.Text, validator.DateMentionPattern),
		Numbers:  analyzer.ExtractNumbers(req.Text),
	})
}

func (s *Service) listPlants(_ handler.Context, _ struct{}) handler.Response {
	plants := s.garden.List()
	return handler.JSON(plants, handler.WithJSONMeta(map[string]any{"total": len(plants)}))
}

func (s *Service) createPlant(ctx handler.Context, record validator.Record) handler.Response {
	p, err := s.garden.Add(ctx, record)
	if err != nil {
		return handler.JSONError(apiError(err))
	}
	return handler.JSON(p, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) getPlant(ctx handler.Context, _ struct{}) handler.Response {
	p, err := s.garden.Get(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.JSONError(apiError(err))
	}
	return handler.JSON(p)
}

func (s *Service) plantReport(ctx handler.Context, _ struct{}) handler.Response {
	report, err := s.garden.Report(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.JSONError(apiError(err))
	}
	return handler.JSON(report)
}

func (s *Service) care(ctx handler.Context, req CareRequest) handler.Response {
	action, ok := careActions[chi.URLParam(ctx.Request(), "action")]
	if !ok {
		return handler.JSONError(fmt.Errorf("%w: %s", handler.ErrNotFound, ctx.Request().URL.Path))
	}
	p, err := s.garden.Care(ctx, chi.URLParam(ctx.Request(), "id"), action, req.Value)
	if err != nil {
		return handler.JSONError(apiError(err))
	}
	return handler.JSON(p)
}

func (s *Service) schedule(ctx handler.Context, req ReminderRequest) handler.Response {
	p, err := s.garden.Schedule(ctx, chi.URLParam(ctx.Request(), "id"), req.Date, req.Time)
	if err != nil {
		return handler.JSONError(apiError(err))
	}
	return handler.JSON(p)
}

func (s *Service) stats(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(s.garden.Stats())
}

// apiError maps garden and plant errors onto HTTP errors. Validation
// failures pass through and render as 422 with field details.
func apiError(err error) error {
	switch {
	case errors.Is(err, garden.ErrPlantNotFound):
		return fmt.Errorf("%w: %v", handler.ErrNotFound, err)
	case errors.Is(err, garden.ErrUnknownAction):
		return fmt.Errorf("%w: %v", handler.ErrBadRequest, err)
	case errors.Is(err, garden.ErrIDExhausted):
		return fmt.Errorf("%w: %v", handler.ErrServiceUnavailable, err)
	case errors.Is(err, plant.ErrInvalidPlant):
		return err
	case errors.Is(err, plant.ErrInvalidInput):
		return fmt.Errorf("%w: %v", handler.ErrUnprocessableEntity, err)
	}
	return err
}

func queryFields(r *http.Request) []validator.Field {
	raw := r.URL.Query().Get("fields")
	if raw == "" {
		return nil
	}
	var fields []validator.Field
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			fields = append(fields, validator.Field(part))
		}
	}
	return fields
}

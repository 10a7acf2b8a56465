package plant

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// Care history entry kinds.
const (
	KindManualNote = "manual_note"
	KindWeather    = "weather"
	KindSeason     = "season"
	KindColor      = "color"
	KindSchedule   = "scheduled"
)

// Stat record keys accepted by New.
const (
	StatHealth     = "health"
	StatWaterLevel = "water_level"
	StatNutrients  = "nutrients"
	StatSunlight   = "sunlight"
)

// Disease is a diagnosed condition.
type Disease struct {
	Name          string `json:"name"`
	DiagnosedDate string `json:"diagnosed_date"`
	Severity      int    `json:"severity"`
}

// CareEntry is one line of a plant's care history.
type CareEntry struct {
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
	Kind      string `json:"type"`
}

// Reminder is a scheduled care slot.
type Reminder struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Plant is a validated plant record.
type Plant struct {
	ID         string    `json:"plant_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_date"`
	CareNotes  string    `json:"care_notes,omitempty"`
	Location   string    `json:"location,omitempty"`
	OwnerEmail string    `json:"owner_email,omitempty"`

	Health     float64 `json:"health"`
	WaterLevel float64 `json:"water_level"`
	Nutrients  float64 `json:"nutrients"`
	Sunlight   float64 `json:"sunlight"`

	Color     string      `json:"color,omitempty"`
	Season    string      `json:"season,omitempty"`
	Diseases  []Disease   `json:"diseases"`
	History   []CareEntry `json:"care_history"`
	Traits    []string    `json:"special_traits"`
	Reminders []Reminder  `json:"reminders,omitempty"`

	now func() time.Time
	rng *rand.Rand
	v   *validator.Validator
}

// New validates record and builds a plant from it. The record must carry
// name and type; care_notes, location and owner_email are optional. Stat keys
// (health, water_level, nutrients, sunlight) are coerced with CoerceStat.
//
// On failure the returned error wraps ErrInvalidPlant and the
// validator.ValidationErrors describing every violated field.
func New(record validator.Record, opts ...Option) (*Plant, error) {
	p := &Plant{
		now:       time.Now,
		v:         validator.New(nil),
		Diseases:  []Disease{},
		History:   []CareEntry{},
		Traits:    []string{},
		Reminders: []Reminder{},
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(record); err != nil {
		return nil, err
	}

	p.ID = generateID(intn(p.rng), p.matcher(validator.FieldPlantID))
	p.Name, _ = record.Text(validator.FieldName)
	p.Type, _ = record.Text(validator.FieldType)
	p.CareNotes, _ = record.Text(validator.FieldCareNotes)
	p.Location, _ = record.Text(validator.FieldLocation)
	p.OwnerEmail, _ = record.Text(validator.FieldEmail)
	p.CreatedAt = p.now()

	catalog := p.v.Catalog()
	p.Health = coerceStat(catalog, record[StatHealth])
	p.WaterLevel = coerceStat(catalog, record[StatWaterLevel])
	p.Nutrients = coerceStat(catalog, record[StatNutrients])
	p.Sunlight = coerceStat(catalog, record[StatSunlight])

	return p, nil
}

func (p *Plant) validate(record validator.Record) error {
	var required []validator.Rule
	for _, field := range []validator.Field{validator.FieldName, validator.FieldType} {
		if rule, ok := p.v.Rule(field); ok {
			required = append(required, validator.Required(rule, record))
		}
	}
	errs := validator.ExtractValidationErrors(validator.Apply(required...))

	out := p.v.Record(record)
	errs = append(errs, validator.ExtractValidationErrors(out.Err())...)
	if len(errs) == 0 {
		return nil
	}
	return &InvalidError{Errors: errs}
}

// InvalidError reports a rejected candidate record.
type InvalidError struct {
	Errors validator.ValidationErrors
}

func (e *InvalidError) Error() string {
	return ErrInvalidPlant.Error() + ": " + strings.Join(e.Errors.Messages(), "; ")
}

func (e *InvalidError) Unwrap() []error {
	return []error{ErrInvalidPlant, e.Errors}
}

// matcher returns the match function of the validator's rule for field.
// A field missing from the catalog matches nothing.
func (p *Plant) matcher(field validator.Field) func(string) bool {
	rule, ok := p.v.Rule(field)
	if !ok {
		return func(string) bool { return false }
	}
	return rule.Match
}

// check validates value against field's rule and returns an error wrapping
// ErrInvalidInput when it does not pass.
func (p *Plant) check(field validator.Field, value string) error {
	ok, msg := p.v.Field(field, value)
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// IsInvalid reports whether err is a construction failure.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidPlant)
}

// Clone returns a deep copy of p that shares no slices with it.
func (p *Plant) Clone() *Plant {
	c := *p
	c.Diseases = slices.Clone(p.Diseases)
	c.History = slices.Clone(p.History)
	c.Traits = slices.Clone(p.Traits)
	c.Reminders = slices.Clone(p.Reminders)
	return &c
}

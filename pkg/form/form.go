package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/growbuddy/pkg/sanitizer"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

const defaultAttempts = 3

// Option configures a Form.
type Option func(*Form)

// WithValidator replaces the default-catalog validator. Nil is ignored.
func WithValidator(v *validator.Validator) Option {
	return func(f *Form) {
		if v != nil {
			f.v = v
		}
	}
}

// WithAttempts bounds how often a prompt is repeated after invalid input.
// Values below one are ignored.
func WithAttempts(n int) Option {
	return func(f *Form) {
		if n > 0 {
			f.attempts = n
		}
	}
}

// Form collects a plant record through a PromptDriver.
type Form struct {
	driver   PromptDriver
	v        *validator.Validator
	attempts int
}

// New returns a Form that prompts through driver.
func New(driver PromptDriver, opts ...Option) *Form {
	f := &Form{
		driver:   driver,
		v:        validator.New(nil),
		attempts: defaultAttempts,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run asks for every plant field and returns the assembled record.
// Optional fields are stored as empty strings when skipped.
func (f *Form) Run(ctx context.Context) (validator.Record, error) {
	record := validator.Record{}

	name, err := f.input(ctx, validator.FieldName, "Plant name:", false)
	if err != nil {
		return nil, err
	}
	record[string(validator.FieldName)] = name

	kind, err := f.choose(ctx, validator.FieldType, "Plant type:", validator.PlantTypes)
	if err != nil {
		return nil, err
	}
	record[string(validator.FieldType)] = kind

	notes, err := f.textArea(ctx, validator.FieldCareNotes, "Care notes (optional):")
	if err != nil {
		return nil, err
	}
	record[string(validator.FieldCareNotes)] = notes

	location, err := f.input(ctx, validator.FieldLocation, "Location (optional, City, State/Country):", true)
	if err != nil {
		return nil, err
	}
	record[string(validator.FieldLocation)] = location

	email, err := f.input(ctx, validator.FieldEmail, "Owner email (optional):", true)
	if err != nil {
		return nil, err
	}
	record[string(validator.FieldEmail)] = email

	out := f.v.Record(record)
	if !out.Valid {
		return record, fmt.Errorf("%w: %w", ErrInvalidRecord, out.Err())
	}
	return record, nil
}

func (f *Form) input(ctx context.Context, field validator.Field, message string, optional bool) (string, error) {
	check := f.check(field, optional, sanitizer.Trim)
	return f.ask(ctx, field, sanitizer.Trim, check, func() (string, error) {
		return f.driver.Input(ctx, InputConfig{
			Message:   message,
			Help:      f.help(field),
			Validator: check,
		})
	})
}

func (f *Form) textArea(ctx context.Context, field validator.Field, message string) (string, error) {
	check := f.check(field, true, sanitizer.FormInput)
	return f.ask(ctx, field, sanitizer.FormInput, check, func() (string, error) {
		return f.driver.TextArea(ctx, TextAreaConfig{
			Message:   message,
			Help:      f.help(field),
			Validator: check,
		})
	})
}

func (f *Form) choose(ctx context.Context, field validator.Field, message string, options []string) (string, error) {
	check := f.check(field, false, sanitizer.Trim)
	return f.ask(ctx, field, sanitizer.Trim, check, func() (string, error) {
		idx, err := f.driver.Select(ctx, SelectConfig{
			Message: message,
			Options: options,
			Help:    f.help(field),
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(options) {
			return "", nil
		}
		return options[idx], nil
	})
}

// ask repeats prompt until check accepts the cleaned answer. The answer is
// checked again after the driver returns, so a driver that ignores the
// validator still cannot return bad input.
func (f *Form) ask(ctx context.Context, field validator.Field, clean func(string) string, check func(string) error, prompt func() (string, error)) (string, error) {
	for range f.attempts {
		answer, err := prompt()
		if err != nil {
			return "", err
		}
		answer = clean(answer)
		verr := check(answer)
		if verr == nil {
			return answer, nil
		}
		if err := f.driver.Info(ctx, verr.Error()); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTooManyAttempts, field)
}

func (f *Form) check(field validator.Field, optional bool, clean func(string) string) func(string) error {
	return func(answer string) error {
		answer = clean(answer)
		if optional && answer == "" {
			return nil
		}
		rule, ok := f.v.Rule(field)
		if !ok {
			return fmt.Errorf("%w: %s", validator.ErrUnknownField, field)
		}
		if !rule.Match(answer) {
			return errors.New(rule.Message)
		}
		return nil
	}
}

func (f *Form) help(field validator.Field) string {
	rule, ok := f.v.Rule(field)
	if !ok {
		return ""
	}
	return rule.Description
}

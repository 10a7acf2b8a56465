package validator

import (
	"slices"

	"github.com/dmitrymomot/growbuddy/pkg/sanitizer"
)

// Record is a candidate record: field name to raw value as supplied by a
// form, a batch file or an API request.
type Record map[string]any

// Text returns the value under field when it is a string.
func (r Record) Text(field Field) (string, bool) {
	s, ok := r[string(field)].(string)
	return s, ok
}

// PlantFields are the record fields checked when no field list is given.
var PlantFields = []Field{FieldName, FieldType, FieldCareNotes, FieldLocation, FieldEmail}

// OptionalFields may be absent or empty; when non-empty they must still match.
var OptionalFields = []Field{FieldCareNotes, FieldLocation, FieldEmail}

// IsOptional reports whether f is an optional record field.
func IsOptional(f Field) bool {
	return slices.Contains(OptionalFields, f)
}

// Outcome is the result of validating a record.
type Outcome struct {
	Valid    bool           `json:"valid"`
	Fields   map[Field]bool `json:"fields"`
	Errors   []string       `json:"errors"`
	Warnings []string       `json:"warnings"`

	errs ValidationErrors
}

// Err returns the failures as ValidationErrors, or nil when valid.
func (o Outcome) Err() error {
	if len(o.errs) == 0 {
		return nil
	}
	return o.errs
}

// Validator checks values and records against a catalog.
type Validator struct {
	catalog *Catalog
}

// New returns a Validator bound to c. A nil catalog means Default().
func New(c *Catalog) *Validator {
	if c == nil {
		c = Default()
	}
	return &Validator{catalog: c}
}

// Catalog returns the catalog the validator checks against.
func (v *Validator) Catalog() *Catalog {
	return v.catalog
}

// Rule returns the catalog rule for field.
func (v *Validator) Rule(field Field) (FieldRule, bool) {
	return v.catalog.Lookup(field)
}

// Field validates value against the catalog rule for field.
// Unknown fields fail with a message rather than an error.
func (v *Validator) Field(field Field, value any) (bool, string) {
	rule, ok := v.catalog.Lookup(field)
	if !ok {
		return false, "unknown field " + string(field)
	}
	return ValidateField(value, rule)
}

// Record validates the listed fields of record; with no fields PlantFields
// is used. Absent fields are skipped, empty optional fields are skipped.
func (v *Validator) Record(record Record, fields ...Field) Outcome {
	if len(fields) == 0 {
		fields = PlantFields
	}

	out := Outcome{
		Fields:   make(map[Field]bool, len(fields)),
		Errors:   []string{},
		Warnings: []string{},
	}

	for _, field := range fields {
		value, present := record[string(field)]
		if !present {
			continue
		}
		if IsOptional(field) && isEmpty(value) {
			continue
		}
		rule, ok := v.catalog.Lookup(field)
		if !ok {
			out.Fields[field] = false
			out.errs.Add(ValidationError{
				Field:   string(field),
				Message: "unknown field " + string(field),
				Code:    "validation.unknown_field",
			})
			continue
		}
		err := Apply(MatchesField(rule, value))
		out.Fields[field] = err == nil
		out.errs = append(out.errs, ExtractValidationErrors(err)...)
	}

	out.Errors = append(out.Errors, out.errs.Messages()...)
	out.Valid = len(out.errs) == 0
	return out
}

// ValidateField checks a single value against rule. It fails when value is
// not a string or does not match, and never panics.
func ValidateField(value any, rule FieldRule) (bool, string) {
	s, ok := value.(string)
	if !ok {
		return false, rule.Label + " must be a string"
	}
	if rule.Match(s) {
		return true, ""
	}
	return false, rule.Label + " format is invalid"
}

// ValidateRecord validates record against the default catalog.
func ValidateRecord(record Record, fields ...Field) Outcome {
	return defaultValidator.Record(record, fields...)
}

// ExtractMatches returns every non-overlapping match of p in text.
// The result is empty, not nil, when nothing matches.
func ExtractMatches(text string, p Pattern) []string {
	return p.FindAll(text)
}

// Sanitize keeps only the parts of text that match p.
func Sanitize(text string, p Pattern) string {
	if p.Regexp() == nil {
		return ""
	}
	return sanitizer.KeepMatching(text, p.Regexp())
}

var defaultValidator = New(nil)

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

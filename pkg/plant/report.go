package plant

import "github.com/dmitrymomot/growbuddy/pkg/validator"

// Check is the result of re-validating one stored field.
type Check struct {
	Field   validator.Field `json:"field"`
	Value   string          `json:"value"`
	Valid   bool            `json:"valid"`
	Pattern string          `json:"pattern"`
}

// Report is a re-validation of a stored plant. Field failures are errors,
// invalid diseases or traits are warnings.
type Report struct {
	PlantID  string   `json:"plant_id"`
	Checks   []Check  `json:"validations"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether the plant passed every field check.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

// Report re-validates name, type and ID, the optional fields that are set,
// and the recorded diseases and traits.
func (p *Plant) Report() Report {
	r := Report{
		PlantID:  p.ID,
		Checks:   []Check{},
		Errors:   []string{},
		Warnings: []string{},
	}

	fields := []fieldValue{
		{validator.FieldName, p.Name},
		{validator.FieldType, p.Type},
		{validator.FieldPlantID, p.ID},
	}
	for _, opt := range []fieldValue{
		{validator.FieldCareNotes, p.CareNotes},
		{validator.FieldLocation, p.Location},
		{validator.FieldEmail, p.OwnerEmail},
	} {
		if opt.value != "" {
			fields = append(fields, opt)
		}
	}

	for _, f := range fields {
		var ok bool
		var msg string
		rule, found := p.v.Rule(f.field)
		if found {
			// Report lines name the field key, not the display label.
			rule.Label = string(f.field)
			ok, msg = validator.ValidateField(f.value, rule)
		} else {
			ok, msg = p.v.Field(f.field, f.value)
		}
		r.Checks = append(r.Checks, Check{Field: f.field, Value: f.value, Valid: ok, Pattern: rule.Expr})
		if !ok {
			r.Errors = append(r.Errors, string(f.field)+": "+msg)
		}
	}

	for _, d := range p.Diseases {
		if ok, _ := p.v.Field(validator.FieldDiseaseName, d.Name); !ok {
			r.Warnings = append(r.Warnings, "Invalid disease name: "+d.Name)
		}
	}
	for _, t := range p.Traits {
		if ok, _ := p.v.Field(validator.FieldTrait, t); !ok {
			r.Warnings = append(r.Warnings, "Invalid trait: "+t)
		}
	}
	return r
}

type fieldValue struct {
	field validator.Field
	value string
}

package api

import "github.com/dmitrymomot/growbuddy/pkg/validator"

// PatternView describes one catalog rule.
type PatternView struct {
	Field       validator.Field `json:"field"`
	Label       string          `json:"label"`
	Pattern     string          `json:"pattern"`
	Description string          `json:"description"`
}

func newPatternView(rule validator.FieldRule) PatternView {
	return PatternView{
		Field:       rule.Field,
		Label:       rule.Label,
		Pattern:     rule.Expr,
		Description: rule.Description,
	}
}

// PatternTestRequest is the body of POST /patterns/{field}/test.
type PatternTestRequest struct {
	Value string `json:"value"`
}

// PatternTestResponse reports a single pattern check.
type PatternTestResponse struct {
	Field   validator.Field `json:"field"`
	Value   string          `json:"value"`
	Valid   bool            `json:"valid"`
	Message string          `json:"message,omitempty"`
}

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse lists what was found in the text.
type ExtractResponse struct {
	Mentions []string `json:"mentions"`
	Dates    []string `json:"dates"`
	Numbers  []string `json:"numbers"`
}

// CareRequest carries the argument of a single care action, for example
// the water amount or the disease name.
type CareRequest struct {
	Value string `json:"value"`
}

// ReminderRequest is the body of POST /plants/{id}/reminders.
type ReminderRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

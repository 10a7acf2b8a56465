package analyzer

import "github.com/dmitrymomot/growbuddy/pkg/validator"

// RecordError describes one rejected record of a batch.
type RecordError struct {
	Index  int              `json:"record_index"`
	Errors []string         `json:"errors"`
	Data   validator.Record `json:"data"`
}

// BatchResult is the audit of a batch of candidate records.
type BatchResult struct {
	Total   int           `json:"total_records"`
	Valid   int           `json:"valid_records"`
	Invalid int           `json:"invalid_records"`
	Errors  []RecordError `json:"validation_errors"`
}

// ValidateBatch audits records against the default catalog.
func ValidateBatch(records []validator.Record) BatchResult {
	return ValidateBatchWith(nil, records)
}

// ValidateBatchWith audits records with v. A nil v uses the default catalog.
// Rejected records keep their original position in the input.
func ValidateBatchWith(v *validator.Validator, records []validator.Record) BatchResult {
	if v == nil {
		v = validator.New(nil)
	}
	res := BatchResult{Total: len(records), Errors: []RecordError{}}
	for i, record := range records {
		out := v.Record(record)
		if out.Valid {
			res.Valid++
			continue
		}
		res.Invalid++
		res.Errors = append(res.Errors, RecordError{Index: i, Errors: out.Errors, Data: record})
	}
	return res
}

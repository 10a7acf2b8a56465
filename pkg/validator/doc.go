// Package validator holds the plant field catalog and the record validator
// built on top of it.
//
// The catalog is a fixed table of FieldRule values keyed by Field. Every rule
// is an anchored regular expression plus a description and the message used
// when a record fails it. Default returns the built-in catalog; NewCatalog
// builds a custom one so the rule set can be swapped in tests or by callers.
//
// Checks are expressed as small Rule values that pair a Check function with
// error metadata. Apply evaluates rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface.
//
// # Usage
//
//	ok, msg := validator.ValidateField("PLT-AB1234", validator.Default().MustLookup(validator.FieldPlantID))
//
//	out := validator.ValidateRecord(validator.Record{
//	    "name": "Desert Star",
//	    "type": "Succulent",
//	    "location": "",
//	})
//	if !out.Valid {
//	    // out.Errors lists one message per failed field
//	}
//
// # Record semantics
//
// ValidateRecord checks only fields present in the record. The optional
// fields care_notes, location and owner_email are skipped when empty but must
// match their rule when filled. Non-string values fail their field.
//
// # Text mining
//
// ExtractMatches and Sanitize work with unanchored patterns such as
// PlantMentionPattern, DateMentionPattern and NumberPattern.
package validator

// Package plant implements the validated plant record.
//
// A Plant is created with New from a candidate validator.Record. Construction
// validates the record against the catalog and fails with a single error that
// lists every violated field. Once created, a plant is only changed through
// care actions (AddCareNote, AddDisease, Water, AddTrait and friends). Each
// action re-validates its argument and leaves the plant untouched when the
// argument is rejected, so a stored value always passes its rule.
//
// System-derived values never fail: GenerateID falls back to a known good
// shape and CoerceStat substitutes the default stat value.
//
// Plant is not safe for concurrent use. Callers sharing plants across
// goroutines must guard them, as pkg/garden does.
package plant

// Package importer reads batches of candidate plant records from JSON, YAML
// or TOML files.
//
// JSON and YAML files hold either a top-level list of records or an object
// with a "plants" list. TOML files use [[plants]] tables. The format is picked
// from the file extension by Load, or passed explicitly to Decode.
//
// Records are returned as-is for validation. JSON numbers keep their literal
// text (json.Number) so stat values coerce the same way regardless of how
// they were written.
package importer

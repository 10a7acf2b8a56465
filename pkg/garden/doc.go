// Package garden holds the in-memory plant collection shared by the CLI and
// the HTTP API.
//
// A Garden owns validated plants for the lifetime of the process. Reads take
// a shared lock and return clones, care actions take the exclusive lock for
// the duration of the mutation. Plants are never removed. Every outcome is
// reported to a metrics.Recorder and logged with the plant ID and field.
package garden

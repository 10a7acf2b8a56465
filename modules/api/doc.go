// Package api serves the plant toolkit as a JSON HTTP API.
//
// Service.Handle exposes the catalog, the record validator, text extraction
// and a garden.Garden collection:
//
//	GET  /patterns                  list catalog rules
//	POST /patterns/{field}/test     check one value against a rule
//	POST /validate                  validate a record (JSON or form)
//	POST /validate/batch            audit a JSON array of records
//	POST /extract                   plant mentions, dates and numbers in text
//	GET  /plants                    list plants
//	POST /plants                    create a plant (201, or 422 with details)
//	GET  /plants/{id}               get a plant
//	GET  /plants/{id}/report        validation report
//	POST /plants/{id}/{action}      water, diseases, traits, notes, color, weather, season
//	POST /plants/{id}/reminders     schedule care
//	GET  /stats                     garden statistics
//
// Router adds request ids, panic recovery, health probes and the optional
// Prometheus endpoint around the service.
package api

// Package metrics exposes GrowBuddy counters in the Prometheus format.
//
// Collector registers its collectors on its own registry so tests and
// multiple instances never clash with the global default registry. It
// implements the Recorder interface consumed by pkg/garden; Nop is the
// zero-cost Recorder used when metrics are disabled.
//
// Metrics:
//   - growbuddy_field_checks_total{field,result}
//   - growbuddy_plants_created_total{type}
//   - growbuddy_plants_rejected_total
//   - growbuddy_care_actions_total{action,result}
//   - growbuddy_batch_records_total{result}
//   - growbuddy_http_request_duration_seconds{code,method}
package metrics

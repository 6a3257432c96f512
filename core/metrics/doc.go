// Package metrics exposes Prometheus metrics for the file reconciliation job.
//
// Metrics are registered on the default registry at init and served by Handler,
// which the HTTP server mounts at /metrics.
package metrics

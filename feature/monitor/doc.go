// Package monitor exposes the file reconciliation job over HTTP.
//
// POST /monitor/run triggers a run (dry_run=true plans without mutating),
// GET /monitor/status reports the last run and GET /monitor/snapshot returns
// the paths recorded by it.
package monitor

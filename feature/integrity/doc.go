// Package integrity provides health checks for the requirement monitor.
//
// It validates the infrastructure the reconciler depends on rather than the
// records it maintains.
//
// # Checks Provided
//
//   - Tree: the storage base, the monitored root and the local snapshot directory exist.
//   - Snapshot: the last snapshot loads and decodes; for the s3 backend the bucket exists.
//   - Schema: the requirement_files table matches the GORM model (columns, types).
//
// Every check has a fix: missing directories are created, a missing bucket is
// created, a malformed snapshot is reset to empty and the schema is migrated.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/tree : Runs tree check (supports ?fix=true).
//   - GET /integrity/snapshot : Runs snapshot check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check (supports ?fix=true).
package integrity

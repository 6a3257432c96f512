// Package snapshot persists the list of storage entries seen by the previous
// reconciliation run.
//
// A Snapshot is encoded as a UTF-8 JSON array of path strings with no schema
// versioning. Two Store implementations exist: LocalStore (a file replaced
// through temp file + rename) and ObjectStore (an object in the S3/MinIO bucket
// from core/storage). Both treat a missing blob as an empty snapshot and report
// undecodable content through ErrMalformed, leaving the policy to the caller.
package snapshot

// Package reconcile keeps requirement file records in line with the storage tree.
//
// Each run enumerates the monitored root (files recursively, directories through
// an explicit worklist), loads the snapshot saved by the previous run and diffs the
// two by exact path:
//
//   - An added entry whose inode matches a record relocates that record: its path
//     becomes the entry with the root stripped and its filename the last segment.
//   - A removed entry whose root-relative path matches a record deletes that record,
//     unless the same record was relocated earlier in the run.
//   - Everything else is a record no-op.
//
// The full enumeration is then saved as the next snapshot. Runs are idempotent:
// re-running after a crash before the snapshot write replays the same diff and the
// relocations it already applied become no-ops.
//
// # Architecture
//
// The reconciler only sees three collaborators through interfaces: an Enumerator
// (core/fstree), a RecordStore (feature/requirements) and a snapshot.Store
// (core/snapshot). Plan resolves actions without mutating; Apply executes them.
// Runner collapses concurrent triggers into one run and drives the interval loop.
//
// # Usage Example
//
//	rec := reconcile.New(cfg.Monitor, fstree.New(cfg.Monitor.BaseDir), records, snaps, logger)
//	report, err := rec.Run(ctx, reconcile.ApplyOptions{})
//
//	// Or from a long-running process
//	runner := reconcile.NewRunner(rec, logger)
//	go runner.Loop(ctx, cfg.Monitor.Interval(), reconcile.ApplyOptions{})
package reconcile

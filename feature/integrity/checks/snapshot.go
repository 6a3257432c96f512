package checks

import (
	"context"
	"errors"
	"fmt"

	"requirement-monitor/core/snapshot"
	"requirement-monitor/core/storage"

	"go.uber.org/zap"
)

// Snapshot check statuses.
const (
	SnapshotOK        = "ok"
	SnapshotMalformed = "malformed"
	SnapshotError     = "error"
)

// SnapshotReport strictly types the result of a snapshot check.
type SnapshotReport struct {
	Location string `json:"location"`
	Entries  int    `json:"entries"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// CheckSnapshot verifies the last snapshot can be loaded and decoded.
// An absent snapshot is fine; the next run starts from an empty baseline.
func CheckSnapshot(ctx context.Context, store snapshot.Store) SnapshotReport {
	report := SnapshotReport{Location: store.Location(), Status: SnapshotOK}

	snap, err := store.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrMalformed):
		report.Status = SnapshotMalformed
		report.Error = err.Error()
	case err != nil:
		report.Status = SnapshotError
		report.Error = err.Error()
	default:
		report.Entries = len(snap)
	}
	return report
}

// CheckBucket reports whether the snapshot bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (bool, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return exists, nil
}

// FixBucket creates the snapshot bucket if it is missing.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	created, err := storage.EnsureBucket(ctx, client, bucket, region)
	if err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	if created {
		logger.Info("Created missing bucket", zap.String("bucket", bucket))
	}
	return nil
}

// ResetSnapshot replaces the snapshot with an empty one, so the next run
// treats every entry as added.
func ResetSnapshot(ctx context.Context, store snapshot.Store, logger *zap.Logger) error {
	if err := store.Save(ctx, snapshot.Snapshot{}); err != nil {
		return fmt.Errorf("failed to reset snapshot at %s: %w", store.Location(), err)
	}
	logger.Info("Snapshot reset", zap.String("location", store.Location()))
	return nil
}

package integrity

import (
	"context"
	"fmt"

	"requirement-monitor/core/reconcile"
	"requirement-monitor/core/snapshot"
	"requirement-monitor/core/storage"
	"requirement-monitor/feature/integrity/checks"
	"requirement-monitor/feature/requirements"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SnapshotResult is the outcome of a snapshot check, with the bucket state
// for the s3 backend.
type SnapshotResult struct {
	checks.SnapshotReport
	Backend      string   `json:"backend"`
	Bucket       string   `json:"bucket,omitempty"`
	BucketExists *bool    `json:"bucket_exists,omitempty"`
	Fixed        []string `json:"fixed,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	cfg     reconcile.Config
	snaps   snapshot.Store
	client  storage.Client
	storage storage.Config
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. The storage client and the
// database are optional; checks that need them report an error when absent.
func NewService(cfg reconcile.Config, snaps snapshot.Store, client storage.Client, storageCfg storage.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		snaps:   snaps,
		client:  client,
		storage: storageCfg,
		db:      db,
		logger:  logger,
	}
}

// CheckTree returns the local directories that are missing.
func (s *Service) CheckTree() ([]string, error) {
	return checks.CheckTree(s.cfg)
}

// FixTree creates the missing directories.
func (s *Service) FixTree(missing []string) error {
	return checks.FixTree(s.logger, missing)
}

// CheckSnapshot verifies the snapshot and, for the s3 backend, its bucket.
// With fix set, a missing bucket is created and a malformed snapshot is reset.
func (s *Service) CheckSnapshot(ctx context.Context, fix bool) (*SnapshotResult, error) {
	if s.snaps == nil {
		return nil, fmt.Errorf("snapshot store is not configured")
	}

	result := &SnapshotResult{Backend: s.cfg.SnapshotBackend}
	if result.Backend == "" {
		result.Backend = snapshot.BackendLocal
	}

	if result.Backend == snapshot.BackendS3 {
		if s.client == nil {
			return nil, fmt.Errorf("storage client is not configured")
		}
		result.Bucket = s.storage.Bucket

		exists, err := checks.CheckBucket(ctx, s.client, s.storage.Bucket)
		if err != nil {
			return nil, err
		}
		if !exists && fix {
			if err := checks.FixBucket(ctx, s.client, s.storage.Bucket, s.storage.Region, s.logger); err != nil {
				return nil, err
			}
			result.Fixed = append(result.Fixed, "bucket")
			exists = true
		}
		result.BucketExists = &exists
	}

	result.SnapshotReport = checks.CheckSnapshot(ctx, s.snaps)
	if result.Status == checks.SnapshotMalformed && fix {
		if err := checks.ResetSnapshot(ctx, s.snaps, s.logger); err != nil {
			return nil, err
		}
		result.Fixed = append(result.Fixed, "snapshot")
		result.SnapshotReport = checks.CheckSnapshot(ctx, s.snaps)
	}

	return result, nil
}

// CheckSchema validates the requirement_files table against the model.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	return checks.CheckSchema(ctx, s.db)
}

// FixSchema migrates the requirement_files table.
func (s *Service) FixSchema(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := requirements.NewStore(s.db).Migrate(ctx); err != nil {
		s.logger.Error("Failed to migrate schema", zap.Error(err))
		return err
	}
	s.logger.Info("Migrated requirement_files schema")
	return nil
}

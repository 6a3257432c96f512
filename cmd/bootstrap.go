package cmd

import (
	"fmt"

	"requirement-monitor/core/config"
	"requirement-monitor/core/database"
	"requirement-monitor/core/fstree"
	"requirement-monitor/core/logger"
	"requirement-monitor/core/reconcile"
	"requirement-monitor/core/snapshot"
	"requirement-monitor/core/storage"
	"requirement-monitor/feature/requirements"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadEnvironment loads the configuration and builds the application logger.
func loadEnvironment() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openSnapshots builds the snapshot store for the configured backend.
// The storage client is only created for the s3 backend and is nil otherwise.
func openSnapshots(cfg *config.Config) (snapshot.Store, storage.Client, error) {
	var client storage.Client
	if cfg.Monitor.SnapshotBackend == snapshot.BackendS3 {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}

	store, err := snapshot.NewStore(
		cfg.Monitor.SnapshotBackend,
		cfg.Monitor.SnapshotDir,
		cfg.Monitor.SnapshotKey,
		client,
		cfg.Storage.Bucket,
	)
	if err != nil {
		return nil, nil, err
	}
	return store, client, nil
}

// newReconciler wires the file tree, the requirement file store and the snapshot store.
func newReconciler(cfg *config.Config, db *gorm.DB, snaps snapshot.Store, l *zap.Logger) *reconcile.Reconciler {
	return reconcile.New(
		cfg.Monitor,
		fstree.New(cfg.Monitor.BaseDir),
		requirements.NewStore(db),
		snaps,
		l,
	)
}

// connectDatabase connects to the configured database.
func connectDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

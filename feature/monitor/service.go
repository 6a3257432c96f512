package monitor

import (
	"context"

	"requirement-monitor/core/reconcile"
	"requirement-monitor/core/snapshot"

	"go.uber.org/zap"
)

// Service triggers reconciliation runs and reports on them.
type Service struct {
	runner *reconcile.Runner
	root   string
	logger *zap.Logger
}

// NewService creates a new monitor service.
func NewService(runner *reconcile.Runner, root string, logger *zap.Logger) *Service {
	return &Service{
		runner: runner,
		root:   root,
		logger: logger,
	}
}

// Run triggers a reconciliation run, joining one already in flight.
func (s *Service) Run(ctx context.Context, dryRun bool) (*reconcile.RunReport, error) {
	return s.runner.Trigger(ctx, reconcile.ApplyOptions{DryRun: dryRun})
}

// Status returns the runner state and last report.
func (s *Service) Status() reconcile.Status {
	return s.runner.Status()
}

// Snapshot loads the last saved snapshot.
func (s *Service) Snapshot(ctx context.Context) (snapshot.Snapshot, string, error) {
	store := s.runner.Reconciler().Snapshots()
	snap, err := store.Load(ctx)
	return snap, store.Location(), err
}

// SnapshotTree renders the last saved snapshot as a tree.
func (s *Service) SnapshotTree(ctx context.Context) (string, error) {
	snap, _, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return snapshot.RenderTree(snap, s.root), nil
}

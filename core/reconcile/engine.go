package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"requirement-monitor/core/metrics"
	"requirement-monitor/core/snapshot"
	"requirement-monitor/core/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconciler diffs the storage tree against the previous snapshot and brings
// requirement file records in line with it.
type Reconciler struct {
	cfg     Config
	tree    Enumerator
	records RecordStore
	snaps   snapshot.Store
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a Reconciler. A nil logger disables logging.
func New(cfg Config, tree Enumerator, records RecordStore, snaps snapshot.Store, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		cfg:     cfg,
		tree:    tree,
		records: records,
		snaps:   snaps,
		logger:  logger,
		now:     time.Now,
	}
}

// Snapshots returns the snapshot store used by the reconciler.
func (r *Reconciler) Snapshots() snapshot.Store {
	return r.snaps
}

// Run plans and applies one reconciliation pass.
func (r *Reconciler) Run(ctx context.Context, opts ApplyOptions) (*RunReport, error) {
	plan, err := r.Plan(ctx)
	if err != nil {
		metrics.RecordRun(metrics.StatusFailure, 0)
		r.logger.Error("File reconciliation failed", zap.Error(err))
		return nil, err
	}
	return r.Apply(ctx, plan, opts)
}

// Plan enumerates the tree, loads the previous snapshot and resolves the record
// actions the diff calls for. It reads the record store but mutates nothing.
func (r *Reconciler) Plan(ctx context.Context) (*Plan, error) {
	plan := &Plan{
		RunID:     uuid.NewString(),
		StartedAt: r.now(),
	}
	log := r.logger.With(zap.String("run_id", plan.RunID))

	// 1. Enumerate files and directories
	files, err := r.tree.ListFiles(ctx, r.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("enumerate files: %w", err)
	}
	dirs, skipped, err := r.listDirectories(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("enumerate directories: %w", err)
	}
	plan.Skipped += skipped

	current := make(snapshot.Snapshot, 0, len(files)+len(dirs))
	current = append(current, files...)
	current = append(current, dirs...)
	plan.Current = current

	// 2. Load the previous snapshot
	previous, err := r.loadPrevious(ctx, log)
	if err != nil {
		return nil, err
	}
	plan.Previous = previous

	// 3. Diff
	plan.Added = difference(current, previous.Set())
	plan.Removed = difference(previous, current.Set())

	// 4. Added entries: match records by inode and relocate them
	relocated := make(map[uint]struct{})
	for _, entry := range plan.Added {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inode, err := r.tree.Inode(entry)
		if err != nil {
			plan.Skipped++
			log.Debug("Skipping entry that could not be stat'ed", zap.String("entry", entry), zap.Error(err))
			continue
		}

		record, err := r.records.FindByInode(ctx, inode)
		if err != nil {
			plan.Errors = append(plan.Errors, fmt.Sprintf("find %s by inode %d: %v", entry, inode, err))
			log.Warn("Record lookup by inode failed", zap.String("entry", entry), zap.Uint64("inode", inode), zap.Error(err))
			continue
		}
		if record == nil {
			plan.Untracked++
			continue
		}

		path := utils.StripRoot(entry, r.cfg.Root)
		filename := utils.FileName(entry)
		relocated[record.ID] = struct{}{}
		if record.Path == path && record.Filename == filename {
			plan.Unchanged++
			continue
		}

		plan.Actions = append(plan.Actions, Action{
			Type:     ActionRelocate,
			Entry:    entry,
			Record:   *record,
			Path:     path,
			Filename: filename,
		})
	}

	// 5. Removed entries: match records by path and delete them
	for _, entry := range plan.Removed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := utils.StripRoot(entry, r.cfg.Root)
		record, err := r.records.FindByPath(ctx, path)
		if err != nil {
			plan.Errors = append(plan.Errors, fmt.Sprintf("find %s by path: %v", entry, err))
			log.Warn("Record lookup by path failed", zap.String("entry", entry), zap.Error(err))
			continue
		}
		if record == nil {
			plan.Untracked++
			continue
		}

		// Moved, not gone
		if _, ok := relocated[record.ID]; ok {
			continue
		}

		plan.Actions = append(plan.Actions, Action{
			Type:   ActionDelete,
			Entry:  entry,
			Record: *record,
		})
	}

	return plan, nil
}

// Apply executes the plan's actions and saves the current enumeration as the new
// snapshot. A failing action is logged and counted; the run continues. A failed
// snapshot write is returned as an error along with the partial report.
func (r *Reconciler) Apply(ctx context.Context, plan *Plan, opts ApplyOptions) (*RunReport, error) {
	if plan == nil {
		return nil, errors.New("nil plan")
	}
	log := r.logger.With(zap.String("run_id", plan.RunID))

	report := &RunReport{
		RunID:     plan.RunID,
		StartedAt: plan.StartedAt,
		Current:   len(plan.Current),
		Previous:  len(plan.Previous),
		Added:     len(plan.Added),
		Removed:   len(plan.Removed),
		Unchanged: plan.Unchanged,
		Untracked: plan.Untracked,
		Skipped:   plan.Skipped,
		Failed:    len(plan.Errors),
		Errors:    append([]string(nil), plan.Errors...),
		DryRun:    opts.DryRun,
	}
	metrics.RecordSkipped(plan.Skipped)

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return r.finish(log, report, err)
		}

		if opts.DryRun {
			report.count(action.Type)
			continue
		}

		var err error
		switch action.Type {
		case ActionRelocate:
			err = r.records.Relocate(ctx, action.Record, action.Path, action.Filename)
		case ActionDelete:
			err = r.records.Delete(ctx, action.Record)
		default:
			err = fmt.Errorf("unknown action type %q", action.Type)
		}
		metrics.RecordAction(string(action.Type), err == nil)

		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s record %d (%s): %v", action.Type, action.Record.ID, action.Entry, err))
			log.Warn("Record action failed",
				zap.String("action", string(action.Type)),
				zap.Uint("record_id", action.Record.ID),
				zap.String("entry", action.Entry),
				zap.Error(err),
			)
			continue
		}
		report.count(action.Type)
	}

	if !opts.DryRun {
		if err := r.snaps.Save(ctx, plan.Current); err != nil {
			return r.finish(log, report, fmt.Errorf("save snapshot to %s: %w", r.snaps.Location(), err))
		}
		metrics.RecordSnapshot(len(plan.Current))
	}

	return r.finish(log, report, nil)
}

// finish stamps the duration, records metrics and writes the run summary.
func (r *Reconciler) finish(log *zap.Logger, report *RunReport, err error) (*RunReport, error) {
	report.Duration = r.now().Sub(report.StartedAt)

	status := metrics.StatusSuccess
	switch {
	case err != nil:
		status = metrics.StatusFailure
	case report.DryRun:
		status = metrics.StatusDryRun
	}
	metrics.RecordRun(status, report.Duration)

	fields := []zap.Field{
		zap.Int("current", report.Current),
		zap.Int("previous", report.Previous),
		zap.Int("added", report.Added),
		zap.Int("removed", report.Removed),
		zap.Int("relocated", report.Relocated),
		zap.Int("deleted", report.Deleted),
		zap.Int("unchanged", report.Unchanged),
		zap.Int("untracked", report.Untracked),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Bool("dry_run", report.DryRun),
		zap.Duration("duration", report.Duration),
	}
	if err != nil {
		log.Error("File reconciliation failed", append(fields, zap.Error(err))...)
		return report, err
	}
	log.Info("File reconciliation complete", fields...)
	return report, nil
}

func (rep *RunReport) count(t ActionType) {
	switch t {
	case ActionRelocate:
		rep.Relocated++
	case ActionDelete:
		rep.Deleted++
	}
}

// listDirectories walks the directory tree below the root with an explicit
// worklist. The root must be listable; a child that vanishes mid-walk is skipped
// and any other listing failure is fatal.
func (r *Reconciler) listDirectories(ctx context.Context, log *zap.Logger) ([]string, int, error) {
	root := r.cfg.Root
	children, err := r.tree.ListDirectories(ctx, root)
	if err != nil {
		return nil, 0, err
	}

	var (
		dirs    []string
		skipped int
		visited = map[string]struct{}{root: {}}
		queue   = children
	)
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, skipped, err
		}

		dir := queue[0]
		queue = queue[1:]
		if _, seen := visited[dir]; seen {
			continue
		}
		visited[dir] = struct{}{}
		dirs = append(dirs, dir)

		sub, err := r.tree.ListDirectories(ctx, dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, skipped, err
			}
			skipped++
			log.Debug("Skipping directory that vanished", zap.String("dir", dir), zap.Error(err))
			continue
		}
		queue = append(queue, sub...)
	}
	return dirs, skipped, nil
}

// loadPrevious loads the last snapshot. A malformed snapshot counts as empty
// unless strict mode is on; any other load failure is fatal.
func (r *Reconciler) loadPrevious(ctx context.Context, log *zap.Logger) (snapshot.Snapshot, error) {
	previous, err := r.snaps.Load(ctx)
	if err == nil {
		return previous, nil
	}
	if errors.Is(err, snapshot.ErrMalformed) && !r.cfg.StrictSnapshot {
		log.Warn("Previous snapshot is malformed, treating it as empty",
			zap.String("location", r.snaps.Location()),
			zap.Error(err),
		)
		return snapshot.Snapshot{}, nil
	}
	return nil, fmt.Errorf("load snapshot from %s: %w", r.snaps.Location(), err)
}

// difference returns the entries of a not present in b, in a's order.
func difference(a snapshot.Snapshot, b map[string]struct{}) []string {
	out := []string{}
	for _, entry := range a {
		if _, ok := b[entry]; !ok {
			out = append(out, entry)
		}
	}
	return out
}

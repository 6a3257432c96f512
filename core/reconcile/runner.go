package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Status describes the runner's current and last run.
type Status struct {
	Running   bool       `json:"running"`
	Last      *RunReport `json:"last,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

// Runner serialises runs of a Reconciler inside one process.
// Concurrent triggers with the same options share a single run.
type Runner struct {
	rec    *Reconciler
	logger *zap.Logger

	sf      singleflight.Group
	running atomic.Int32

	mu      sync.RWMutex
	last    *RunReport
	lastErr error
}

// NewRunner wraps a Reconciler. A nil logger disables logging.
func NewRunner(rec *Reconciler, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{rec: rec, logger: logger}
}

// Reconciler returns the wrapped reconciler.
func (r *Runner) Reconciler() *Reconciler {
	return r.rec
}

// Trigger runs the reconciler, or joins the run already in flight with the same options.
func (r *Runner) Trigger(ctx context.Context, opts ApplyOptions) (*RunReport, error) {
	key := "run"
	if opts.DryRun {
		key = "dry-run"
	}

	result, err, shared := r.sf.Do(key, func() (interface{}, error) {
		r.running.Add(1)
		defer r.running.Add(-1)

		report, err := r.rec.Run(ctx, opts)

		r.mu.Lock()
		if report != nil {
			r.last = report
		}
		r.lastErr = err
		r.mu.Unlock()

		return report, err
	})
	if shared {
		r.logger.Debug("Joined in-flight reconciliation run", zap.String("key", key))
	}

	report, _ := result.(*RunReport)
	return report, err
}

// Last returns the most recent report and the error of the most recent run.
func (r *Runner) Last() (*RunReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last, r.lastErr
}

// Status returns a snapshot of the runner state.
func (r *Runner) Status() Status {
	last, err := r.Last()
	status := Status{
		Running: r.running.Load() > 0,
		Last:    last,
	}
	if err != nil {
		status.LastError = err.Error()
	}
	return status
}

// Loop runs the reconciler immediately and then every interval until ctx is done.
// Run errors are logged and the loop continues. A non-positive interval runs once.
func (r *Runner) Loop(ctx context.Context, every time.Duration, opts ApplyOptions) error {
	if _, err := r.Trigger(ctx, opts); err != nil && every <= 0 {
		return err
	}
	if every <= 0 {
		return nil
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := r.Trigger(ctx, opts); err != nil && ctx.Err() == nil {
				r.logger.Warn("Scheduled reconciliation failed, retrying next interval",
					zap.Duration("every", every),
					zap.Error(err),
				)
			}
		}
	}
}

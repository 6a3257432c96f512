package reconcile

import (
	"time"

	"requirement-monitor/core/snapshot"
)

// FileRecord is the part of a requirement file record the reconciler reads and rewrites.
type FileRecord struct {
	// ID is the record's primary key.
	ID uint `json:"id"`

	// Inode is the inode number captured when the file was uploaded.
	Inode uint64 `json:"inode"`

	// Path is the record's path relative to the monitored root.
	Path string `json:"path"`

	// Filename is the display file name, the last segment of Path.
	Filename string `json:"filename"`
}

// ActionType represents the type of record mutation.
type ActionType string

const (
	// ActionRelocate rewrites a record's path and filename after a move or rename.
	ActionRelocate ActionType = "relocate"
	// ActionDelete permanently deletes a record whose file is gone.
	ActionDelete ActionType = "delete"
)

// Action represents a planned record mutation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Entry is the snapshot entry that caused the action.
	Entry string `json:"entry"`

	// Record is the record the action applies to, as found when planning.
	Record FileRecord `json:"record"`

	// Path is the new record path. Only populated for ActionRelocate.
	Path string `json:"path,omitempty"`

	// Filename is the new record filename. Only populated for ActionRelocate.
	Filename string `json:"filename,omitempty"`
}

// Plan is the outcome of diffing the current tree against the previous snapshot.
// Building a plan reads the record store but never mutates anything.
type Plan struct {
	// RunID identifies the run in logs and reports.
	RunID string `json:"run_id"`

	// StartedAt is the time the plan was started.
	StartedAt time.Time `json:"started_at"`

	// Current is the full enumeration of the tree, saved as the next snapshot.
	Current snapshot.Snapshot `json:"current"`

	// Previous is the snapshot loaded at the start of the run.
	Previous snapshot.Snapshot `json:"previous"`

	// Added holds entries present now but not in Previous.
	Added []string `json:"added"`

	// Removed holds entries present in Previous but not now.
	Removed []string `json:"removed"`

	// Actions holds the record mutations to apply, relocations first.
	Actions []Action `json:"actions"`

	// Unchanged counts added entries whose record already has the right path.
	Unchanged int `json:"unchanged"`

	// Untracked counts added and removed entries without a matching record.
	Untracked int `json:"untracked"`

	// Skipped counts entries that vanished or could not be stat'ed.
	Skipped int `json:"skipped"`

	// Errors holds per-entry record store errors hit while planning.
	Errors []string `json:"errors,omitempty"`
}

// ApplyOptions controls how a plan is applied.
type ApplyOptions struct {
	// DryRun skips record mutations and the snapshot write.
	DryRun bool
}

// RunReport summarises one reconciliation run.
type RunReport struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	Current  int `json:"current"`
	Previous int `json:"previous"`
	Added    int `json:"added"`
	Removed  int `json:"removed"`

	Relocated int `json:"relocated"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
	Untracked int `json:"untracked"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`

	Errors []string `json:"errors,omitempty"`
	DryRun bool     `json:"dry_run"`
}

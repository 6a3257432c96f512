package reconcile

import "time"

// Config holds configuration for the file reconciliation job.
type Config struct {
	// BaseDir is the storage base directory that entry paths are relative to.
	BaseDir string `mapstructure:"base_dir" default:"storage/app"`
	// Root is the monitored directory under BaseDir. Entry paths start with it.
	Root string `mapstructure:"root" default:"public"`
	// SnapshotBackend selects where the snapshot is kept ("local" or "s3").
	SnapshotBackend string `mapstructure:"snapshot_backend" default:"local"`
	// SnapshotKey is the file or object name of the snapshot.
	SnapshotKey string `mapstructure:"snapshot_key" default:"previous_files.json"`
	// SnapshotDir is the directory of the local snapshot backend.
	SnapshotDir string `mapstructure:"snapshot_dir" default:"storage/app"`
	// StrictSnapshot makes an unparseable snapshot a fatal run error.
	StrictSnapshot bool `mapstructure:"strict_snapshot" default:"false"`
	// IntervalSeconds runs the job on a fixed interval when greater than zero.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"0"`
}

// Interval returns the configured loop interval, or zero when disabled.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}

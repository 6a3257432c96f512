package checks

import (
	"fmt"
	"os"
	"path/filepath"

	"requirement-monitor/core/reconcile"
	"requirement-monitor/core/snapshot"

	"go.uber.org/zap"
)

// RequiredDirectories returns the local directories the monitor needs:
// the storage base, the monitored root and, for the local backend, the snapshot directory.
func RequiredDirectories(cfg reconcile.Config) []string {
	dirs := []string{cfg.BaseDir, filepath.Join(cfg.BaseDir, filepath.FromSlash(cfg.Root))}
	if cfg.SnapshotBackend == "" || cfg.SnapshotBackend == snapshot.BackendLocal {
		dirs = append(dirs, cfg.SnapshotDir)
	}

	seen := make(map[string]struct{}, len(dirs))
	out := dirs[:0]
	for _, d := range dirs {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// CheckTree returns the required directories that do not exist.
// A required path that exists but is not a directory is an error.
func CheckTree(cfg reconcile.Config) ([]string, error) {
	var missing []string
	for _, dir := range RequiredDirectories(cfg) {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			missing = append(missing, dir)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s exists but is not a directory", dir)
		}
	}
	return missing, nil
}

// FixTree creates the missing directories.
func FixTree(logger *zap.Logger, missing []string) error {
	for _, dir := range missing {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("Failed to create directory", zap.String("dir", dir), zap.Error(err))
			return err
		}
		logger.Info("Created missing directory", zap.String("dir", dir))
	}
	return nil
}

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps the snapshot as a file on the local filesystem.
type LocalStore struct {
	dir string
	key string
}

// NewLocalStore creates a store writing <dir>/<key>.
func NewLocalStore(dir, key string) *LocalStore {
	if key == "" {
		key = DefaultKey
	}
	return &LocalStore{dir: dir, key: key}
}

func (s *LocalStore) path() string {
	return filepath.Join(s.dir, filepath.FromSlash(s.key))
}

// Location returns the snapshot file path.
func (s *LocalStore) Location() string {
	return s.path()
}

// Load reads the snapshot file. A missing file is an empty snapshot.
func (s *LocalStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", s.path(), err)
	}
	return Decode(data)
}

// Save writes the snapshot atomically through a temp file and rename.
func (s *LocalStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(snap)
	if err != nil {
		return err
	}

	path := s.path()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp to %s: %w", path, err)
	}
	return nil
}

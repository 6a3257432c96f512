package fstree

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// ErrInodeUnsupported is returned on platforms without inode numbers.
var ErrInodeUnsupported = errors.New("inode numbers are not supported on this platform")

// Tree enumerates entries below a storage base directory.
// Paths it returns are slash separated and relative to the base, so listing the
// root "public" yields entries such as "public/a/report.pdf".
type Tree struct {
	base string
}

// New creates a Tree rooted at the storage base directory.
func New(base string) *Tree {
	return &Tree{base: base}
}

// Base returns the storage base directory.
func (t *Tree) Base() string {
	return t.base
}

func (t *Tree) abs(rel string) string {
	return filepath.Join(t.base, filepath.FromSlash(rel))
}

func (t *Tree) rel(abs string) (string, error) {
	r, err := filepath.Rel(t.base, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(r), nil
}

// ListFiles returns every non-directory entry below root, recursively.
// Entries that vanish while the walk is in progress are skipped; any other
// walk error, such as an unreadable directory, fails the listing.
// Symlinked directories are listed as entries, not followed.
func (t *Tree) ListFiles(ctx context.Context, root string) ([]string, error) {
	rootAbs := t.abs(root)
	info, err := os.Stat(rootAbs)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(rootAbs, func(p string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			// Only an entry removed mid-walk may be skipped. Any other failure
			// leaves the listing incomplete and must not be reported as current.
			if p == rootAbs || !errors.Is(walkErr, fs.ErrNotExist) {
				return walkErr
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		r, err := t.rel(p)
		if err != nil {
			return nil
		}
		files = append(files, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list files under %s: %w", root, err)
	}
	return files, nil
}

// ListDirectories returns the immediate child directories of dir.
// Symlinks are never reported as directories, so recursing over the result
// cannot loop.
func (t *Tree) ListDirectories(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(t.abs(dir))
	if err != nil {
		return nil, fmt.Errorf("list directories under %s: %w", dir, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, path.Join(filepath.ToSlash(dir), e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Inode returns the inode number of the entry at the given relative path.
func (t *Tree) Inode(rel string) (uint64, error) {
	return inodeOf(t.abs(rel))
}

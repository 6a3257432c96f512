//go:build unix

package fstree

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockDir makes dir unreadable until the test ends.
func lockDir(t *testing.T, dir string) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	require.NoError(t, os.Chmod(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })
}

func TestListFiles_UnreadableSubdirectory(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "public/a.txt", "public/req/1/report.pdf")
	lockDir(t, filepath.Join(base, "public", "req"))

	files, err := New(base).ListFiles(context.Background(), "public")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Nil(t, files)
}

func TestListDirectories_Unreadable(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "public/req/1/report.pdf")
	lockDir(t, filepath.Join(base, "public", "req"))

	_, err := New(base).ListDirectories(context.Background(), "public/req")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

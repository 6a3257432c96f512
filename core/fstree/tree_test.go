package fstree

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, base string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(base, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0o644))
	}
}

func TestListFiles(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base,
		"public/a.txt",
		"public/req/1/report.pdf",
		"public/req/2/deep/scan.png",
		"private/secret.txt",
	)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "public", "empty"), 0o755))

	files, err := New(base).ListFiles(context.Background(), "public")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"public/a.txt",
		"public/req/1/report.pdf",
		"public/req/2/deep/scan.png",
	}, files)
}

func TestListFiles_MissingRoot(t *testing.T) {
	_, err := New(t.TempDir()).ListFiles(context.Background(), "public")
	assert.Error(t, err)
}

func TestListFiles_RootIsFile(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "public")

	_, err := New(base).ListFiles(context.Background(), "public")
	assert.Error(t, err)
}

func TestListFiles_CancelledContext(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "public/a.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(base).ListFiles(ctx, "public")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListDirectories(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "public/b/x.txt", "public/a/y.txt", "public/file.txt")

	tree := New(base)
	dirs, err := tree.ListDirectories(context.Background(), "public")
	require.NoError(t, err)
	assert.Equal(t, []string{"public/a", "public/b"}, dirs)

	dirs, err = tree.ListDirectories(context.Background(), "public/a")
	require.NoError(t, err)
	assert.Empty(t, dirs)

	_, err = tree.ListDirectories(context.Background(), "public/missing")
	assert.Error(t, err)
}

func TestListDirectories_DoesNotFollowSymlinks(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "public/a/y.txt")
	if err := os.Symlink(filepath.Join(base, "public"), filepath.Join(base, "public", "a", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	tree := New(base)
	dirs, err := tree.ListDirectories(context.Background(), "public/a")
	require.NoError(t, err)
	assert.Empty(t, dirs)

	files, err := tree.ListFiles(context.Background(), "public")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"public/a/y.txt", "public/a/loop"}, files)
}

func TestBase(t *testing.T) {
	assert.Equal(t, "storage/app", New("storage/app").Base())
}

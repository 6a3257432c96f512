package snapshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"requirement-monitor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingIsEmpty", func(t *testing.T) {
		store := NewLocalStore(t.TempDir(), "")
		snap, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap)
		assert.Equal(t, DefaultKey, filepath.Base(store.Location()))
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "state")
		store := NewLocalStore(dir, "previous_files.json")

		want := Snapshot{"public/a", "public/a/old.txt"}
		require.NoError(t, store.Save(ctx, want))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// Only the snapshot file remains; temp files are renamed away
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		store := NewLocalStore(t.TempDir(), "")
		require.NoError(t, store.Save(ctx, Snapshot{"public/a"}))
		require.NoError(t, store.Save(ctx, Snapshot{}))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Malformed", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultKey), []byte("{oops"), 0644))

		_, err := NewLocalStore(dir, "").Load(ctx)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("UnreadableIsNotMalformed", func(t *testing.T) {
		dir := t.TempDir()
		// A directory where the file should be cannot be read
		require.NoError(t, os.Mkdir(filepath.Join(dir, DefaultKey), 0755))

		_, err := NewLocalStore(dir, "").Load(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMalformed)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		store := NewLocalStore(t.TempDir(), "")
		_, err := store.Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, store.Save(cctx, Snapshot{}), context.Canceled)
	})
}

// failingReader fails on the first read, like a lazily fetched minio object.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
func (r failingReader) Close() error             { return nil }

func TestObjectStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Present", func(t *testing.T) {
		client := new(mocks.Client)
		body := io.NopCloser(bytes.NewReader([]byte(`["public/a.txt"]`)))
		client.On("GetObject", mock.Anything, "state", DefaultKey, mock.Anything).Return(body, nil)

		snap, err := NewObjectStore(client, "state", "").Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, Snapshot{"public/a.txt"}, snap)
	})

	t.Run("MissingKeyOnRead", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "state", DefaultKey, mock.Anything).
			Return(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

		snap, err := NewObjectStore(client, "state", "").Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap)
	})

	t.Run("MissingKeyOnGet", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "state", DefaultKey, mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		snap, err := NewObjectStore(client, "state", "").Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "state", DefaultKey, mock.Anything).
			Return(failingReader{err: errors.New("connection reset")}, nil)

		_, err := NewObjectStore(client, "state", "").Load(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMalformed)
		assert.Contains(t, err.Error(), "s3://state/previous_files.json")
	})

	t.Run("Malformed", func(t *testing.T) {
		client := new(mocks.Client)
		body := io.NopCloser(bytes.NewReader([]byte(`not json`)))
		client.On("GetObject", mock.Anything, "state", DefaultKey, mock.Anything).Return(body, nil)

		_, err := NewObjectStore(client, "state", "").Load(ctx)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestObjectStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads JSON", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "state", "custom.json", mock.Anything, int64(len(`["public/a"]`)),
			minio.PutObjectOptions{ContentType: "application/json"}).
			Return(minio.UploadInfo{}, nil)

		err := NewObjectStore(client, "state", "custom.json").Save(ctx, Snapshot{"public/a"})
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Upload fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "state", DefaultKey, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		err := NewObjectStore(client, "state", "").Save(ctx, Snapshot{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}

func TestNewStore(t *testing.T) {
	local, err := NewStore(BackendLocal, t.TempDir(), "", nil, "")
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, local)

	_, err = NewStore(BackendS3, "", "", nil, "state")
	assert.Error(t, err)

	remote, err := NewStore(BackendS3, "", "", new(mocks.Client), "state")
	require.NoError(t, err)
	assert.IsType(t, &ObjectStore{}, remote)

	_, err = NewStore("ftp", "", "", nil, "")
	assert.Error(t, err)
}

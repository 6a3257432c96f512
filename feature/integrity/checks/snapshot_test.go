package checks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"requirement-monitor/core/snapshot"
	"requirement-monitor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckSnapshot(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewLocalStore(dir, snapshot.DefaultKey)

	t.Run("Absent", func(t *testing.T) {
		report := CheckSnapshot(context.Background(), store)
		assert.Equal(t, SnapshotOK, report.Status)
		assert.Zero(t, report.Entries)
	})

	t.Run("Present", func(t *testing.T) {
		require.NoError(t, store.Save(context.Background(), snapshot.Snapshot{"public/a", "public/b"}))
		report := CheckSnapshot(context.Background(), store)
		assert.Equal(t, SnapshotOK, report.Status)
		assert.Equal(t, 2, report.Entries)
	})

	t.Run("Malformed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, snapshot.DefaultKey), []byte(`{"a":1}`), 0o644))
		report := CheckSnapshot(context.Background(), store)
		assert.Equal(t, SnapshotMalformed, report.Status)
		assert.NotEmpty(t, report.Error)

		require.NoError(t, ResetSnapshot(context.Background(), store, zap.NewNop()))
		assert.Equal(t, SnapshotOK, CheckSnapshot(context.Background(), store).Status)
	})
}

func TestCheckSnapshot_ObjectError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "monitor", snapshot.DefaultKey, mock.Anything).
		Return(nil, errors.New("connection refused"))

	report := CheckSnapshot(context.Background(), snapshot.NewObjectStore(client, "monitor", snapshot.DefaultKey))
	assert.Equal(t, SnapshotError, report.Status)
	assert.Equal(t, "s3://monitor/previous_files.json", report.Location)
}

func TestCheckSnapshot_ObjectPresent(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(bytes.NewReader([]byte(`["public/a"]`)))
	client.On("GetObject", mock.Anything, "monitor", snapshot.DefaultKey, mock.Anything).Return(body, nil)

	report := CheckSnapshot(context.Background(), snapshot.NewObjectStore(client, "monitor", snapshot.DefaultKey))
	assert.Equal(t, SnapshotOK, report.Status)
	assert.Equal(t, 1, report.Entries)
}

func TestCheckAndFixBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "monitor").Return(false, nil).Once()
	client.On("BucketExists", mock.Anything, "monitor").Return(false, nil).Once()
	client.On("MakeBucket", mock.Anything, "monitor", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	exists, err := CheckBucket(context.Background(), client, "monitor")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, FixBucket(context.Background(), client, "monitor", "eu-west-1", zap.NewNop()))
	client.AssertExpectations(t)
}

func TestCheckBucket_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "monitor").Return(false, errors.New("denied"))

	_, err := CheckBucket(context.Background(), client, "monitor")
	assert.ErrorContains(t, err, "denied")
}

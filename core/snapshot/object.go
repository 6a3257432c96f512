package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"requirement-monitor/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps the snapshot as an object in an S3 compatible bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	key    string
}

// NewObjectStore creates a store writing <bucket>/<key>.
func NewObjectStore(client storage.Client, bucket, key string) *ObjectStore {
	if key == "" {
		key = DefaultKey
	}
	return &ObjectStore{client: client, bucket: bucket, key: key}
}

// Location returns the s3 URI of the snapshot object.
func (s *ObjectStore) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

// Load downloads and decodes the snapshot. A missing object is an empty snapshot.
func (s *ObjectStore) Load(ctx context.Context) (Snapshot, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", s.Location(), err)
	}
	defer reader.Close()

	// minio reports a missing key lazily, on the first read
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", s.Location(), err)
	}
	return Decode(data)
}

// Save uploads the encoded snapshot, replacing the previous object.
func (s *ObjectStore) Save(ctx context.Context, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		s.key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", s.Location(), err)
	}
	return nil
}

// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the snapshot
// object store can be backed by AWS S3 or a self-hosted MinIO instance, and so
// tests can substitute the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the state bucket (see EnsureBucket).
//   - PutObject / GetObject: write and read the snapshot blob.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	created, err := storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage

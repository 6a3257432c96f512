package snapshot

import (
	"fmt"

	"requirement-monitor/core/storage"
)

// Supported snapshot backends.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// NewStore builds the Store for the configured backend.
// The storage client is only required for the s3 backend.
func NewStore(backend, dir, key string, client storage.Client, bucket string) (Store, error) {
	switch backend {
	case "", BackendLocal:
		return NewLocalStore(dir, key), nil
	case BackendS3:
		if client == nil {
			return nil, fmt.Errorf("snapshot backend %q requires a storage client", backend)
		}
		if bucket == "" {
			return nil, fmt.Errorf("snapshot backend %q requires a bucket", backend)
		}
		return NewObjectStore(client, bucket, key), nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend: %s", backend)
	}
}

package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultKey is the blob key the snapshot is stored under.
const DefaultKey = "previous_files.json"

// ErrMalformed is returned when a stored snapshot cannot be decoded.
var ErrMalformed = errors.New("malformed snapshot")

// Snapshot is the ordered list of entry paths observed at the end of a run.
type Snapshot []string

// Store persists the single snapshot blob.
type Store interface {
	// Load returns the stored snapshot. A missing blob yields an empty snapshot
	// and a nil error. Undecodable content yields an error wrapping ErrMalformed.
	Load(ctx context.Context) (Snapshot, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, s Snapshot) error
	// Location describes where the snapshot lives, for logs and reports.
	Location() string
}

// Set returns the snapshot as a membership set.
func (s Snapshot) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, p := range s {
		set[p] = struct{}{}
	}
	return set
}

// Encode serializes a snapshot as a JSON array of strings.
// A nil snapshot encodes as [] so readers never see null.
func Encode(s Snapshot) ([]byte, error) {
	if s == nil {
		s = Snapshot{}
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of strings. Empty input and JSON null decode to an
// empty snapshot; anything else that is not an array of strings is ErrMalformed.
func Decode(data []byte) (Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Snapshot{}, nil
	}

	var paths []string
	if err := json.Unmarshal(trimmed, &paths); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if paths == nil {
		paths = []string{}
	}
	return Snapshot(paths), nil
}

package reconcile

import "context"

// Enumerator lists entries of the storage tree.
// Returned paths are relative to the storage base and include the monitored
// root, e.g. "public/req/12/report.pdf".
type Enumerator interface {
	// ListFiles lists every file under root, recursively, in any order.
	ListFiles(ctx context.Context, root string) ([]string, error)

	// ListDirectories lists the immediate child directories of dir.
	// Implementations must not report symlinks as directories.
	ListDirectories(ctx context.Context, dir string) ([]string, error)

	// Inode returns the inode number of the entry at path.
	Inode(path string) (uint64, error)
}

// RecordStore provides single-row access to requirement file records.
// Find methods return nil and no error when no record matches.
type RecordStore interface {
	// FindByInode returns the record created for the given inode.
	FindByInode(ctx context.Context, inode uint64) (*FileRecord, error)

	// FindByPath returns the record stored under the given root-relative path.
	FindByPath(ctx context.Context, path string) (*FileRecord, error)

	// Relocate rewrites a record's path and filename.
	Relocate(ctx context.Context, record FileRecord, path, filename string) error

	// Delete permanently removes a record.
	Delete(ctx context.Context, record FileRecord) error
}

// Package requirements manages requirement file records, the uploads attached
// to an organisation's document requirements.
//
// Store is the GORM implementation of reconcile.RecordStore: it finds records by
// inode or root-relative path, relocates them after a move and deletes them
// permanently once their file is gone. The HTTP handler exposes read-only
// listing under /requirement-files.
package requirements

// Package fstree enumerates the storage directory tree watched by the reconciler.
//
// Tree lists files recursively, lists child directories one level at a time
// (the reconciler drives the recursion), and resolves inode numbers through
// golang.org/x/sys/unix. Inode numbers are the identity that lets a moved or
// renamed upload be matched back to its requirement file record.
package fstree

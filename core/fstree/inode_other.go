//go:build !unix

package fstree

func inodeOf(path string) (uint64, error) {
	return 0, ErrInodeUnsupported
}

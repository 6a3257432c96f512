//go:build unix

package fstree

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func inodeOf(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return uint64(st.Ino), nil
}

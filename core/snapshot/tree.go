package snapshot

import (
	"path"
	"sort"
	"strings"

	"github.com/disiqueira/gotree/v3"
)

// RenderTree draws the snapshot paths as an indented tree under rootLabel.
// Directory entries and file entries are both shown; a directory that appears
// as its own entry is not duplicated.
func RenderTree(s Snapshot, rootLabel string) string {
	root := gotree.New(rootLabel)
	nodes := make(map[string]gotree.Tree)

	var nodeFor func(p string) gotree.Tree
	nodeFor = func(p string) gotree.Tree {
		if p == "." || p == "" || p == "/" {
			return root
		}
		if n, ok := nodes[p]; ok {
			return n
		}
		parent := nodeFor(path.Dir(p))
		n := parent.Add(path.Base(p))
		nodes[p] = n
		return n
	}

	sorted := make([]string, 0, len(s))
	for _, p := range s {
		sorted = append(sorted, strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/"))
	}
	sort.Strings(sorted)

	for _, p := range sorted {
		nodeFor(path.Clean(p))
	}
	return root.Print()
}

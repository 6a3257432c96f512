package utils

import (
	"path"
	"strings"
)

// NormalizePath converts backslash separators to forward slashes and cleans the result.
// An empty input stays empty so callers can distinguish "no path" from ".".
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, "\\", "/"))
}

// StripRoot removes the leading root directory from a path.
// It handles "public/a/b.txt" -> "a/b.txt" and returns the normalized path
// unchanged when it is not under root. The root itself maps to "".
func StripRoot(p, root string) string {
	p = NormalizePath(p)
	root = strings.Trim(NormalizePath(root), "/")
	if root == "" || root == "." {
		return strings.TrimPrefix(p, "/")
	}

	trimmed := strings.TrimPrefix(p, "/")
	if trimmed == root {
		return ""
	}
	if rest, ok := strings.CutPrefix(trimmed, root+"/"); ok {
		return rest
	}
	return p
}

// FileName returns the final segment of a path using either separator.
func FileName(p string) string {
	p = NormalizePath(p)
	if p == "" {
		return ""
	}
	return path.Base(p)
}

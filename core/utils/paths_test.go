package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Forward", "public/a/b.txt", "public/a/b.txt"},
		{"Backslash", `public\a\b.txt`, "public/a/b.txt"},
		{"Mixed", `public/a\b.txt`, "public/a/b.txt"},
		{"DoubleSlash", "public//a/./b.txt", "public/a/b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestStripRoot(t *testing.T) {
	tests := []struct {
		name string
		in   string
		root string
		want string
	}{
		{"UnderRoot", "public/a/old.txt", "public", "a/old.txt"},
		{"Backslash", `public\a\gone.txt`, "public", "a/gone.txt"},
		{"RootTrailingSlash", "public/a.txt", "public/", "a.txt"},
		{"RootItself", "public", "public", ""},
		{"NotUnderRoot", "private/a.txt", "public", "private/a.txt"},
		{"PrefixOnlyMatch", "publicity/a.txt", "public", "publicity/a.txt"},
		{"EmptyRoot", "/a/b.txt", "", "a/b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripRoot(tt.in, tt.root))
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "new.txt", FileName("public/a/new.txt"))
	assert.Equal(t, "new.txt", FileName(`public\a\new.txt`))
	assert.Equal(t, "a", FileName("public/a"))
	assert.Equal(t, "", FileName(""))
}

package search

import (
	iofs "io/fs"
	"os"
)

// pathResolver maps resolved paths back to root-relative form.
type pathResolver interface {
	Rel(abs string) (string, error)
}

// fileSystem defines the minimal filesystem interface needed by the search tool.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
	WalkDir(root string, fn iofs.WalkDirFunc) error
}

// ignoreMatcher filters files and directories by configured exclude patterns.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

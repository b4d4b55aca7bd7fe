package directory

import (
	"os"
)

// fileSystem defines the filesystem operations needed for listing.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
}

// ignoreMatcher filters entries by configured exclude patterns.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// pathResolver maps resolved paths back to root-relative form.
type pathResolver interface {
	Rel(abs string) (string, error)
}

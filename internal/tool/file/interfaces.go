package file

import (
	"io"
	"os"
)

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// fileWriter defines the filesystem operations behind the write gate.
type fileWriter interface {
	Stat(path string) (os.FileInfo, error)
	AppendFile(path string, data []byte, perm os.FileMode) error
	WriteStreamAtomic(path string, r io.Reader, perm os.FileMode) (int64, error)
}

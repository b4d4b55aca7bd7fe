package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFileRange reads up to limit bytes starting at offset.
// A limit of 0 reads to EOF. An offset at or past EOF yields no bytes.
func (fs *OSFileSystem) ReadFileRange(path string, offset, limit int64) ([]byte, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// If both offset and limit are 0, read entire file
	if offset == 0 && limit == 0 {
		return io.ReadAll(file)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	fileSize := info.Size()
	if offset >= fileSize {
		return []byte{}, nil
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	if limit == 0 {
		return io.ReadAll(file)
	}

	content := make([]byte, min(fileSize-offset, limit))
	n, err := io.ReadFull(file, content)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return content[:n], nil
}

// AppendFile appends data to path, creating it with perm if needed.
func (fs *OSFileSystem) AppendFile(path string, data []byte, perm os.FileMode) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// WriteStreamAtomic copies r into path using temp file + rename.
// The temp file is created in the same directory as the target so the rename is atomic;
// on any failure the partial temp file is removed and an existing target is left intact.
func (fs *OSFileSystem) WriteStreamAtomic(path string, r io.Reader, perm os.FileMode) (int64, error) {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return 0, &StreamWriteError{Op: OpCreateTemp, Path: dir, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmpFile, r)
	if err != nil {
		return written, &StreamWriteError{Op: OpWriteTemp, Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return written, &StreamWriteError{Op: OpSyncTemp, Path: tmpPath, Cause: err}
	}

	// Close file before rename (required on some systems)
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return written, &StreamWriteError{Op: OpCloseTemp, Path: tmpPath, Cause: err}
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		return written, &StreamWriteError{Op: OpRename, Path: path, Cause: err}
	}
	needsCleanup = false

	if err := os.Chmod(path, perm); err != nil {
		return written, &StreamWriteError{Op: OpChmod, Path: path, Cause: err}
	}

	return written, nil
}

// ListDir lists the contents of a directory in the order the OS returns them.
// Entries removed between the directory read and their stat are skipped.
func (fs *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// WalkDir walks the tree rooted at root in lexical order without following symlinks.
func (fs *OSFileSystem) WalkDir(root string, fn iofs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

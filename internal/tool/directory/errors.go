package directory

import (
	"errors"
	"fmt"
)

// InfoLegacy is the invalid-directory text older clients match on.
const InfoLegacy = "目录配置错误"

// InvalidDirectoryError is returned when the listed path exists but is not a directory.
type InvalidDirectoryError struct {
	Path string
}

func (e *InvalidDirectoryError) Error() string {
	return fmt.Sprintf("invalid directory configuration: %s is not a directory", e.Path)
}
func (e *InvalidDirectoryError) InvalidDirectory() bool { return true }
func (e *InvalidDirectoryError) Unwrap() error          { return ErrNotADirectory }

// StatError is returned when the listed path cannot be inspected.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) IOError() bool { return true }
func (e *StatError) Unwrap() error { return e.Cause }

// ListDirError is returned when the directory cannot be read.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Cause)
}
func (e *ListDirError) IOError() bool { return true }
func (e *ListDirError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrNotADirectory = errors.New("not a directory")
)

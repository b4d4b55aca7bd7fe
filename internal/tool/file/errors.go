package file

import (
	"errors"
	"fmt"
)

// StatError is returned when the file metadata cannot be read.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) IOError() bool { return true }
func (e *StatError) Unwrap() error { return e.Cause }

// IsDirectoryError is returned when a read targets a directory.
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory", e.Path)
}
func (e *IsDirectoryError) IOError() bool { return true }
func (e *IsDirectoryError) Unwrap() error { return ErrIsDirectory }

// ReadError is returned when the file content cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) IOError() bool { return true }
func (e *ReadError) Unwrap() error { return e.Cause }

// DecodeError is returned when a window is not valid UTF-8 after boundary correction.
type DecodeError struct {
	Path     string
	Offset   int64
	Attempts int
}

func (e *DecodeError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("content of %s at offset %d is not valid UTF-8 after %d attempts", e.Path, e.Offset, e.Attempts)
	}
	return fmt.Sprintf("content of %s is not valid UTF-8", e.Path)
}
func (e *DecodeError) DecodeError() bool { return true }
func (e *DecodeError) Unwrap() error     { return ErrInvalidUTF8 }

// NegativeOffsetError is returned for a negative explicit offset.
type NegativeOffsetError struct {
	Value int64
}

func (e *NegativeOffsetError) Error() string {
	return fmt.Sprintf("offset must be >= 0, got %d", e.Value)
}
func (e *NegativeOffsetError) InvalidInput() bool { return true }

// WriteDisabledError is returned by every write operation when writes are off.
type WriteDisabledError struct{}

func (e *WriteDisabledError) Error() string       { return "write mode is disabled" }
func (e *WriteDisabledError) WriteDisabled() bool { return true }
func (e *WriteDisabledError) Unwrap() error       { return ErrWriteDisabled }

// WriteFailedError wraps any failure of an enabled write operation.
type WriteFailedError struct {
	Op    string
	Path  string
	Cause error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Path, e.Cause)
}
func (e *WriteFailedError) WriteFailed() bool { return true }
func (e *WriteFailedError) Unwrap() error     { return e.Cause }

// -- Sentinels --

var (
	ErrIsDirectory   = errors.New("path is a directory")
	ErrInvalidUTF8   = errors.New("invalid utf-8")
	ErrWriteDisabled = errors.New("write mode is disabled")
)

package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// RootError is returned when the configured root is invalid.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid root %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

// TraversalError is returned in strict mode when a path has a ".." component.
type TraversalError struct {
	Path string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("path %q escapes the served root", e.Path)
}
func (e *TraversalError) OutsideRoot() bool { return true }
func (e *TraversalError) Unwrap() error     { return ErrOutsideRoot }

// -- Sentinels --

var (
	ErrOutsideRoot   = errors.New("path is outside root")
	ErrRootNotSet    = errors.New("root not set")
	ErrNotADirectory = errors.New("not a directory")
)

package fs

import (
	"errors"
	"fmt"
)

// Steps of WriteStreamAtomic reported in StreamWriteError.Op.
const (
	OpCreateTemp = "create temp file"
	OpWriteTemp  = "write temp file"
	OpSyncTemp   = "sync temp file"
	OpCloseTemp  = "close temp file"
	OpRename     = "rename"
	OpChmod      = "chmod"
)

// StreamWriteError is returned when a step of an atomic stream write fails.
// Path is the file the step acted on: the temp file, its directory for
// OpCreateTemp, or the target for OpRename and OpChmod.
type StreamWriteError struct {
	Op    string
	Path  string
	Cause error
}

func (e *StreamWriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}
func (e *StreamWriteError) Unwrap() error { return e.Cause }

var (
	ErrInvalidOffset = errors.New("invalid offset")
	ErrInvalidLimit  = errors.New("invalid limit")
)

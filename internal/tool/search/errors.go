package search

import (
	"errors"
	"fmt"
	iofs "io/fs"
)

// TooLargeMessage is the text of every SizeLimit error raised by search.
const TooLargeMessage = "search result is too large, please use a more precise search term"

// FileMissingError implements the behavioral interface for missing files.
type FileMissingError struct {
	Path string
}

func (e *FileMissingError) Error() string {
	return "search path does not exist: " + e.Path
}

func (e *FileMissingError) FileMissing() bool { return true }
func (e *FileMissingError) IOError() bool     { return true }
func (e *FileMissingError) Unwrap() error     { return iofs.ErrNotExist }

// StatError is returned when stat fails.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat search path %s: %v", e.Path, e.Cause)
}

func (e *StatError) IOError() bool { return true }
func (e *StatError) Unwrap() error { return e.Cause }

// QueryRequiredError is returned when query is empty.
type QueryRequiredError struct{}

func (e *QueryRequiredError) Error() string { return "query is required" }

func (e *QueryRequiredError) InvalidInput() bool { return true }

// InvalidPatternError is returned when the query is not a valid regular expression.
type InvalidPatternError struct {
	Pattern string
	Cause   error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Cause)
}

func (e *InvalidPatternError) InvalidInput() bool { return true }
func (e *InvalidPatternError) Unwrap() error      { return e.Cause }

// NegativeContextError is returned when a context line count is negative.
type NegativeContextError struct {
	Name  string
	Value int
}

func (e *NegativeContextError) Error() string {
	return fmt.Sprintf("%s cannot be negative: %d", e.Name, e.Value)
}

func (e *NegativeContextError) InvalidInput() bool { return true }

// ContextLimitError is returned when a context line count exceeds the configured maximum.
type ContextLimitError struct {
	Name  string
	Value int
	Max   int
}

func (e *ContextLimitError) Error() string {
	return fmt.Sprintf("%s %d exceeds maximum %d", e.Name, e.Value, e.Max)
}

func (e *ContextLimitError) InvalidInput() bool { return true }

// TooLargeError is returned when the search output exceeds its budget.
type TooLargeError struct {
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string { return TooLargeMessage }

func (e *TooLargeError) SizeLimit() bool { return true }

// FileTooLargeError is returned when a searched file exceeds search.max_file_size.
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, search limit is %d", e.Path, e.Size, e.Limit)
}

func (e *FileTooLargeError) SizeLimit() bool { return true }

// ReadError is returned when a searched file cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) IOError() bool { return true }
func (e *ReadError) Unwrap() error { return e.Cause }

// DecodeError is returned when matched lines are not valid UTF-8.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("matched lines of %s are not valid UTF-8", e.Path)
}

func (e *DecodeError) DecodeError() bool { return true }
func (e *DecodeError) Unwrap() error     { return ErrInvalidUTF8 }

// WalkError is returned when the directory walk fails at the search root.
type WalkError struct {
	Path  string
	Cause error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("failed to walk %s: %v", e.Path, e.Cause)
}

func (e *WalkError) IOError() bool { return true }
func (e *WalkError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrInvalidUTF8 = errors.New("invalid utf-8")
	ErrNotRegular  = errors.New("not a regular file")
)

package adapter

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"net/http"
	"os"

	"github.com/Cyclone1070/fileview/internal/tool/file"
	"github.com/Cyclone1070/fileview/internal/tool/search"
)

// InvalidArgumentsError is returned when arguments cannot be decoded into the
// operation's request type, e.g. a non-numeric "before".
type InvalidArgumentsError struct {
	Op    string
	Cause error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Op, e.Cause)
}
func (e *InvalidArgumentsError) InvalidInput() bool { return true }
func (e *InvalidArgumentsError) Unwrap() error      { return e.Cause }

// FileNameRequiredError is returned when upload or exists has no file name.
type FileNameRequiredError struct{}

func (e *FileNameRequiredError) Error() string      { return "file_name is required" }
func (e *FileNameRequiredError) InvalidInput() bool { return true }

// InvalidFileNameError is returned when a file name has no usable final element.
type InvalidFileNameError struct {
	Name string
}

func (e *InvalidFileNameError) Error() string {
	return fmt.Sprintf("invalid file_name %q", e.Name)
}
func (e *InvalidFileNameError) InvalidInput() bool { return true }

// MalformedUploadError is returned when the multipart body cannot be parsed.
type MalformedUploadError struct {
	Cause error
}

func (e *MalformedUploadError) Error() string {
	return fmt.Sprintf("malformed upload: %v", e.Cause)
}
func (e *MalformedUploadError) WriteFailed() bool { return true }
func (e *MalformedUploadError) Unwrap() error     { return e.Cause }

// Error kinds reported in ErrorPayload.Kind.
const (
	KindInput         = "input"
	KindOutsideRoot   = "outside_root"
	KindWriteDisabled = "write_disabled"
	KindNotFound      = "not_found"
	KindSizeLimit     = "size_limit"
	KindDecode        = "decode"
	KindWriteFailed   = "write_failed"
	KindIO            = "io"
	KindInternal      = "internal"
)

// Classify maps an error to its kind and HTTP status using the behavioural
// marker methods of the tool errors.
func Classify(err error) (kind string, status int) {
	var (
		outside  interface{ OutsideRoot() bool }
		disabled interface{ WriteDisabled() bool }
		input    interface{ InvalidInput() bool }
		size     interface{ SizeLimit() bool }
		decode   interface{ DecodeError() bool }
		failed   interface{ WriteFailed() bool }
		ioErr    interface{ IOError() bool }
		tooBig   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &outside) && outside.OutsideRoot():
		return KindOutsideRoot, http.StatusForbidden
	case errors.As(err, &disabled) && disabled.WriteDisabled():
		return KindWriteDisabled, http.StatusForbidden
	case errors.As(err, &input) && input.InvalidInput():
		return KindInput, http.StatusBadRequest
	case errors.Is(err, iofs.ErrNotExist):
		return KindNotFound, http.StatusNotFound
	case errors.As(err, &size) && size.SizeLimit(), errors.As(err, &tooBig):
		return KindSizeLimit, http.StatusRequestEntityTooLarge
	case errors.As(err, &decode) && decode.DecodeError():
		return KindDecode, http.StatusUnprocessableEntity
	case errors.As(err, &failed) && failed.WriteFailed():
		return KindWriteFailed, http.StatusInternalServerError
	case errors.As(err, &ioErr) && ioErr.IOError():
		return KindIO, http.StatusInternalServerError
	default:
		return KindInternal, http.StatusInternalServerError
	}
}

// kindMessages are the client-facing texts of the kinds whose errors name
// server paths.
var kindMessages = map[string]string{
	KindNotFound:    "no such file or directory",
	KindSizeLimit:   "size limit exceeded",
	KindDecode:      "file content is not valid UTF-8",
	KindWriteFailed: "write failed",
	KindIO:          "i/o error",
	KindInternal:    "internal error",
}

// PublicMessage returns the error text that is safe to send to a client.
// Tool errors carry absolute paths under the root, so only input-class errors
// are passed through; other kinds keep just the OS error text.
func PublicMessage(err error) string {
	kind, _ := Classify(err)
	switch kind {
	case KindInput, KindOutsideRoot, KindWriteDisabled:
		return err.Error()
	case KindNotFound, KindDecode:
		return kindMessages[kind]
	case KindSizeLimit:
		var tooLarge *search.TooLargeError
		if errors.As(err, &tooLarge) {
			return tooLarge.Error()
		}
		return kindMessages[kind]
	}

	if cause := causeText(err); cause != "" {
		return kindMessages[kind] + ": " + cause
	}
	return kindMessages[kind]
}

// causeText extracts the path-free part of an OS error.
func causeText(err error) string {
	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err.Error()
	}
	for _, sentinel := range []error{file.ErrIsDirectory, search.ErrNotRegular} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return ""
}

// RenderError converts a failed read-only operation into its payload and HTTP status.
func RenderError(err error) (int, *ErrorPayload) {
	kind, status := Classify(err)
	return status, &ErrorPayload{Status: 0, Kind: kind, Error: PublicMessage(err)}
}

// RenderWriteError converts a failed write operation into its payload and HTTP status.
func RenderWriteError(err error) (int, *WritePayload) {
	_, status := Classify(err)
	return status, &WritePayload{Status: 0, Message: PublicMessage(err)}
}

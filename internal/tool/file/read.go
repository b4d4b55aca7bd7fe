package file

import (
	"context"
	"unicode/utf8"

	"github.com/Cyclone1070/fileview/internal/config"
)

// maxBoundaryRetries is how many times the window start moves forward one
// byte when it lands inside a multi-byte character.
const maxBoundaryRetries = 3

// ReadFileTool serves bounded windows of files.
type ReadFileTool struct {
	fileOps fileReader
	config  *config.Config
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileReader, cfg *config.Config) *ReadFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &ReadFileTool{
		fileOps: fileOps,
		config:  cfg,
	}
}

// Run reads a window of a file.
// Small files are returned whole when no offset is given. Otherwise the window
// starts at the explicit offset (0 with FromStart), or read.max_window bytes
// before EOF, and runs
// to EOF (or read.max_offset_read bytes for explicit offsets when configured).
// A window start that splits a UTF-8 character is moved forward up to 3 bytes.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Run(ctx context.Context, req ReadFileRequest) (*ReadFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	info, err := t.fileOps.Stat(req.AbsPath)
	if err != nil {
		return nil, &StatError{Path: req.AbsPath, Cause: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: req.AbsPath}
	}

	fileLength := info.Size()
	maxWindow := t.config.Read.MaxWindow

	if fileLength <= maxWindow && req.Offset == 0 {
		data, err := t.fileOps.ReadFileRange(req.AbsPath, 0, 0)
		if err != nil {
			return nil, &ReadError{Path: req.AbsPath, Cause: err}
		}
		if !utf8.Valid(data) {
			return nil, &DecodeError{Path: req.AbsPath, Offset: 0, Attempts: 1}
		}
		return &ReadFileResponse{
			Content:    string(data),
			FileLength: fileLength,
			Start:      0,
			End:        int64(len(data)),
		}, nil
	}

	explicit := req.Offset > 0 || req.FromStart
	start := req.Offset
	if !explicit {
		start = fileLength - maxWindow
	}

	var limit int64
	if explicit && t.config.Read.MaxOffsetRead > 0 {
		limit = t.config.Read.MaxOffsetRead
	}

	data, err := t.fileOps.ReadFileRange(req.AbsPath, start, limit)
	if err != nil {
		return nil, &ReadError{Path: req.AbsPath, Cause: err}
	}

	// A capped window may stop inside a character; EOF never does in a valid file.
	if limit > 0 && int64(len(data)) == limit {
		data = trimIncompleteTail(data)
	}

	skipped, ok := alignToRuneStart(data)
	if !ok {
		return nil, &DecodeError{Path: req.AbsPath, Offset: start, Attempts: maxBoundaryRetries + 1}
	}

	return &ReadFileResponse{
		Content:    string(data[skipped:]),
		FileLength: fileLength,
		Start:      start + int64(skipped),
		End:        start + int64(len(data)),
	}, nil
}

// alignToRuneStart finds the smallest skip in [0, maxBoundaryRetries] after
// which data decodes as UTF-8. Each skip is equivalent to re-reading from one
// byte further into the file.
func alignToRuneStart(data []byte) (int, bool) {
	for skip := 0; skip <= maxBoundaryRetries; skip++ {
		if skip > len(data) {
			break
		}
		if utf8.Valid(data[skip:]) {
			return skip, true
		}
	}
	return 0, false
}

// trimIncompleteTail drops a truncated multi-byte character at the end of data.
func trimIncompleteTail(data []byte) []byte {
	i := len(data) - 1
	for i > 0 && len(data)-i < utf8.UTFMax && !utf8.RuneStart(data[i]) {
		i--
	}
	if i >= 0 && !utf8.FullRune(data[i:]) {
		return data[:i]
	}
	return data
}

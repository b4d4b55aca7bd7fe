package adapter

import (
	"context"
	"errors"
	"io"
	"path"
	"time"

	"github.com/Cyclone1070/fileview/internal/metrics"
	"github.com/Cyclone1070/fileview/internal/tool/directory"
	"github.com/Cyclone1070/fileview/internal/tool/file"
	"github.com/Cyclone1070/fileview/internal/tool/search"
	"go.uber.org/zap"
)

// Operation names.
const (
	OpList   = "list"
	OpMore   = "more"
	OpSearch = "search"
	OpAppend = "append"
	OpUpload = "upload"
	OpExists = "exists"
)

type pathResolver interface {
	Abs(userPath string) (string, error)
	Rel(abs string) (string, error)
}

type directoryLister interface {
	Run(ctx context.Context, req directory.ListDirectoryRequest) (*directory.ListDirectoryResponse, error)
}

type fileReader interface {
	Run(ctx context.Context, req file.ReadFileRequest) (*file.ReadFileResponse, error)
}

type contentSearcher interface {
	Run(ctx context.Context, req *search.SearchContentRequest) (*search.SearchContentResponse, error)
}

type writeGate interface {
	Enabled() bool
	Append(ctx context.Context, req file.AppendRequest) error
	Upload(ctx context.Context, req file.UploadRequest) (*file.UploadResponse, error)
	Exists(ctx context.Context, absPath string) (bool, error)
}

// Service resolves client paths and dispatches to the tools, shaping every
// result into its wire payload.
type Service struct {
	resolver pathResolver
	lister   directoryLister
	reader   fileReader
	searcher contentSearcher
	writer   writeGate
	logger   *zap.Logger
}

// NewService creates a Service with injected dependencies.
func NewService(
	resolver pathResolver,
	lister directoryLister,
	reader fileReader,
	searcher contentSearcher,
	writer writeGate,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		resolver: resolver,
		lister:   lister,
		reader:   reader,
		searcher: searcher,
		writer:   writer,
		logger:   logger,
	}
}

// Operations returns the query-string driven operations keyed by name.
// Upload is excluded: its body is streamed, see Service.Upload.
func (s *Service) Operations() map[string]Operation {
	ops := []Operation{
		NewBaseAdapter(OpList, s.ListDirectory),
		NewBaseAdapter(OpMore, s.ReadWindow),
		NewBaseAdapter(OpSearch, s.Search),
		NewBaseAdapter(OpAppend, s.Append),
		NewBaseAdapter(OpExists, s.Exists),
	}

	byName := make(map[string]Operation, len(ops))
	for _, op := range ops {
		byName[op.Name()] = op
	}
	return byName
}

// WritesEnabled reports whether the write operations are available.
func (s *Service) WritesEnabled() bool {
	return s.writer.Enabled()
}

// ListDirectory lists a directory. A path that is not a directory is reported
// in the payload with status false rather than as an error.
func (s *Service) ListDirectory(ctx context.Context, args ListArgs) (*ListPayload, error) {
	abs, err := s.resolver.Abs(args.Path)
	if err != nil {
		return nil, err
	}

	resp, err := s.lister.Run(ctx, directory.ListDirectoryRequest{AbsPath: abs})
	if err != nil {
		var invalid interface{ InvalidDirectory() bool }
		if errors.As(err, &invalid) && invalid.InvalidDirectory() {
			return &ListPayload{
				Status:     false,
				Info:       InfoInvalidDirectory,
				InfoLegacy: directory.InfoLegacy,
				Entries:    []ListEntry{},
			}, nil
		}
		return nil, err
	}

	entries := make([]ListEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, ListEntry{
			Class: string(e.Kind),
			Name:  e.Name,
			Date:  e.Date(),
			Size:  e.Size,
		})
	}

	filtered := resp.DirectoryPath
	return &ListPayload{
		Status:       true,
		Entries:      entries,
		FilteredPath: &filtered,
	}, nil
}

// ReadWindow reads a window of a file.
func (s *Service) ReadWindow(ctx context.Context, args ReadArgs) (*ReadPayload, error) {
	abs, err := s.resolver.Abs(args.Path)
	if err != nil {
		return nil, err
	}

	mode := "window"
	if args.Seek == 0 && !args.FromStart {
		mode = "default"
	}

	resp, err := s.reader.Run(ctx, file.ReadFileRequest{AbsPath: abs, Offset: args.Seek, FromStart: args.FromStart})
	if err != nil {
		metrics.RecordRead(mode, 0, false)
		return nil, err
	}
	metrics.RecordRead(mode, len(resp.Content), true)

	rel, err := s.resolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	return &ReadPayload{
		Content:  resp.Content,
		Seek:     resp.FileLength,
		FilePath: rel,
		Start:    resp.Start,
		End:      resp.End,
	}, nil
}

// Search runs a content search below a path.
func (s *Service) Search(ctx context.Context, args SearchArgs) (*SearchPayload, error) {
	abs, err := s.resolver.Abs(args.Path)
	if err != nil {
		return nil, err
	}

	caseInsensitive := args.CaseSensitive != nil && !*args.CaseSensitive

	start := time.Now()
	resp, err := s.searcher.Run(ctx, &search.SearchContentRequest{
		AbsPath:         abs,
		Query:           args.Search,
		Before:          args.Before,
		After:           args.After,
		CaseInsensitive: caseInsensitive,
	})
	if err != nil {
		metrics.RecordSearch(time.Since(start), 0, false)
		return nil, err
	}
	metrics.RecordSearch(time.Since(start), resp.MatchedFiles, true)

	return &SearchPayload{
		Search:       resp.Query,
		Content:      resp.Content,
		FilePath:     resp.Path,
		MatchedFiles: resp.MatchedFiles,
	}, nil
}

// Append appends content to a file.
func (s *Service) Append(ctx context.Context, args AppendArgs) (*WritePayload, error) {
	if !s.writer.Enabled() {
		return nil, &file.WriteDisabledError{}
	}

	abs, err := s.resolver.Abs(args.Path)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Append(ctx, file.AppendRequest{AbsPath: abs, Content: args.Content}); err != nil {
		metrics.RecordWrite(OpAppend, false)
		return nil, err
	}
	metrics.RecordWrite(OpAppend, true)

	return &WritePayload{Status: 1, Message: "appended"}, nil
}

// Upload stores body as path/base(fileName).
func (s *Service) Upload(ctx context.Context, args UploadArgs, body io.Reader) (*WritePayload, error) {
	if !s.writer.Enabled() {
		return nil, &file.WriteDisabledError{}
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	target, err := targetPath(args.Path, args.FileName)
	if err != nil {
		return nil, err
	}
	abs, err := s.resolver.Abs(target)
	if err != nil {
		return nil, err
	}

	resp, err := s.writer.Upload(ctx, file.UploadRequest{AbsPath: abs, Body: body})
	if err != nil {
		metrics.RecordWrite(OpUpload, false)
		return nil, err
	}
	metrics.RecordWrite(OpUpload, true)
	metrics.RecordUpload(resp.BytesWritten)

	return &WritePayload{Status: 1, Message: "uploaded"}, nil
}

// Exists reports whether path/base(fileName) exists.
func (s *Service) Exists(ctx context.Context, args ExistsArgs) (*WritePayload, error) {
	if !s.writer.Enabled() {
		return nil, &file.WriteDisabledError{}
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	target, err := targetPath(args.Path, args.FileName)
	if err != nil {
		return nil, err
	}
	abs, err := s.resolver.Abs(target)
	if err != nil {
		return nil, err
	}

	exists, err := s.writer.Exists(ctx, abs)
	if err != nil {
		metrics.RecordWrite(OpExists, false)
		return nil, err
	}
	metrics.RecordWrite(OpExists, true)

	message := "not found"
	if exists {
		message = "exists"
	}
	return &WritePayload{Status: 1, Message: message, Exists: &exists}, nil
}

// targetPath joins a directory with the final element of a client file name.
// A name whose final element is empty, "." or ".." names no file.
func targetPath(dir, fileName string) (string, error) {
	base := path.Base(path.Clean("/" + fileName))
	if base == "/" || base == "." || base == ".." {
		return "", &InvalidFileNameError{Name: fileName}
	}
	return path.Join(dir, base), nil
}

// IsWriteOperation reports whether name is one of the write-gated operations.
func IsWriteOperation(name string) bool {
	switch name {
	case OpAppend, OpUpload, OpExists:
		return true
	}
	return false
}

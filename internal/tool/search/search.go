package search

import (
	"context"
	"errors"
	iofs "io/fs"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Cyclone1070/fileview/internal/config"
	"github.com/Cyclone1070/fileview/internal/tool/helper/content"
	"go.uber.org/zap"
)

// fileHeaderPrefix precedes the root-relative path of every file section in a
// directory search.
const fileHeaderPrefix = "\n\n\n\n"

// SearchContentTool handles content searching operations.
type SearchContentTool struct {
	fs            fileSystem
	ignoreMatcher ignoreMatcher
	pathResolver  pathResolver
	config        *config.Config
	logger        *zap.Logger
}

// NewSearchContentTool creates a new SearchContentTool with injected dependencies.
// ignoreMatcher and logger may be nil.
func NewSearchContentTool(
	fs fileSystem,
	ignoreMatcher ignoreMatcher,
	pathResolver pathResolver,
	cfg *config.Config,
	logger *zap.Logger,
) *SearchContentTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchContentTool{
		fs:            fs,
		ignoreMatcher: ignoreMatcher,
		pathResolver:  pathResolver,
		config:        cfg,
		logger:        logger,
	}
}

// Run searches a file, or every file below a directory, for the query.
// The pattern is compiled before any file is read. A single file fails when its
// output exceeds search.per_file_limit; a directory search charges one such
// unit per matching file and fails when the combined output exceeds the total.
// Per-file failures inside a directory are skipped.
func (t *SearchContentTool) Run(ctx context.Context, req *SearchContentRequest) (*SearchContentResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	re, err := compilePattern(req.Query, req.CaseInsensitive)
	if err != nil {
		return nil, err
	}

	info, err := t.fs.Stat(req.AbsPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, &FileMissingError{Path: req.AbsPath}
		}
		return nil, &StatError{Path: req.AbsPath, Cause: err}
	}

	rel, err := t.pathResolver.Rel(req.AbsPath)
	if err != nil {
		return nil, &StatError{Path: req.AbsPath, Cause: err}
	}

	perFileLimit := t.config.Search.PerFileLimit

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, &ReadError{Path: req.AbsPath, Cause: ErrNotRegular}
		}
		out, err := t.searchFile(req.AbsPath, info.Size(), re, req.Before, req.After)
		if err != nil {
			return nil, err
		}
		if int64(len(out)) > perFileLimit {
			return nil, &TooLargeError{Size: int64(len(out)), Limit: perFileLimit}
		}
		matched := 0
		if out != "" {
			matched = 1
		}
		return &SearchContentResponse{Query: req.Query, Content: out, Path: rel, MatchedFiles: matched}, nil
	}

	var (
		b       strings.Builder
		budget  int64
		matched int
	)

	walkErr := t.fs.WalkDir(req.AbsPath, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			if p == req.AbsPath {
				return err
			}
			t.logger.Debug("skipping unreadable path", zap.String("path", p), zap.Error(err))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == req.AbsPath {
			return nil
		}

		fileRel, err := t.pathResolver.Rel(p)
		if err != nil {
			return nil
		}

		if d.IsDir() {
			if t.ignored(fileRel, true) {
				return iofs.SkipDir
			}
			return nil
		}
		if t.ignored(fileRel, false) {
			return nil
		}

		size, ok := t.regularFileSize(p, d)
		if !ok {
			return nil
		}

		out, err := t.searchFile(p, size, re, req.Before, req.After)
		if err != nil {
			t.logger.Debug("skipping file", zap.String("path", p), zap.Error(err))
			return nil
		}
		if out == "" {
			return nil
		}
		if int64(len(out)) > perFileLimit {
			t.logger.Debug("skipping file with oversized output", zap.String("path", p), zap.Int("bytes", len(out)))
			return nil
		}

		budget += perFileLimit
		matched++
		b.WriteString(fileHeaderPrefix)
		b.WriteString(fileRel)
		b.WriteString("\n\n")
		b.WriteString(out)
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		return nil, &WalkError{Path: req.AbsPath, Cause: walkErr}
	}

	if int64(b.Len()) > budget {
		return nil, &TooLargeError{Size: int64(b.Len()), Limit: budget}
	}

	return &SearchContentResponse{
		Query:        req.Query,
		Content:      b.String(),
		Path:         rel,
		MatchedFiles: matched,
	}, nil
}

// searchFile greps one file. Binary files produce no output.
func (t *SearchContentTool) searchFile(path string, size int64, re *regexp.Regexp, before, after int) (string, error) {
	if limit := t.config.Search.MaxFileSize; limit > 0 && size > limit {
		return "", &FileTooLargeError{Path: path, Size: size, Limit: limit}
	}

	data, err := t.fs.ReadFileRange(path, 0, 0)
	if err != nil {
		return "", &ReadError{Path: path, Cause: err}
	}

	if content.IsBinaryContent(data) {
		return "", nil
	}

	out := grep(data, re, before, after)
	if !utf8.Valid(out) {
		return "", &DecodeError{Path: path}
	}
	return string(out), nil
}

// regularFileSize reports the size of a regular file, following symlinks.
// Devices, sockets, pipes and links to directories are skipped.
func (t *SearchContentTool) regularFileSize(path string, d iofs.DirEntry) (int64, bool) {
	if d.Type().IsRegular() {
		info, err := d.Info()
		if err != nil {
			return 0, false
		}
		return info.Size(), true
	}
	if d.Type()&iofs.ModeSymlink == 0 {
		return 0, false
	}
	info, err := t.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0, false
	}
	return info.Size(), true
}

func (t *SearchContentTool) ignored(rel string, isDir bool) bool {
	return t.ignoreMatcher != nil && t.ignoreMatcher.ShouldIgnore(rel, isDir)
}

package git

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/fileview/internal/tool/helper/content"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// fileSystem defines the minimal filesystem interface needed for the ignore matcher.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// IgnoreMatcher implements gitignore pattern matching using go-git's gitignore matcher.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher builds a matcher from the configured exclude patterns and,
// when respectGitignore is set, the .gitignore at the root.
// A missing .gitignore is not an error.
func NewIgnoreMatcher(root string, excludes []string, respectGitignore bool, fs fileSystem) (*IgnoreMatcher, error) {
	if root == "" {
		panic("root is required")
	}
	if fs == nil {
		panic("fs is required")
	}

	patterns := parsePatterns(excludes)

	if respectGitignore {
		gitignorePath := filepath.Join(root, ".gitignore")

		if _, err := fs.Stat(gitignorePath); err != nil {
			if !errors.Is(err, iofs.ErrNotExist) {
				return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
			}
		} else {
			data, err := fs.ReadFileRange(gitignorePath, 0, 0)
			if err != nil {
				return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
			}
			patterns = append(patterns, parsePatterns(content.SplitLines(string(data)))...)
		}
	}

	if len(patterns) == 0 {
		return &IgnoreMatcher{matcher: nil}, nil
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

func parsePatterns(lines []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if pattern := gitignore.ParsePattern(line, nil); pattern != nil {
			patterns = append(patterns, pattern)
		}
	}
	return patterns
}

// ShouldIgnore checks if a root-relative path matches any pattern.
// Returns false if no patterns were loaded.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}

	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	normalized := filepath.ToSlash(path)

	parts := strings.Split(normalized, "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}

	return segments
}

// NoOpMatcher is a matcher that never ignores any files.
type NoOpMatcher struct{}

// ShouldIgnore always returns false for NoOpMatcher.
func (m *NoOpMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return false
}

package directory

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ListDirectoryTool handles directory listing operations.
type ListDirectoryTool struct {
	fs            fileSystem
	ignoreMatcher ignoreMatcher
	pathResolver  pathResolver
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
// ignoreMatcher may be nil.
func NewListDirectoryTool(
	fs fileSystem,
	ignoreMatcher ignoreMatcher,
	pathResolver pathResolver,
) *ListDirectoryTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &ListDirectoryTool{
		fs:            fs,
		ignoreMatcher: ignoreMatcher,
		pathResolver:  pathResolver,
	}
}

// Run lists the immediate children of a directory in the order the OS returns them.
// Hidden entries and entries matched by the ignore filter are left out.
// Symlinks are classified by their target; broken links are reported as files.
func (t *ListDirectoryTool) Run(ctx context.Context, req ListDirectoryRequest) (*ListDirectoryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := t.fs.Stat(req.AbsPath)
	if err != nil {
		return nil, &StatError{Path: req.AbsPath, Cause: err}
	}
	if !info.IsDir() {
		return nil, &InvalidDirectoryError{Path: req.AbsPath}
	}

	rel, err := t.pathResolver.Rel(req.AbsPath)
	if err != nil {
		return nil, &StatError{Path: req.AbsPath, Cause: err}
	}

	children, err := t.fs.ListDir(req.AbsPath)
	if err != nil {
		return nil, &ListDirError{Path: req.AbsPath, Cause: err}
	}

	entries := make([]DirectoryEntry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if child.Mode()&os.ModeSymlink != 0 {
			// Broken links keep their own metadata.
			if target, err := t.fs.Stat(filepath.Join(req.AbsPath, name)); err == nil {
				child = target
			}
		}

		if t.ignoreMatcher != nil && t.ignoreMatcher.ShouldIgnore(path.Join(rel, name), child.IsDir()) {
			continue
		}

		kind := KindFile
		if child.IsDir() {
			kind = KindDirectory
		}

		entries = append(entries, DirectoryEntry{
			Kind:    kind,
			Name:    name,
			ModTime: child.ModTime(),
			Size:    child.Size(),
		})
	}

	return &ListDirectoryResponse{
		DirectoryPath: rel,
		Entries:       entries,
	}, nil
}

package path

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects how parent references in client paths are treated.
type Mode string

const (
	// ModeStrict rejects any ".." path component.
	ModeStrict Mode = "strict"
	// ModeStrip deletes every ".." substring and never fails.
	ModeStrip Mode = "strip"
)

// Resolver maps untrusted client paths onto the served root.
// It never touches the filesystem; the root is canonicalised once at startup.
type Resolver struct {
	root string
	mode Mode
}

// NewResolver creates a new path resolver for the given root.
// An unknown mode falls back to ModeStrict.
func NewResolver(root string, mode Mode) *Resolver {
	if mode != ModeStrip {
		mode = ModeStrict
	}
	if root != "" {
		root = filepath.Clean(root)
	}
	return &Resolver{
		root: root,
		mode: mode,
	}
}

// CanonicaliseRoot canonicalises a root path by making it absolute and resolving symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &RootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &RootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &RootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &RootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// Root returns the canonical root the resolver was built with.
func (r *Resolver) Root() string {
	return r.root
}

// Mode returns the active sandbox mode.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// Abs resolves a client path against the root.
// Absolute input is taken relative to the root ("/etc" becomes "<root>/etc").
func (r *Resolver) Abs(userPath string) (string, error) {
	if r.root == "" {
		return "", ErrRootNotSet
	}

	rel := filepath.FromSlash(userPath)
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, string(filepath.Separator)) {
		rel = "." + rel
	}

	if r.mode == ModeStrip {
		// Textual rule: "a..b" becomes "ab" and symlinks are not inspected.
		return filepath.Join(r.root, strings.ReplaceAll(rel, "..", "")), nil
	}

	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == ".." {
			return "", &TraversalError{Path: userPath}
		}
	}

	abs := filepath.Join(r.root, rel)

	// Boundary check: must be the root itself or a child of the root
	if !r.within(abs) {
		return "", &TraversalError{Path: userPath}
	}

	return abs, nil
}

// Rel maps an absolute path under the root back to its slash-separated
// root-relative form. The root itself maps to "".
func (r *Resolver) Rel(abs string) (string, error) {
	if r.root == "" {
		return "", ErrRootNotSet
	}

	abs = filepath.Clean(abs)
	if !r.within(abs) {
		return "", ErrOutsideRoot
	}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", ErrOutsideRoot
	}

	if rel == "." {
		return "", nil
	}

	return filepath.ToSlash(rel), nil
}

func (r *Resolver) within(abs string) bool {
	if abs == r.root {
		return true
	}
	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(abs, prefix)
}

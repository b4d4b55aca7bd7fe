package directory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Cyclone1070/fileview/internal/tool/service/fs"
	"github.com/Cyclone1070/fileview/internal/tool/service/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Local mocks for directory listing tests

type mockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.mode.IsDir() }
func (m *mockFileInfo) Sys() any           { return nil }

type mockFileSystem struct {
	infos    map[string]*mockFileInfo
	children map[string][]string
	errors   map[string]error
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		infos:    make(map[string]*mockFileInfo),
		children: make(map[string][]string),
		errors:   make(map[string]error),
	}
}

func (m *mockFileSystem) add(p string, mode os.FileMode, size int64) {
	m.infos[p] = &mockFileInfo{name: filepath.Base(p), size: size, mode: mode, modTime: time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)}
	parent := filepath.Dir(p)
	if parent != p {
		m.children[parent] = append(m.children[parent], p)
	}
}

func (m *mockFileSystem) createDir(p string)                 { m.add(p, os.ModeDir|0o755, 4096) }
func (m *mockFileSystem) createFile(p string, content string) { m.add(p, 0o644, int64(len(content))) }

func (m *mockFileSystem) Stat(p string) (os.FileInfo, error) {
	if err, ok := m.errors[p]; ok {
		return nil, err
	}
	if info, ok := m.infos[p]; ok {
		return info, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) ListDir(p string) ([]os.FileInfo, error) {
	if err, ok := m.errors["list:"+p]; ok {
		return nil, err
	}
	var out []os.FileInfo
	for _, child := range m.children[p] {
		out = append(out, m.infos[child])
	}
	return out, nil
}

type mockIgnoreMatcher struct {
	shouldIgnore func(string, bool) bool
}

func (m *mockIgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return m.shouldIgnore(relativePath, isDir)
}

func names(entries []DirectoryEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name)
	}
	sort.Strings(out)
	return out
}

func TestListDirectory(t *testing.T) {
	root := "/srv/data"
	resolver := path.NewResolver(root, path.ModeStrict)

	t.Run("hidden entries are omitted", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)
		fs.createFile(root+"/a.log", "aaa")
		fs.createFile(root+"/b.log", "b")
		fs.createDir(root + "/archive")
		fs.createFile(root+"/.env", "SECRET=1")
		fs.createDir(root + "/.git")

		tool := NewListDirectoryTool(fs, nil, resolver)
		resp, err := tool.Run(context.Background(), ListDirectoryRequest{AbsPath: root})

		require.NoError(t, err)
		assert.Equal(t, "", resp.DirectoryPath)
		assert.Equal(t, []string{"a.log", "archive", "b.log"}, names(resp.Entries))
	})

	t.Run("entry metadata", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)
		fs.createDir(root + "/logs")
		fs.createFile(root+"/logs/app.log", "hello")
		fs.createDir(root + "/logs/2024")

		tool := NewListDirectoryTool(fs, nil, resolver)
		resp, err := tool.Run(context.Background(), ListDirectoryRequest{AbsPath: root + "/logs"})

		require.NoError(t, err)
		assert.Equal(t, "logs", resp.DirectoryPath)
		require.Len(t, resp.Entries, 2)

		byName := map[string]DirectoryEntry{}
		for _, e := range resp.Entries {
			byName[e.Name] = e
		}
		assert.Equal(t, KindFile, byName["app.log"].Kind)
		assert.Equal(t, int64(5), byName["app.log"].Size)
		assert.Equal(t, "2024-03-09 14:05:07", byName["app.log"].Date())
		assert.Equal(t, KindDirectory, byName["2024"].Kind)
	})

	t.Run("empty directory", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)

		resp, err := NewListDirectoryTool(fs, nil, resolver).Run(context.Background(), ListDirectoryRequest{AbsPath: root})

		require.NoError(t, err)
		assert.Empty(t, resp.Entries)
	})

	t.Run("ignore matcher filters entries", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)
		fs.createDir(root + "/cache")
		fs.createFile(root+"/keep.txt", "k")
		fs.createFile(root+"/drop.gz", "d")

		var seen []string
		matcher := &mockIgnoreMatcher{shouldIgnore: func(rel string, isDir bool) bool {
			seen = append(seen, rel)
			return strings.HasSuffix(rel, ".gz") || (rel == "cache" && isDir)
		}}

		resp, err := NewListDirectoryTool(fs, matcher, resolver).Run(context.Background(), ListDirectoryRequest{AbsPath: root})

		require.NoError(t, err)
		assert.Equal(t, []string{"keep.txt"}, names(resp.Entries))
		assert.ElementsMatch(t, []string{"cache", "keep.txt", "drop.gz"}, seen)
	})
}

func TestListDirectory_Errors(t *testing.T) {
	root := "/srv/data"
	resolver := path.NewResolver(root, path.ModeStrict)

	t.Run("file is an invalid directory", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)
		fs.createFile(root+"/app.log", "x")

		_, err := NewListDirectoryTool(fs, nil, resolver).Run(context.Background(), ListDirectoryRequest{AbsPath: root + "/app.log"})

		var invalid *InvalidDirectoryError
		require.ErrorAs(t, err, &invalid)
		assert.True(t, invalid.InvalidDirectory())
		assert.Contains(t, err.Error(), "invalid directory configuration")
	})

	t.Run("missing path is an IO error", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)

		_, err := NewListDirectoryTool(fs, nil, resolver).Run(context.Background(), ListDirectoryRequest{AbsPath: root + "/missing"})

		var statErr *StatError
		require.ErrorAs(t, err, &statErr)
		assert.True(t, statErr.IOError())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("list failure is an IO error", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)
		fs.errors["list:"+root] = os.ErrPermission

		_, err := NewListDirectoryTool(fs, nil, resolver).Run(context.Background(), ListDirectoryRequest{AbsPath: root})

		var listErr *ListDirError
		require.ErrorAs(t, err, &listErr)
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("cancelled context", func(t *testing.T) {
		fs := newMockFileSystem()
		fs.createDir(root)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewListDirectoryTool(fs, nil, resolver).Run(ctx, ListDirectoryRequest{AbsPath: root})

		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestListDirectory_RealFilesystem(t *testing.T) {
	root, err := path.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	resolver := path.NewResolver(root, path.ModeStrict)

	require.NoError(t, os.Mkdir(filepath.Join(root, "target"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("h"), 0o644))
	if err := os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "dirlink")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken")))

	tool := NewListDirectoryTool(fs.NewOSFileSystem(), nil, resolver)
	resp, err := tool.Run(context.Background(), ListDirectoryRequest{AbsPath: root})

	require.NoError(t, err)
	kinds := map[string]EntryKind{}
	sizes := map[string]int64{}
	for _, e := range resp.Entries {
		kinds[e.Name] = e.Kind
		sizes[e.Name] = e.Size
	}
	assert.Equal(t, map[string]EntryKind{
		"target":    KindDirectory,
		"notes.txt": KindFile,
		"dirlink":   KindDirectory,
		"broken":    KindFile,
	}, kinds)

	assert.Equal(t, int64(len("notes")), sizes["notes.txt"])
	dirInfo, err := os.Stat(filepath.Join(root, "target"))
	require.NoError(t, err)
	assert.Equal(t, dirInfo.Size(), sizes["target"], "directories report their own entry size")
}

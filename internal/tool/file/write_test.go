package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Cyclone1070/fileview/internal/config"
	"github.com/Cyclone1070/fileview/internal/tool/service/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(enabled bool) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Write.Enabled = enabled
	return cfg
}

type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestWriteGate_Disabled(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "notes.txt")
	gate := NewWriteGate(fs.NewOSFileSystem(), writeConfig(false), zap.NewNop())

	err := gate.Append(context.Background(), AppendRequest{AbsPath: target, Content: "x"})
	var disabled *WriteDisabledError
	require.ErrorAs(t, err, &disabled)
	assert.Equal(t, "write mode is disabled", err.Error())

	_, err = gate.Upload(context.Background(), UploadRequest{AbsPath: target, Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrWriteDisabled)

	_, err = gate.Exists(context.Background(), target)
	assert.ErrorIs(t, err, ErrWriteDisabled)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "disabled gate must not touch the filesystem")
}

func TestWriteGate_Append(t *testing.T) {
	t.Run("creates file and escapes content", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "notes.txt")
		gate := NewWriteGate(fs.NewOSFileSystem(), writeConfig(true), nil)

		require.NoError(t, gate.Append(context.Background(), AppendRequest{AbsPath: target, Content: `<b>"hi" & bye</b>`}))
		require.NoError(t, gate.Append(context.Background(), AppendRequest{AbsPath: target, Content: "second"}))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "\n&lt;b&gt;&#34;hi&#34; &amp; bye&lt;/b&gt;\nsecond", string(data))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm()&0o644)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "missing", "notes.txt")
		gate := NewWriteGate(fs.NewOSFileSystem(), writeConfig(true), nil)

		err := gate.Append(context.Background(), AppendRequest{AbsPath: target, Content: "x"})

		var failed *WriteFailedError
		require.ErrorAs(t, err, &failed)
		assert.True(t, failed.WriteFailed())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("concurrent appends all land", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "notes.txt")
		gate := NewWriteGate(fs.NewOSFileSystem(), writeConfig(true), nil)

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, gate.Append(context.Background(), AppendRequest{AbsPath: target, Content: "line"}))
			}()
		}
		wg.Wait()

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, 20, strings.Count(string(data), "\nline"))
	})
}

func TestWriteGate_Upload(t *testing.T) {
	t.Run("streams body into file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "report.csv")
		gate := NewWriteGate(fs.NewOSFileSystem(), writeConfig(true), nil)

		resp, err := gate.Upload(context.Background(), UploadRequest{AbsPath: target, Body: strings.NewReader("a,b\n1,2\n")})

		require.NoError(t, err)
		assert.Equal(t, int64(8), resp.BytesWritten)
		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(data))
	})

	t.Run("failed body removes partial file", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "report.csv")
		gate := NewWriteGate(fs.NewOSFileSystem(), writeConfig(true), nil)

		body := io.MultiReader(strings.NewReader("partial"), erroringReader{})
		_, err := gate.Upload(context.Background(), UploadRequest{AbsPath: target, Body: body})

		var failed *WriteFailedError
		require.ErrorAs(t, err, &failed)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestWriteGate_Exists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "present.txt"), []byte("x"), 0o644))
	gate := NewWriteGate(fs.NewOSFileSystem(), writeConfig(true), nil)

	exists, err := gate.Exists(context.Background(), filepath.Join(dir, "present.txt"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = gate.Exists(context.Background(), filepath.Join(dir, "absent.txt"))
	require.NoError(t, err)
	assert.False(t, exists)
}

package file

import (
	"context"
	"errors"
	"html"
	iofs "io/fs"

	"github.com/Cyclone1070/fileview/internal/config"
	"go.uber.org/zap"
)

// writePerm is the mode of files created by append and upload.
const writePerm = 0o644

// WriteGate performs append, upload and exists behind write.enabled.
// It does not lock: concurrent writers to one path race at the filesystem level.
type WriteGate struct {
	fileOps fileWriter
	config  *config.Config
	logger  *zap.Logger
}

// NewWriteGate creates a new WriteGate with injected dependencies.
func NewWriteGate(fileOps fileWriter, cfg *config.Config, logger *zap.Logger) *WriteGate {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WriteGate{
		fileOps: fileOps,
		config:  cfg,
		logger:  logger,
	}
}

// Enabled reports whether write operations are allowed.
func (g *WriteGate) Enabled() bool {
	return g.config.Write.Enabled
}

// Append writes a newline followed by the HTML-escaped content to the end of
// the file, creating it if needed.
func (g *WriteGate) Append(ctx context.Context, req AppendRequest) error {
	if !g.Enabled() {
		return &WriteDisabledError{}
	}

	data := []byte("\n" + html.EscapeString(req.Content))
	if err := g.fileOps.AppendFile(req.AbsPath, data, writePerm); err != nil {
		g.logger.Warn("append failed", zap.String("path", req.AbsPath), zap.Error(err))
		return &WriteFailedError{Op: "append", Path: req.AbsPath, Cause: err}
	}

	g.logger.Info("appended", zap.String("path", req.AbsPath), zap.Int("bytes", len(data)))
	return nil
}

// Upload streams the body into the target file. A failed upload leaves no
// partial file behind.
func (g *WriteGate) Upload(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	if !g.Enabled() {
		return nil, &WriteDisabledError{}
	}

	written, err := g.fileOps.WriteStreamAtomic(req.AbsPath, req.Body, writePerm)
	if err != nil {
		g.logger.Warn("upload failed", zap.String("path", req.AbsPath), zap.Int64("bytes", written), zap.Error(err))
		return nil, &WriteFailedError{Op: "upload", Path: req.AbsPath, Cause: err}
	}

	g.logger.Info("uploaded", zap.String("path", req.AbsPath), zap.Int64("bytes", written))
	return &UploadResponse{BytesWritten: written}, nil
}

// Exists reports whether anything exists at the path.
func (g *WriteGate) Exists(ctx context.Context, absPath string) (bool, error) {
	if !g.Enabled() {
		return false, &WriteDisabledError{}
	}

	_, err := g.fileOps.Stat(absPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, &WriteFailedError{Op: "exists", Path: absPath, Cause: err}
}

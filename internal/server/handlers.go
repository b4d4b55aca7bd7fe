package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/logging"
	"github.com/Cyclone1070/fileview/internal/tool/file"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// uploadPart is the multipart form field carrying the file content.
const uploadPart = "file"

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleOperation runs a named operation with the request parameters as arguments.
// GET operations read the query string; POST operations read the form as well.
func (s *Server) handleOperation(name string) echo.HandlerFunc {
	op := s.ops[name]
	return func(c echo.Context) error {
		params := c.QueryParams()
		if c.Request().Method == http.MethodPost {
			form, err := c.FormParams()
			if err != nil {
				return s.renderError(c, name, &adapter.InvalidArgumentsError{Op: name, Cause: err})
			}
			params = form
		}

		out, err := op.Execute(c.Request().Context(), argsFromValues(params))
		if err != nil {
			return s.renderError(c, name, err)
		}
		return c.JSON(http.StatusOK, out)
	}
}

// handleUpload streams the "file" part of a multipart body to path/file_name.
// file_name falls back to the part's own file name.
func (s *Server) handleUpload(c echo.Context) error {
	if !s.service.WritesEnabled() {
		return s.renderError(c, adapter.OpUpload, &file.WriteDisabledError{})
	}

	req := c.Request()
	if limit := s.config.Server.MaxUploadSize; limit > 0 {
		req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
	}

	args := adapter.UploadArgs{
		Path:     c.QueryParam("path"),
		FileName: c.QueryParam("file_name"),
	}

	part, err := filePart(req)
	if err != nil {
		return s.renderError(c, adapter.OpUpload, &adapter.MalformedUploadError{Cause: err})
	}
	defer part.Close()

	if args.FileName == "" {
		args.FileName = part.FileName()
	}

	out, err := s.service.Upload(req.Context(), args, part)
	if err != nil {
		return s.renderError(c, adapter.OpUpload, err)
	}
	return c.JSON(http.StatusOK, out)
}

func filePart(req *http.Request) (*multipart.Part, error) {
	reader, err := req.MultipartReader()
	if err != nil {
		return nil, err
	}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return nil, errMissingFilePart
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == uploadPart {
			return part, nil
		}
		part.Close()
	}
}

// renderError writes the failure payload of an operation. Write operations use
// the {status, message} shape; the others use ErrorPayload.
func (s *Server) renderError(c echo.Context, op string, err error) error {
	logger := logging.WithContext(c.Request().Context())

	var status int
	var payload any
	if adapter.IsWriteOperation(op) {
		status, payload = adapter.RenderWriteError(err)
	} else {
		status, payload = adapter.RenderError(err)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("operation failed", zap.String("op", op), zap.Error(err))
	} else {
		logger.Debug("operation rejected", zap.String("op", op), zap.Int("status", status), zap.Error(err))
	}
	return c.JSON(status, payload)
}

// argsFromValues flattens request parameters. Empty values are dropped so an
// absent parameter and an empty one decode alike.
func argsFromValues(values url.Values) map[string]any {
	args := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		args[key] = vals[0]
	}
	return args
}

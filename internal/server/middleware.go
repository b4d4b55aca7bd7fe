package server

import (
	"time"

	"github.com/Cyclone1070/fileview/internal/logging"
	"github.com/Cyclone1070/fileview/internal/metrics"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// requestLogger attaches a request-scoped logger to the context and records
// every request once it completes.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			reqLogger := s.logger.With(zap.String("request_id", requestID))

			ctx := logging.WithRequestID(req.Context(), requestID)
			ctx = logging.IntoContext(ctx, reqLogger)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			duration := time.Since(start)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.RecordHTTPRequest(req.Method, route, status, duration)
			reqLogger.Info("request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", status),
				zap.Duration("duration", duration),
				zap.String("remote_ip", c.RealIP()),
			)
			return nil
		}
	}
}

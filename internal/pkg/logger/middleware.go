package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with method, path, status and
// latency using the given logger.
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", latency),
				String("remote_ip", c.RealIP()),
			}
			if requestID := res.Header().Get(echo.HeaderXRequestID); requestID != "" {
				fields = append(fields, String("request_id", requestID))
			}
			if err != nil {
				fields = append(fields, Err(err))
				zl.Error("HTTP request failed", fields...)
				return nil
			}

			zl.Info("HTTP request", fields...)
			return nil
		}
	}
}

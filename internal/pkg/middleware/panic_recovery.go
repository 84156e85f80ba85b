package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// in handlers and logs them with a stack trace.
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	if zl == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zl)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zl *logger.ZapLogger) {
	stack := debug.Stack()

	zl.Error("Panic recovered in HTTP handler",
		logger.Any("panic", r),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("remote_ip", c.RealIP()),
		logger.String("stacktrace", string(stack)))

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}
}

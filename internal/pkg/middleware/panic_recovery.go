package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/adipras/campusfound/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with a stack trace, and reports the error to New Relic when a
// transaction is active.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	method := c.Request().Method
	path := c.Request().URL.Path
	clientIP := c.RealIP()

	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	var callerInfo string
	if pc, file, line, ok := runtime.Caller(4); ok {
		fn := runtime.FuncForPC(pc)
		if fn != nil {
			callerInfo = fmt.Sprintf("%s:%d %s", file, line, fn.Name())
		} else {
			callerInfo = fmt.Sprintf("%s:%d", file, line)
		}
	}

	panicMsg := fmt.Sprintf("Panic recovered: %v", r)

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: panicMsg,
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.value":    r,
				"panic.type":     fmt.Sprintf("%T", r),
				"panic.caller":   callerInfo,
				"stack_trace":    stackTrace,
				"http.method":    method,
				"http.path":      path,
				"http.client_ip": clientIP,
				"request_id":     requestID,
			},
		})
	}

	zapLogger.WithFields(map[string]interface{}{
		"panic_value": r,
		"panic_type":  fmt.Sprintf("%T", r),
		"caller":      callerInfo,
		"method":      method,
		"path":        path,
		"client_ip":   clientIP,
		"request_id":  requestID,
	}).Error("Panic recovered during request processing",
		logger.String("stack_trace", stackTrace))

	if !c.Response().Committed {
		response := map[string]interface{}{
			"ok":    false,
			"error": "Internal Server Error",
		}
		if requestID != "" {
			response["request_id"] = requestID
		}
		if err := c.JSON(http.StatusInternalServerError, response); err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

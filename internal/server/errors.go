package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/handlers"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. Expected errors
// (echo.HTTPError) are answered with their status; anything else is logged
// with a stack trace and answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
			if code >= http.StatusInternalServerError {
				appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error",
					"error", err, "path", c.Request().URL.Path)
			}
		} else {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case c.Request().Header.Get("HX-Request") == "true" || c.Request().Header.Get(echo.HeaderAccept) == echo.MIMEApplicationJSON:
			respErr = c.JSON(code, handlers.ErrorResponse{Code: errorCode(code), Message: message})
		default:
			respErr = c.String(code, message)
		}
		if respErr != nil {
			slog.Error("Failed to write error response", "error", respErr)
		}
	}
}

// errorCode turns a status into a snake_case code such as "not_found".
func errorCode(status int) string {
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}

package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(original)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(Logger)

	var scoped *slog.Logger
	e.GET("/ok", func(c echo.Context) error {
		scoped = FromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.NotSame(t, slog.Default(), scoped)
	assert.Contains(t, buf.String(), "request_id="+rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), "status=204")

	buf.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "status=500")

	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

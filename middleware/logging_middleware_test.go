package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeLogging(t *testing.T, path string, handler echo.HandlerFunc) (*bytes.Buffer, error) {
	t.Helper()

	var buf bytes.Buffer
	mw := LoggingMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return &buf, mw(handler)(c)
}

func TestLoggingMiddleware_LogsCompletion(t *testing.T) {
	buf, err := invokeLogging(t, "/presentations/recent", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "path=/presentations/recent")
	assert.Contains(t, out, "status=200")
}

func TestLoggingMiddleware_LogsHandlerError(t *testing.T) {
	handlerErr := errors.New("boom")
	buf, err := invokeLogging(t, "/presentations/search", func(c echo.Context) error {
		return handlerErr
	})
	assert.ErrorIs(t, err, handlerErr)

	out := buf.String()
	assert.Contains(t, out, "operation failed")
	assert.Contains(t, out, "GET /presentations/search")
	assert.Contains(t, out, "boom")
}

func TestLoggingMiddleware_SkipsHealth(t *testing.T) {
	buf, err := invokeLogging(t, "/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "capsule/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestErrorContext(t *testing.T) (*ErrorMiddleware, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := NewErrorMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/capsules", nil)
	rec := httptest.NewRecorder()

	return m, e.NewContext(req, rec), rec
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	m, c, rec := newTestErrorContext(t)

	m.HandleHTTPError(domainerrors.ErrCapsuleNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAPSULE_NOT_FOUND")
}

func TestErrorMiddleware_HandleHTTPError_StringHTTPError(t *testing.T) {
	m, c, rec := newTestErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "malformed body"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed body")
}

func TestErrorMiddleware_HandleHTTPError_NonStringHTTPErrorMessage(t *testing.T) {
	m, c, rec := newTestErrorContext(t)

	// echo routinely stores non-string values in Message; rendering must
	// not assume a string.
	httpErr := echo.NewHTTPError(http.StatusBadRequest, errors.New("binding failed"))

	assert.NotPanics(t, func() {
		m.HandleHTTPError(httpErr, c)
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "binding failed")
}

func TestErrorMiddleware_HandleHTTPError_UnknownError(t *testing.T) {
	m, c, rec := newTestErrorContext(t)

	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

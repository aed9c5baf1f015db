package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardlytics/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverFrom(t *testing.T, traceID string, panicValue interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/aggregate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(panicValue)
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	return rec
}

func TestPanicRecovery_EnvelopeAndTraceID(t *testing.T) {
	rec := recoverFrom(t, "trace-42", "boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SYSTEM_001", resp.Error.Code)
	assert.Equal(t, "trace-42", resp.Error.TraceID)
}

func TestPanicRecovery_MissingTraceID(t *testing.T) {
	rec := recoverFrom(t, "", "boom")

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unknown", resp.Error.TraceID)
}

func TestPanicRecovery_NonStringPanicValues(t *testing.T) {
	for name, value := range map[string]interface{}{
		"error value": assert.AnError,
		"integer":     7,
		"struct":      struct{ reason string }{"decimal overflow"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := recoverFrom(t, "trace-43", value)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
		})
	}
}

func TestPanicRecovery_PassThroughWhenHealthy(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHandler(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/submit", nil)
	rec := httptest.NewRecorder()
	HTTPErrorHandler(slog.Default())(err, e.NewContext(req, rec))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec := runHandler(t, http.MethodPost, NewBadRequest("Invalid email format"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Invalid email format"}, decodeBody(t, rec))
}

func TestHTTPErrorHandler_InternalHidesCause(t *testing.T) {
	cause := errors.New("oauth2: cannot fetch token: 401 invalid_grant")
	rec := runHandler(t, http.MethodPost, NewInternal("Failed to load spreadsheet", cause))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to load spreadsheet", body["error"])
	assert.Len(t, body, 1)
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	tests := []struct {
		name    string
		err     *echo.HTTPError
		status  int
		message string
	}{
		{"not found", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"custom string", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"), http.StatusRequestEntityTooLarge, "too big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandler(t, http.MethodGet, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeBody(t, rec)["error"])
		})
	}
}

func TestHTTPErrorHandler_PlainError(t *testing.T) {
	rec := runHandler(t, http.MethodPost, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", decodeBody(t, rec)["error"])
}

func TestHTTPErrorHandler_Head(t *testing.T) {
	rec := runHandler(t, http.MethodHead, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

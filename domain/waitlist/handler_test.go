package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imsurajj/amsoft/internal/config"
	"github.com/imsurajj/amsoft/internal/server"
	"github.com/imsurajj/amsoft/pkg/apperror"
)

type fakeStore struct {
	mu      sync.Mutex
	records []Record
	err     error
}

func (f *fakeStore) Append(_ context.Context, rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) Records() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Record(nil), f.records...)
}

func newTestEcho(store Store) *echo.Echo {
	log := slog.Default()
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)
	RegisterRoutes(e, NewHandler(NewService(store, log), log))
	return e
}

func submit(t *testing.T, e *echo.Echo, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestHandler_Submit_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", "", MsgInvalidJSON},
		{"malformed", "{name:", MsgInvalidJSON},
		{"null body", "null", MsgNotStrings},
		{"missing name", `{"email":"a@b.c"}`, MsgNotStrings},
		{"name not a string", `{"name":42,"email":"a@b.c"}`, MsgNotStrings},
		{"email null", `{"name":"Jane","email":null}`, MsgNotStrings},
		{"empty name", `{"name":"","email":"a@b.c"}`, MsgEmpty},
		{"whitespace email", `{"name":"Jane","email":"   "}`, MsgEmpty},
		{"no tld", `{"name":"Jane","email":"a@b"}`, MsgInvalidEmail},
		{"space in local part", `{"name":"Jane","email":"a @b.c"}`, MsgInvalidEmail},
		{"no-break space in local part", `{"name":"Jane","email":"a\u00a0@b.c"}`, MsgInvalidEmail},
		{"byte order mark name", `{"name":"\ufeff","email":"a@b.c"}`, MsgEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			code, body := submit(t, newTestEcho(store), tt.body)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, map[string]any{"error": tt.want}, body)
			assert.Empty(t, store.Records(), "rejected submissions must not reach the store")
		})
	}
}

func TestHandler_Submit_Success(t *testing.T) {
	store := &fakeStore{}
	e := newTestEcho(store)

	before := time.Now().UTC()
	code, body := submit(t, e, `{"name":"Jane Doe","email":"jane@example.com"}`)
	after := time.Now().UTC()

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": true, "message": SuccessMessage}, body)

	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Jane Doe", records[0].Name)
	assert.Equal(t, "jane@example.com", records[0].Email)
	assert.False(t, records[0].Timestamp.Before(before.Truncate(time.Millisecond)))
	assert.False(t, records[0].Timestamp.After(after))
}

func TestHandler_Submit_DuplicatesAppendTwice(t *testing.T) {
	store := &fakeStore{}
	e := newTestEcho(store)
	payload := `{"name":"Jane","email":"a@b.c"}`

	code, _ := submit(t, e, payload)
	require.Equal(t, http.StatusOK, code)
	code, _ = submit(t, e, payload)
	require.Equal(t, http.StatusOK, code)

	assert.Len(t, store.Records(), 2)
}

func TestHandler_Submit_StoreFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"message is passed through", errors.New("Failed to load spreadsheet: permission denied"), "Failed to load spreadsheet: permission denied"},
		{"empty message falls back", errors.New(""), apperror.FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{err: tt.err}
			code, body := submit(t, newTestEcho(store), `{"name":"Jane","email":"a@b.c"}`)

			assert.Equal(t, http.StatusInternalServerError, code)
			assert.Equal(t, map[string]any{"error": tt.want}, body)
			assert.Empty(t, store.Records())
		})
	}
}

func TestRecord_Row(t *testing.T) {
	rec := Record{
		Name:      "Jane",
		Email:     "a@b.c",
		Timestamp: time.Date(2026, 10, 18, 14, 3, 7, 120_456_000, time.FixedZone("CEST", 2*60*60)),
	}

	assert.Equal(t, map[string]string{
		"Name":      "Jane",
		"Email":     "a@b.c",
		"Timestamp": "2026-10-18T12:03:07.120Z",
	}, rec.Row())
}

func TestService_Submit_UsesClock(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, slog.Default())
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	rec, err := svc.Submit(context.Background(), Signup{Name: "Jane", Email: "a@b.c"})
	require.NoError(t, err)

	assert.Equal(t, fixed, rec.Timestamp)
	assert.Equal(t, []Record{rec}, store.Records())
}

func TestHandler_Submit_BodyLimit(t *testing.T) {
	payload := func(nameLen int) string {
		return `{"name":"` + strings.Repeat("a", nameLen) + `","email":"a@b.c"}`
	}

	tests := []struct {
		name     string
		body     string
		chunked  bool
		wantCode int
		wantBody map[string]any
	}{
		{
			name:     "oversized with content length",
			body:     payload(70 * 1024),
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: map[string]any{"error": "Request Entity Too Large"},
		},
		{
			name:     "oversized chunked",
			body:     payload(70 * 1024),
			chunked:  true,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: map[string]any{"error": "Request Entity Too Large"},
		},
		{
			name:     "within limit chunked",
			body:     payload(60 * 1024),
			chunked:  true,
			wantCode: http.StatusOK,
			wantBody: map[string]any{"success": true, "message": SuccessMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			log := slog.Default()
			e := server.NewEcho(&config.Config{AllowedOrigins: []string{"*"}}, log)
			RegisterRoutes(e, NewHandler(NewService(store, log), log))

			req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.chunked {
				req.ContentLength = -1
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
			assert.Equal(t, tt.wantBody, body)
			if tt.wantCode != http.StatusOK {
				assert.Empty(t, store.Records())
			}
		})
	}
}

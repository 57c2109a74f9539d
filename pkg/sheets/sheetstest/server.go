// Package sheetstest runs an in-process stand-in for the Google OAuth token
// endpoint and the parts of the Sheets v4 API the sheets client uses.
package sheetstest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const (
	// AccessToken is the bearer token the fake token endpoint issues.
	AccessToken = "sheetstest-access-token"

	// ClientEmail is the service-account email used by the helpers.
	ClientEmail = "waitlist@amsoft-test.iam.gserviceaccount.com"

	jwtGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

// Server is a fake Google backend holding one spreadsheet.
type Server struct {
	*httptest.Server

	SpreadsheetID string

	mu         sync.Mutex
	title      string
	worksheets []string
	header     []any
	rows       [][]any
	failLoad   int
	failAppend int
	tokens     int
	queries    []string
}

// NewServer starts a fake with a spreadsheet "Waitlist" whose first
// worksheet "Sheet1" has the header Name, Email, Timestamp.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		SpreadsheetID: "1WaitlistSheetTestID",
		title:         "Waitlist",
		worksheets:    []string{"Sheet1"},
		header:        []any{"Name", "Email", "Timestamp"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", s.handleToken)
	mux.HandleFunc("/v4/spreadsheets/", s.handleSheets)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// TokenURL is the fake OAuth token endpoint.
func (s *Server) TokenURL() string { return s.URL + "/token" }

// Endpoint is the base URL to hand to the Sheets client.
func (s *Server) Endpoint() string { return s.URL + "/" }

// SetWorksheets replaces the worksheet titles; an empty list removes all.
func (s *Server) SetWorksheets(titles ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worksheets = titles
}

// SetHeader replaces row 1 of the first worksheet.
func (s *Server) SetHeader(cols ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = make([]any, len(cols))
	for i, c := range cols {
		s.header[i] = c
	}
}

// FailLoad makes metadata requests answer with the given HTTP status.
func (s *Server) FailLoad(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLoad = status
}

// FailAppend makes append requests answer with the given HTTP status.
func (s *Server) FailAppend(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAppend = status
}

// Rows returns the appended data rows as strings.
func (s *Server) Rows() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = make([]string, len(r))
		for j, v := range r {
			out[i][j] = fmt.Sprint(v)
		}
	}
	return out
}

// TokenRequests is the number of access tokens issued.
func (s *Server) TokenRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens
}

// AppendQueries returns the raw query strings of append requests.
func (s *Server) AppendQueries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != jwtGrantType || r.PostForm.Get("assertion") == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid_grant"})
		return
	}

	s.mu.Lock()
	s.tokens++
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": AccessToken,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (s *Server) handleSheets(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+AccessToken {
		writeAPIError(w, http.StatusUnauthorized, "Request is missing required authentication credential.")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets/")
	id, valuesRange, hasValues := strings.Cut(rest, "/values/")
	if id != s.SpreadsheetID {
		writeAPIError(w, http.StatusNotFound, "Requested entity was not found.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !hasValues && r.Method == http.MethodGet:
		if s.failLoad != 0 {
			writeAPIError(w, s.failLoad, http.StatusText(s.failLoad))
			return
		}
		sheets := make([]map[string]any, len(s.worksheets))
		for i, title := range s.worksheets {
			sheets[i] = map[string]any{"properties": map[string]any{"sheetId": i, "title": title, "index": i}}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"spreadsheetId": s.SpreadsheetID,
			"properties":    map[string]any{"title": s.title},
			"sheets":        sheets,
		})

	case hasValues && r.Method == http.MethodGet:
		values := [][]any{}
		if len(s.header) > 0 {
			values = append(values, s.header)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"range":          valuesRange,
			"majorDimension": "ROWS",
			"values":         values,
		})

	case hasValues && r.Method == http.MethodPost && strings.HasSuffix(valuesRange, ":append"):
		if s.failAppend != 0 {
			writeAPIError(w, s.failAppend, http.StatusText(s.failAppend))
			return
		}
		var body struct {
			Values [][]any `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeAPIError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.queries = append(s.queries, r.URL.RawQuery)
		s.rows = append(s.rows, body.Values...)
		writeJSON(w, http.StatusOK, map[string]any{
			"spreadsheetId": s.SpreadsheetID,
			"updates": map[string]any{
				"spreadsheetId": s.SpreadsheetID,
				"updatedRange":  fmt.Sprintf("%s!A%d", strings.TrimSuffix(valuesRange, ":append"), len(s.rows)+1),
				"updatedRows":   len(body.Values),
			},
		})

	default:
		writeAPIError(w, http.StatusNotFound, "Unsupported request")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": message,
			"status":  strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_")),
		},
	})
}

// PrivateKeyPEM generates a throwaway RSA key in PKCS#8 PEM form.
func PrivateKeyPEM(t testing.TB) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating RSA key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshalling RSA key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

// EscapedKey returns key with newlines written as literal "\n", the way it
// appears in a single-line environment variable.
func EscapedKey(key string) string {
	return strings.ReplaceAll(key, "\n", `\n`)
}

// WriteServiceAccountFile writes a service-account JSON key file and returns
// its path.
func WriteServiceAccountFile(t testing.TB, privateKey, tokenURL string) string {
	t.Helper()
	data, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "amsoft-test",
		"private_key_id": "0123456789abcdef",
		"private_key":    privateKey,
		"client_email":   ClientEmail,
		"client_id":      "100000000000000000001",
		"token_uri":      tokenURL,
	})
	if err != nil {
		t.Fatalf("encoding service account: %v", err)
	}
	path := filepath.Join(t.TempDir(), "service-account.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing service account: %v", err)
	}
	return path
}

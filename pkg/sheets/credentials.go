package sheets

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Scope grants edit access to spreadsheets the service account is shared on.
const Scope = sheetsapi.SpreadsheetsScope

// Credential sources.
const (
	SourceEnv  = "env"
	SourceFile = "file"
)

// CredentialsConfig selects how the service-account identity is obtained.
type CredentialsConfig struct {
	// Source is SourceEnv or SourceFile
	Source string

	// SourceEnv
	ClientEmail string
	PrivateKey  string

	// SourceFile: path to a service-account JSON key
	ServiceAccountFile string

	// Token endpoint; defaults to google.JWTTokenURL
	TokenURL string
}

// serviceAccountKey is the subset of a Google service-account key file the
// JWT flow needs.
type serviceAccountKey struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri,omitempty"`
}

// NormalizePrivateKey turns literal "\n" sequences, as found in keys pasted
// into a single-line environment variable, into real newlines.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// ResolveCredentials builds service-account credentials from either source.
// The key is parsed here so a bad credential fails at startup rather than on
// the first submission.
func ResolveCredentials(ctx context.Context, cfg CredentialsConfig) (*google.Credentials, error) {
	var key serviceAccountKey

	switch cfg.Source {
	case SourceEnv:
		key = serviceAccountKey{
			Type:        "service_account",
			ClientEmail: strings.TrimSpace(cfg.ClientEmail),
			PrivateKey:  NormalizePrivateKey(cfg.PrivateKey),
		}
	case SourceFile:
		data, err := os.ReadFile(cfg.ServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("reading service account file %q: %w", cfg.ServiceAccountFile, err)
		}
		if err := json.Unmarshal(data, &key); err != nil {
			return nil, fmt.Errorf("parsing service account file %q: %w", cfg.ServiceAccountFile, err)
		}
		if key.Type != "service_account" {
			return nil, fmt.Errorf("service account file %q has type %q, want service_account", cfg.ServiceAccountFile, key.Type)
		}
		key.PrivateKey = NormalizePrivateKey(key.PrivateKey)
	default:
		return nil, fmt.Errorf("unknown credentials source %q", cfg.Source)
	}

	if key.ClientEmail == "" {
		return nil, errors.New("service account client email is empty")
	}
	if err := checkPrivateKey(key.PrivateKey); err != nil {
		return nil, err
	}

	if cfg.TokenURL != "" {
		key.TokenURI = cfg.TokenURL
	}
	if key.TokenURI == "" {
		key.TokenURI = google.JWTTokenURL
	}

	data, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("encoding service account key: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, Scope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}
	return creds, nil
}

func checkPrivateKey(key string) error {
	block, _ := pem.Decode([]byte(key))
	if block == nil {
		return errors.New("service account private key is not PEM encoded")
	}
	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return nil
	}
	if _, err := x509.ParsePKCS1PrivateKey(block.Bytes); err != nil {
		return fmt.Errorf("service account private key: %w", err)
	}
	return nil
}

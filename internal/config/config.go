package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"3000"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Allowed CORS origins; "*" allows any
	AllowedOrigins []string `env:"API_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Sheets SheetsConfig
	Site   SiteConfig
	Otel   OtelConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Credential sources for the spreadsheet service account.
const (
	CredentialsAuto = "auto"
	CredentialsEnv  = "env"
	CredentialsFile = "file"
)

// SheetsConfig holds the Google Sheets destination and service-account
// credentials.
type SheetsConfig struct {
	// Spreadsheet document id (the long id in the sheet URL)
	SheetID string `env:"GOOGLE_SHEET_ID"`

	// auto, env or file. auto picks file when ServiceAccountFile is set.
	CredentialsSource string `env:"GOOGLE_CREDENTIALS_SOURCE" envDefault:"auto"`

	ClientEmail string `env:"GOOGLE_CLIENT_EMAIL"`
	PrivateKey  string `env:"GOOGLE_PRIVATE_KEY"`

	// Path to a bundled service-account JSON key
	ServiceAccountFile string `env:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	// Optional deadline for one submission's calls; 0 leaves only the
	// request context.
	RequestTimeout time.Duration `env:"SHEETS_REQUEST_TIMEOUT" envDefault:"0s"`

	// Overrides the API endpoint, for emulators
	Endpoint string `env:"SHEETS_ENDPOINT"`
}

// Source returns the effective credential source with auto resolved.
func (s SheetsConfig) Source() string {
	src := strings.ToLower(strings.TrimSpace(s.CredentialsSource))
	if src == "" || src == CredentialsAuto {
		if s.ServiceAccountFile != "" {
			return CredentialsFile
		}
		return CredentialsEnv
	}
	return src
}

// Validate reports every missing or inconsistent sheets setting at once.
func (s SheetsConfig) Validate() error {
	var errs []error
	if strings.TrimSpace(s.SheetID) == "" {
		errs = append(errs, errors.New("GOOGLE_SHEET_ID is required"))
	}

	switch s.Source() {
	case CredentialsEnv:
		if strings.TrimSpace(s.ClientEmail) == "" {
			errs = append(errs, errors.New("GOOGLE_CLIENT_EMAIL is required"))
		}
		if strings.TrimSpace(s.PrivateKey) == "" {
			errs = append(errs, errors.New("GOOGLE_PRIVATE_KEY is required"))
		}
	case CredentialsFile:
		if strings.TrimSpace(s.ServiceAccountFile) == "" {
			errs = append(errs, errors.New("GOOGLE_SERVICE_ACCOUNT_FILE is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("GOOGLE_CREDENTIALS_SOURCE %q is not one of auto, env, file", s.CredentialsSource))
	}

	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("SHEETS_REQUEST_TIMEOUT must not be negative"))
	}
	return errors.Join(errs...)
}

// SiteConfig holds landing page copy and the optional launch date.
type SiteConfig struct {
	Title       string `env:"SITE_TITLE" envDefault:"Creator Monetization System"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"Monetize your audience with affiliate marketing built for creators."`

	// RFC 3339 timestamp or YYYY-MM-DD; empty hides the countdown
	LaunchDate string `env:"LAUNCH_DATE"`
}

// Launch parses LaunchDate. ok is false when it is empty.
func (s SiteConfig) Launch() (t time.Time, ok bool, err error) {
	raw := strings.TrimSpace(s.LaunchDate)
	if raw == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err = time.Parse(layout, raw); err == nil {
			return t.UTC(), true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("LAUNCH_DATE %q is neither RFC 3339 nor YYYY-MM-DD", raw)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT %d is out of range", c.ServerPort))
	}
	if err := c.Sheets.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.Site.Launch(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables. A missing sheet
// id or credential stops the app before it serves any request.
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("credentials_source", cfg.Sheets.Source()),
		slog.Bool("has_sheet_id", cfg.Sheets.SheetID != ""),
		slog.Bool("has_client_email", cfg.Sheets.ClientEmail != ""),
		slog.Bool("has_private_key", cfg.Sheets.PrivateKey != ""),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}

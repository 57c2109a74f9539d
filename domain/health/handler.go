package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/imsurajj/amsoft/internal/config"
	"github.com/imsurajj/amsoft/internal/version"
	"github.com/imsurajj/amsoft/pkg/sheets"
)

// Handler handles health check requests
type Handler struct {
	cfg     *config.Config
	sheets  *sheets.Client
	system  systemProbe
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(cfg *config.Config, client *sheets.Client) *Handler {
	return &Handler{
		cfg:     cfg,
		sheets:  client,
		system:  newSystemProbe(),
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// sheetsCheck reports whether the spreadsheet destination is wired. It never
// calls Google.
func (h *Handler) sheetsCheck() Check {
	if h.sheets == nil {
		return Check{Status: "unhealthy", Message: "sheets client not initialized"}
	}
	return Check{Status: "healthy", Message: "credentials: " + h.cfg.Sheets.Source()}
}

// Health returns the overall service health
// GET /health
func (h *Handler) Health(c echo.Context) error {
	check := h.sheetsCheck()

	resp := HealthResponse{
		Status:    check.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    map[string]Check{"sheets": check},
	}

	status := http.StatusOK
	if check.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}

// Healthz is the liveness probe
// GET /healthz
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready is the readiness probe
// GET /ready
func (h *Handler) Ready(c echo.Context) error {
	if h.sheets == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Sheets client not initialized",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ready"})
}

// Debug returns runtime details outside production
// GET /debug
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.Environment == "production" {
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Current(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb": mem.Alloc / 1024 / 1024,
			"sys_mb":   mem.Sys / 1024 / 1024,
			"num_gc":   mem.NumGC,
		},
		"sheets": map[string]any{
			"credentials_source": h.cfg.Sheets.Source(),
			"request_timeout":    h.cfg.Sheets.RequestTimeout.String(),
		},
		"tracing": h.cfg.Otel.Enabled(),
		"system":  h.system.collect(ctx),
	})
}

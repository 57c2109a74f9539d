package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/imsurajj/amsoft/internal/config"
	"github.com/imsurajj/amsoft/pkg/apperror"
	"github.com/imsurajj/amsoft/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewEcho),
	fx.Invoke(StartServer),
)

// MaxBodySize caps request bodies; a signup is two short strings.
const MaxBodySize = "64K"

// NewEcho creates and configures an Echo instance
func NewEcho(cfg *config.Config, log *slog.Logger) *echo.Echo {
	log = log.With(logger.Scope("http"))

	e := echo.New()
	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)

	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(
		middleware.CORSWithConfig(corsConfig(cfg.AllowedOrigins)),

		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),

		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper:      skipRequestLog,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogError:     true,
			LogMethod:    true,
			LogRequestID: true,
			HandleError:  true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				attrs := []any{
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
					slog.String("request_id", v.RequestID),
				}
				switch {
				case v.Status >= http.StatusInternalServerError:
					log.Error("request failed", append(attrs, logger.Error(v.Error))...)
				case v.Error != nil:
					log.Warn("request rejected", append(attrs, logger.Error(v.Error))...)
				default:
					log.Info("request", attrs...)
				}
				return nil
			},
		}),

		middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.Error("panic recovered",
					logger.Error(err),
					slog.String("stack", string(stack)),
				)
				return apperror.NewInternal("", err)
			},
		}),

		middleware.BodyLimit(MaxBodySize),
	)

	return e
}

func corsConfig(origins []string) middleware.CORSConfig {
	cors := middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cors.AllowOrigins = []string{"*"}
		return cors
	}
	cors.AllowOrigins = origins
	return cors
}

func skipRequestLog(c echo.Context) bool {
	switch c.Request().URL.Path {
	case "/health", "/healthz", "/ready", "/metrics":
		return true
	}
	return false
}

// StartServer binds the listener during fx start, so a taken port fails
// startup, then serves in the background until stop.
func StartServer(lc fx.Lifecycle, e *echo.Echo, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.ServerAddress, fmt.Sprint(cfg.ServerPort)),
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", server.Addr, err)
			}
			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}

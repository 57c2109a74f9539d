// Package main is the entry point of the amsoft waitlist server: the landing
// page plus POST /api/submit, which appends signups to a Google Sheet.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/imsurajj/amsoft/domain/health"
	"github.com/imsurajj/amsoft/domain/landing"
	"github.com/imsurajj/amsoft/domain/tracing"
	"github.com/imsurajj/amsoft/domain/waitlist"
	"github.com/imsurajj/amsoft/internal/config"
	"github.com/imsurajj/amsoft/internal/server"
	"github.com/imsurajj/amsoft/pkg/logger"
	"github.com/imsurajj/amsoft/pkg/sheets"
)

func main() {
	// Load() keeps variables already set; Overload() lets .env.local win over .env
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(options()).Run()
}

func options() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,
		sheets.Module,

		// Domain
		health.Module,
		waitlist.Module,
		landing.Module,
	)
}

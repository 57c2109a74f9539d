package waitlist

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers waitlist routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/api/submit", h.Submit)
}

package landing

import (
	"embed"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// StaticFiles returns the embedded assets rooted at static/.
func StaticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// RegisterRoutes registers the landing page and its static assets
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Index)
	e.StaticFS("/static", StaticFiles())
}

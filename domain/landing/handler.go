package landing

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/imsurajj/amsoft/domain/landing/components"
	"github.com/imsurajj/amsoft/internal/config"
	"github.com/imsurajj/amsoft/pkg/logger"
)

// AnnouncementText is shown in the bar above the navbar.
const AnnouncementText = "🎉 Launch Special: Get 30% off on annual plans"

// Handler renders the landing page
type Handler struct {
	site      config.SiteConfig
	launch    time.Time
	hasLaunch bool
	log       *slog.Logger
	now       func() time.Time
}

// NewHandler creates a landing handler. The launch date was validated with
// the config, so a parse failure here only hides the countdown.
func NewHandler(cfg *config.Config, log *slog.Logger) *Handler {
	log = log.With(logger.Scope("landing"))
	launch, ok, err := cfg.Site.Launch()
	if err != nil {
		log.Warn("ignoring invalid launch date", logger.Error(err))
		ok = false
	}
	return &Handler{
		site:      cfg.Site,
		launch:    launch,
		hasLaunch: ok,
		log:       log,
		now:       time.Now,
	}
}

// Index renders the landing page
// GET /
func (h *Handler) Index(c echo.Context) error {
	now := h.now()
	page := components.Layout(
		components.PageConfig{
			Title:       h.site.Title,
			Description: h.site.Description,
		},
		components.AnnouncementBar(AnnouncementText),
		components.Navbar(),
		components.Hero(components.HeroProps{
			Now:       now,
			Launch:    h.launch,
			HasLaunch: h.hasLaunch,
		}),
		components.CTA(),
		components.PageFooter(h.site.Title, now.Year()),
	)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return page.Render(c.Response())
}

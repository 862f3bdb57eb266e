package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pawprint/internal/platform/health"
	"pawprint/internal/platform/middleware"
)

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Logger         *slog.Logger
	Site           *SiteHandler
	Admin          *AdminHandler
	Embed          *EmbedHandler
	Health         *health.Handler
	Staff          middleware.PrincipalValidator
	AdminPath      string
	RequestTimeout time.Duration
}

// NewRouter builds the chi router with the platform middleware stack and all
// three surfaces: public site, admin API, and embeddable widget.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	r.Use(middleware.Timeout(timeout))
	if deps.Staff != nil {
		r.Use(middleware.OptionalAuth(deps.Staff, deps.Logger))
	}

	deps.Health.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	// Admin surface, reachable at the reserved path regardless of routing
	// mode.
	adminPath := deps.AdminPath
	if adminPath == "" {
		adminPath = "app"
	}
	r.Route("/"+adminPath+"/api", func(r chi.Router) {
		r.Post("/embed-tokens", deps.Admin.HandleMintToken)
	})

	// Widget surface for third-party embeds.
	r.Route("/embed", func(r chi.Router) {
		r.Get("/animals", deps.Embed.HandleListAnimals)
		r.Get("/animals/{animalID}", deps.Embed.HandleGetAnimal)
		r.Get("/frame", deps.Embed.HandleFrame)
	})

	// Everything else is a public tenant page.
	r.Get("/*", deps.Site.ServePage)

	return r
}

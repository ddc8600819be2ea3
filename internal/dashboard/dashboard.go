package dashboard

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ziadkadry99/livingcost/internal/charts"
	"github.com/ziadkadry99/livingcost/internal/livereload"
	"github.com/ziadkadry99/livingcost/internal/pages"
)

// ReloadPath is where browsers connect for live-reload notices.
const ReloadPath = "/_reload"

// FragmentPrefix serves a route's page tree without the surrounding shell.
const FragmentPrefix = "/_fragment"

// AppConfig is built once at startup and shared read-only by every request.
type AppConfig struct {
	Title     string
	PlotlyURL string
	Loader    *charts.Loader
	Pages     *pages.Registry
	// Debug shows error details on failed pages.
	Debug bool
	// Reload enables live reload when non-nil.
	Reload *livereload.Hub
	// RenderTimeout bounds page and API handlers. Zero means 30s.
	RenderTimeout time.Duration
}

// Dashboard serves the page routes, their fragments, and static assets.
type Dashboard struct {
	cfg AppConfig
}

// New creates a new Dashboard.
func New(cfg AppConfig) *Dashboard {
	if cfg.RenderTimeout == 0 {
		cfg.RenderTimeout = 30 * time.Second
	}
	return &Dashboard{cfg: cfg}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(d.cfg.RenderTimeout))

		for _, route := range d.cfg.Pages.Routes() {
			page, _ := d.cfg.Pages.Lookup(route)
			r.Get(route, d.pageHandler(page))
		}
		r.Get(FragmentPrefix, d.handleFragment)
		r.Get(FragmentPrefix+"/*", d.handleFragment)
		r.Get("/api/charts", d.handleCharts)
		r.Handle("/static/*", staticHandler())
	})

	// The websocket outlives any render timeout.
	if d.cfg.Reload != nil {
		r.Get(ReloadPath, d.cfg.Reload.ServeHTTP)
	}

	r.NotFound(d.handleNotFound)
}

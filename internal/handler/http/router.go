package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thabani29/electronic/pkg/health"
	"github.com/thabani29/electronic/pkg/middleware"
)

// RouterConfig carries everything the router needs to assemble the API.
type RouterConfig struct {
	ServiceName string
	Logger      *slog.Logger
	CORSOrigins []string

	Products *ProductHandler
	Orders   *OrderHandler
	Upload   *UploadHandler
	Health   *health.Handler

	// UploadDir is served read-only under /uploads.
	UploadDir string
}

// NewRouter builds the HTTP router with the standard middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.CORSOrigins
	}
	r.Use(middleware.CORS(corsCfg))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", cfg.Products.List)
		r.Post("/products", cfg.Products.Create)
		r.Get("/products/{id}", cfg.Products.Get)

		r.Post("/orders", cfg.Orders.Create)
		r.Post("/upload", cfg.Upload.Upload)
	})

	if cfg.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}

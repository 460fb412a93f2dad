package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/lunar-api/internal/config"
	"github.com/zapponejosh/lunar-api/internal/metrics"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /metrics
//	GET    /api/v1/lunar/today
//	GET    /api/v1/lunar/date/{date}
//	GET    /api/v1/lunar/range?start=&end=
//	GET    /api/v1/lunar/month/{year}/{month}?leap=
//	GET    /api/v1/gregorian?year=&month=&day=&leap=
//	GET    /api/v1/calendar/{year}/{month}
//	GET    /api/v1/festivals?year=
//	POST   /api/v1/festivals          (API key)
//	DELETE /api/v1/festivals/{id}     (API key)
func SetupRoutes(handlers *Handlers, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
		m.Middleware,
	)
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.HealthCheck)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimitMiddleware(cfg.RateLimitRPS))

		// ======================================================================
		// Conversions
		// ======================================================================
		r.Get("/lunar/today", handlers.GetToday)
		r.Get("/lunar/date/{date}", handlers.GetDate)
		r.Get("/lunar/range", handlers.GetRange)
		r.Get("/lunar/month/{year}/{month}", handlers.GetLunarMonth)
		r.Get("/gregorian", handlers.GetGregorian)
		r.Get("/calendar/{year}/{month}", handlers.GetCalendar)

		// ======================================================================
		// Festivals
		// ======================================================================
		r.Get("/festivals", handlers.ListFestivals)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Post("/festivals", handlers.CreateFestival)
			r.Delete("/festivals/{id}", handlers.DeleteFestival)
		})
	})

	return r
}

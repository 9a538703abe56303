package routes

import (
	"log/slog"

	handlers "github.com/Husein100/TravelDataInternalAPI/internal/http"
	mid "github.com/Husein100/TravelDataInternalAPI/internal/middleware"
	"github.com/Husein100/TravelDataInternalAPI/internal/obs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func GetRoutes(h *handlers.Handler, metrics *obs.Metrics, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	// Useful built-in middlewares
	r.Use(middleware.RealIP)    // proper client IP extraction
	r.Use(middleware.RequestID) // sets request ID header
	r.Use(middleware.Recoverer) // built-in recoverer to avoid panics taking server down

	// our custom middlewares: metrics & logging
	r.Use(mid.MetricsMiddleware(metrics))
	r.Use(mid.LoggingMiddleware(logger))

	// endpoints
	r.Route("/api", func(r chi.Router) {
		r.Get("/flights/search", h.SearchFlights)
		r.Get("/hotels/search", h.SearchHotels)
	})
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}

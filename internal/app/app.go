package app

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/Husein100/TravelDataInternalAPI/internal/amadeus"
	"github.com/Husein100/TravelDataInternalAPI/internal/config"
	handlers "github.com/Husein100/TravelDataInternalAPI/internal/http"
	"github.com/Husein100/TravelDataInternalAPI/internal/obs"
	"github.com/Husein100/TravelDataInternalAPI/internal/providers"
	"github.com/Husein100/TravelDataInternalAPI/internal/routes"
	"github.com/Husein100/TravelDataInternalAPI/internal/search"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Router  http.Handler
	Logger  *slog.Logger
	Metrics *obs.Metrics
	Flights *search.FlightService
	Hotels  *search.HotelService
}

func New(cfg *config.Config) *App {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))

	customRegistry := prometheus.NewRegistry()
	metrics := obs.NewMetrics(customRegistry)

	client := amadeus.NewClient(cfg.Amadeus, logger)
	flights := search.NewFlightService(client, metrics, logger)
	hotels := search.NewHotelService(providers.NewFixtureProvider(), metrics, logger)

	h := handlers.NewHandler(flights, hotels)
	router := routes.GetRoutes(h, metrics, logger)

	return &App{
		Router:  router,
		Logger:  logger,
		Metrics: metrics,
		Flights: flights,
		Hotels:  hotels,
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

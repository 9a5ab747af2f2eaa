package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-site/handlers"
	"github.com/Dosada05/tournament-site/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes mounts the preview endpoints on router.
func SetupRoutes(
	router chi.Router,
	siteHandler *handlers.SiteHandler,
	webSocketHandler *handlers.WebSocketHandler,
	allowedOrigins []string,
	logger *slog.Logger,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/", siteHandler.Index)
	router.Get("/index.html", siteHandler.Index)
	router.Get("/standings.json", siteHandler.Snapshot)
	router.Get("/healthz", siteHandler.Health)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/ws", webSocketHandler.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Get("/standings/{group}", siteHandler.GroupStandings)
		r.Get("/crosses", siteHandler.Crosses)
	})
}

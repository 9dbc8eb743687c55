package server

import (
	"compress/gzip"
	"net/http"

	"github.com/VladKvetkin/takeaway/internal/handler"
	"github.com/VladKvetkin/takeaway/internal/middleware"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) setupRoutes(handler *handler.Handler) {
	s.setupMiddleware()

	s.mux.Get("/", http.HandlerFunc(handler.Root))
	s.mux.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/register", http.HandlerFunc(handler.Register))
		r.Post("/login", http.HandlerFunc(handler.Login))

		r.Get("/users/{id}", http.HandlerFunc(handler.GetUser))

		r.Get("/orders", http.HandlerFunc(handler.GetOrders))
		r.Post("/orders", http.HandlerFunc(handler.CreateOrder))
	})
}

func (s *Server) setupMiddleware() {
	s.mux.Use(
		chiMiddleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: s.config.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding"},
			MaxAge:         300,
		}),
		middleware.DecompressBodyReader,
		middleware.Logger,
		middleware.Metrics,
		chiMiddleware.Compress(gzip.BestCompression, "application/json", "text/html"),
	)
}

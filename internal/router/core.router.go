package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	hrest "telegram-relay-service/internal/handler/http"
)

// SetupRoutes configures the HTTP routes for the relay service
func SetupRoutes(r chi.Router, h *hrest.RelayHandler) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS", "GET"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(hrest.MethodNotAllowed)

	r.Post("/api/telegram", h.HandleSubmit)
	// Preflight OPTIONS is answered by the CORS middleware; this catches
	// plain OPTIONS probes, which also get an empty 200.
	r.Options("/api/telegram", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/health", hrest.HandleHealth)
	return r
}

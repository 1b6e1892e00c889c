package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/username/sellerprofit/src/config"
)

// NewRouter mounts every route behind the global middleware stack.
func NewRouter(cfg *config.AppConfig, sessions *SessionHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CORSMiddleware(cfg.AllowedOrigins))
	r.Use(RateLimitMiddleware(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))
	r.Use(LoggingMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Seller profit backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/variants", HandleListVariants)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessions.HandleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(sessionContext)
				r.Get("/", sessions.HandleGetSession)
				r.Delete("/", sessions.HandleDeleteSession)
				r.Post("/manual-costs", sessions.HandleSubmitManualCosts)
				r.Get("/export", sessions.HandleExport)
			})
		})
	})
	return r
}

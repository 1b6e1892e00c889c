package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/username/sellerprofit/src/logger"
)

// RateLimitMiddleware rejects requests once the shared limiter is exhausted.
func RateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				logger.L.Warn("Rate limit exceeded",
					"method", r.Method,
					"path", r.URL.Path,
					"remoteAddr", r.RemoteAddr)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows the configured front-end origins and exposes ETag and Content-Disposition.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "If-None-Match", "X-Requested-With"},
		ExposedHeaders:   []string{"ETag", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.FromContext(r.Context()).Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestID", middleware.GetReqID(r.Context()))
	})
}

// sessionContext tags the request context with the {id} URL parameter for logging.
func sessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, "id"); id != "" {
			r = r.WithContext(logger.WithSession(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// Package httpapi exposes the push pipeline over local HTTP so a browser
// userscript can post the record it scraped.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

// Pusher is the part of the push pipeline the API drives.
type Pusher interface {
	Push(ctx context.Context, record model.ProblemRecord) (*model.PushResult, error)
	Preview(ctx context.Context, record model.ProblemRecord) (*model.PushPreview, error)
}

// NewRouter mounts the health check and the /api routes. Cross-origin
// requests are accepted from allowedOrigin only.
func NewRouter(pusher Pusher, allowedOrigin string, logger ports.Logger) chi.Router {
	h := &Handler{pusher: pusher, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware(allowedOrigin))

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/push", h.Push)
		r.Post("/preview", h.Preview)
	})

	return r
}

// CORSMiddleware answers preflight requests and tags responses for origin.
func CORSMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin == "" || r.Header.Get("Origin") != origin {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/jaydeep-99o/Trade-pay/internal/api/handler"
	"github.com/jaydeep-99o/Trade-pay/internal/service"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h *handler.Handler, queries service.QueryService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Account API routes
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/search", h.SearchAccounts)
		r.Get("/{accountID}", h.GetAccount)
		r.Get("/{accountID}/transactions", h.GetHistory)
	})

	// Transfer is a separate top-level endpoint as it involves two accounts.
	// Rate-limited per client IP: the UI retries transient conflicts, and a
	// runaway retry loop must not hammer the store.
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(30, time.Minute))
		r.Post("/transfers", h.Transfer)
	})

	// Admin routes, gated on the caller's role.
	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin(queries))
		r.Get("/accounts", h.ListAccounts)
		r.Put("/accounts/{accountID}/balance", h.AdjustBalance)
	})

	return r
}

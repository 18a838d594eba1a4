package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tillworks/tillkeeper/internal/http/auth"
	"github.com/tillworks/tillkeeper/internal/http/cashonhand"
	"github.com/tillworks/tillkeeper/internal/http/deposit"
	"github.com/tillworks/tillkeeper/internal/http/drop"
	"github.com/tillworks/tillkeeper/internal/http/reconciliation"
	"github.com/tillworks/tillkeeper/internal/http/session"
)

type Options struct {
	AllowedOrigins []string
	JWTSecret      string
}

func New(
	opts Options,
	sessionsV1 *session.Handler,
	dropsV1 *drop.Handler,
	reconciliationsV1 *reconciliation.Handler,
	depositsV1 *deposit.Handler,
	cashOnHandV1 *cashonhand.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))

		r.Route("/sessions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			sessionsV1.Routes(r)
			r.Route("/{sessionID}/drops", dropsV1.Routes)
		})

		r.Route("/reconciliations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			reconciliationsV1.Routes(r)
		})

		r.Route("/deposits", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			depositsV1.Routes(r)
		})

		r.Route("/cash-on-hand", cashOnHandV1.Routes)
	})

	return router
}

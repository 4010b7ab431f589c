package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/httpserver/handlers"
	"github.com/linkvault/linkvault/internal/httpserver/mw"
)

func init() { Register(registerOps) }

func registerOps(r chi.Router, d deps.Deps) {
	sub := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	sub.Get("/api/healthz", handlers.Healthz(d))
	sub.Get("/api/readyz", handlers.Readyz(d))
}

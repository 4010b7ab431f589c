package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/httpserver/handlers"
	"github.com/linkvault/linkvault/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.RateLimitBurst,
		RefillPerMin: d.RateLimitPerMin,
		TrustProxy:   d.TrustProxy,
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(limit)
		r.Post("/register", handlers.Register(d))
		r.Post("/login", handlers.Login(d))
	})
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/opsrig/hostdec/internal/httpserver/deps"
	"github.com/opsrig/hostdec/internal/httpserver/handlers"
	"github.com/opsrig/hostdec/internal/httpserver/mw"
)

func init() { Register(registerBatch) }

func registerBatch(r chi.Router, d deps.Deps) {
	r.With(
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimitBurst,
			RefillPerIPPerMin: d.RateLimitPerMin,
			TrustProxy:        d.TrustProxy,
		}),
	).Post("/decode/batch", handlers.DecodeBatch(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/opsrig/hostdec/internal/httpserver/deps"
	"github.com/opsrig/hostdec/internal/httpserver/handlers"
	"github.com/opsrig/hostdec/internal/httpserver/mw"
)

func init() { Register(registerAnomalies) }

func registerAnomalies(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/anomalies", handlers.Anomalies(d))
}

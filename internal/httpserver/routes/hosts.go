package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/opsrig/hostdec/internal/httpserver/deps"
	"github.com/opsrig/hostdec/internal/httpserver/handlers"
	"github.com/opsrig/hostdec/internal/httpserver/mw"
)

func init() { Register(registerHosts) }

func registerHosts(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/hosts", handlers.Hosts(d))
}

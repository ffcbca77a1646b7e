package handlers

import (
	"net/http"

	"github.com/opsrig/hostdec/internal/httpserver/deps"
	"github.com/opsrig/hostdec/internal/logger"
)

// Reload triggers a manual reload of the inventory host list
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual inventory reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))

			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("✅ Reload triggered successfully\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("inventory reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))

			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("⏳ Reload already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}

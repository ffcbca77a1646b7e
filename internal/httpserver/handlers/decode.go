package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/opsrig/hostdec/internal/domain"
	"github.com/opsrig/hostdec/internal/httpserver/deps"
	"github.com/opsrig/hostdec/internal/logger"
	redisstore "github.com/opsrig/hostdec/internal/store/redis"
)

type decodeError struct {
	Error    string `json:"error"`
	Hostname string `json:"hostname,omitempty"`
}

// Decode resolves one hostname to its naming-convention record.
// Every call decodes fresh; nothing about the result is stored.
func Decode(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)
	memIndex := d.MemoryIndex

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name := strings.TrimSpace(r.URL.Query().Get("name"))

		w.Header().Set("Content-Type", "application/json")

		record, err := d.Decoder.Decode(name)
		if err != nil {
			status := http.StatusUnprocessableEntity
			if errors.Is(err, domain.ErrInvalidInput) {
				status = http.StatusBadRequest
			}
			d.Logger.Info("decode failed",
				logger.String("hostname", name),
				logger.Error(err))
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(decodeError{
				Error:    err.Error(),
				Hostname: name,
			})
			return
		}

		d.Logger.Info("decoded hostname",
			logger.String("hostname", name),
			logger.String("datacenter", record.Datacenter),
			logger.String("role", record.Role))

		// Bump the usage counter when the name is a known inventory host (best effort)
		id := strings.ToLower(name)
		if _, ok := memIndex.GetHost(id); ok {
			memIndex.IncrementCounter(id)
			if d.RedisClient != nil {
				_ = store.IncrementUsage(ctx, id)
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(record)
	}
}

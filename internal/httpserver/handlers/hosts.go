package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/opsrig/hostdec/internal/domain"
	"github.com/opsrig/hostdec/internal/httpserver/deps"
)

type hostEntry struct {
	ID         string                 `json:"id"`
	Hostname   string                 `json:"hostname"`
	Sources    []string               `json:"sources"`
	Counter    int64                  `json:"counter"`
	LastSeenAt time.Time              `json:"last_seen_at"`
	Disabled   bool                   `json:"disabled,omitempty"`
	Record     *domain.HostNameRecord `json:"record,omitempty"`
}

type hostsResponse struct {
	Hosts []hostEntry `json:"hosts"`
	Total int         `json:"total"`
}

// Hosts lists the inventory hosts currently held in the memory index, each
// with its record decoded on the fly. Undecodable hosts keep a nil record;
// their failure detail lives on the anomalies endpoint. Disabled entries are
// hidden unless ?all=true is passed.
func Hosts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		includeAll := r.URL.Query().Get("all") == "true"

		var entries []hostEntry
		for _, host := range d.MemoryIndex.GetAllHosts() {
			if host.Disabled && !includeAll {
				continue
			}
			record, err := d.Decoder.Decode(host.Hostname)
			if err != nil {
				record = nil
			}
			entries = append(entries, hostEntry{
				ID:         host.ID,
				Hostname:   host.Hostname,
				Sources:    host.Sources,
				Counter:    host.Counter,
				LastSeenAt: host.LastSeenAt,
				Disabled:   host.Disabled,
				Record:     record,
			})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].ID < entries[j].ID
		})

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(hostsResponse{
			Hosts: entries,
			Total: len(entries),
		})
	}
}

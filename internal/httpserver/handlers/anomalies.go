package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/opsrig/hostdec/internal/httpserver/deps"
)

type anomalyEntry struct {
	ID          string    `json:"id"`
	Hostname    string    `json:"hostname"`
	Reason      string    `json:"reason"`
	Count       int64     `json:"count"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
	Disabled    bool      `json:"disabled,omitempty"`
}

type anomaliesResponse struct {
	Anomalies []anomalyEntry `json:"anomalies"`
	Total     int            `json:"total"`
	LastSweep string         `json:"last_sweep"`
}

// Anomalies lists inventory hosts quarantined by the decode sweep.
// Cleared entries are hidden unless ?all=true is passed.
func Anomalies(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		includeAll := r.URL.Query().Get("all") == "true"

		var entries []anomalyEntry
		for _, anomaly := range d.MemoryIndex.GetAllAnomalies() {
			if anomaly.Disabled && !includeAll {
				continue
			}
			entries = append(entries, anomalyEntry{
				ID:          anomaly.ID,
				Hostname:    anomaly.Hostname,
				Reason:      anomaly.Reason,
				Count:       anomaly.Count,
				FirstSeenAt: anomaly.FirstSeenAt,
				LastSeenAt:  anomaly.LastSeenAt,
				Disabled:    anomaly.Disabled,
			})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].ID < entries[j].ID
		})

		lastSweep := "never"
		if t := d.MemoryIndex.GetLastAnomalySweep(); !t.IsZero() {
			lastSweep = t.Format("2006-01-02 15:04:05")
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(anomaliesResponse{
			Anomalies: entries,
			Total:     len(entries),
			LastSweep: lastSweep,
		})
	}
}

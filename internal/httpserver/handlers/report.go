package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/opsrig/hostdec/internal/httpserver/deps"
)

type reportResponse struct {
	GeneratedAt   time.Time      `json:"generated_at"`
	TotalHosts    int            `json:"total_hosts"`
	Decoded       int            `json:"decoded"`
	Undecodable   int            `json:"undecodable"`
	ByDatacenter  map[string]int `json:"by_datacenter"`
	ByEnvironment map[string]int `json:"by_environment"`
	ByRole        map[string]int `json:"by_role"`
}

// Report aggregates the active inventory by decoded datacenter, environment
// and role. Every host is decoded on the fly; the breakdown is recomputed
// per request and never stored.
func Report(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		report := reportResponse{
			GeneratedAt:   d.TimeNow(),
			ByDatacenter:  make(map[string]int),
			ByEnvironment: make(map[string]int),
			ByRole:        make(map[string]int),
		}

		for _, host := range d.MemoryIndex.GetAllHosts() {
			if host.Disabled {
				continue
			}
			report.TotalHosts++

			record, err := d.Decoder.Decode(host.Hostname)
			if err != nil {
				report.Undecodable++
				continue
			}
			report.Decoded++

			report.ByDatacenter[record.Datacenter]++
			report.ByEnvironment[record.Environment]++
			report.ByRole[record.Role]++
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(report)
	}
}

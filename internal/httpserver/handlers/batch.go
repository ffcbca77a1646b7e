package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/opsrig/hostdec/internal/domain"
	"github.com/opsrig/hostdec/internal/httpserver/deps"
	"github.com/opsrig/hostdec/internal/logger"
)

type batchRequest struct {
	Names []string `json:"names"`
}

type batchResult struct {
	Input  string                 `json:"input"`
	Record *domain.HostNameRecord `json:"record,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchResult `json:"results"`
	Total   int           `json:"total"`
	Failed  int           `json:"failed"`
}

// DecodeBatch decodes a list of hostnames concurrently. Results keep the
// input order and each name carries its own error; one bad name never
// fails the batch.
func DecodeBatch(d deps.Deps) http.HandlerFunc {
	workers := d.BatchWorkers
	if workers < 1 {
		workers = 1
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(decodeError{Error: "invalid JSON body"})
			return
		}

		if len(req.Names) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(decodeError{Error: "names must not be empty"})
			return
		}

		if d.BatchMaxNames > 0 && len(req.Names) > d.BatchMaxNames {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			_ = json.NewEncoder(w).Encode(decodeError{
				Error: fmt.Sprintf("too many names: %d (max %d)", len(req.Names), d.BatchMaxNames),
			})
			return
		}

		results := make([]batchResult, len(req.Names))
		jobs := make(chan int)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for idx := range jobs {
					name := req.Names[idx]
					record, err := d.Decoder.Decode(name)
					if err != nil {
						results[idx] = batchResult{Input: name, Error: err.Error()}
						continue
					}
					results[idx] = batchResult{Input: name, Record: record}
				}
			}()
		}

		for idx := range req.Names {
			jobs <- idx
		}
		close(jobs)
		wg.Wait()

		failed := 0
		for _, result := range results {
			if result.Error != "" {
				failed++
			}
		}

		d.Logger.Info("batch decode completed",
			logger.Int("total", len(req.Names)),
			logger.Int("failed", failed))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(batchResponse{
			Results: results,
			Total:   len(req.Names),
			Failed:  failed,
		})
	}
}

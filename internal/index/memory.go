package index

import (
	"sync"
	"time"

	"github.com/opsrig/hostdec/internal/domain"
)

// MemoryIndex provides in-memory storage and lookup for inventory hosts and
// decode anomalies. It is the primary working set; Redis is hydration and
// persistence behind it.
type MemoryIndex struct {
	mu                sync.RWMutex
	hosts             map[string]*domain.Host    // ID -> Host
	anomalies         map[string]*domain.Anomaly // ID -> Anomaly
	lastReload        time.Time                  // Timestamp of last inventory reload
	lastAnomalySweep  time.Time                  // Timestamp of last decode sweep
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		hosts:     make(map[string]*domain.Host),
		anomalies: make(map[string]*domain.Anomaly),
	}
}

// UpdateHosts replaces all hosts in the index
func (idx *MemoryIndex) UpdateHosts(hosts []*domain.Host) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.hosts = make(map[string]*domain.Host, len(hosts))
	for _, host := range hosts {
		idx.hosts[host.ID] = host
	}
	idx.lastReload = time.Now()
}

// GetHost retrieves a host by ID
func (idx *MemoryIndex) GetHost(id string) (*domain.Host, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	host, ok := idx.hosts[id]
	return host, ok
}

// GetAllHosts returns all hosts
func (idx *MemoryIndex) GetAllHosts() []*domain.Host {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	hosts := make([]*domain.Host, 0, len(idx.hosts))
	for _, host := range idx.hosts {
		hosts = append(hosts, host)
	}
	return hosts
}

// AddHost adds or updates a single host
func (idx *MemoryIndex) AddHost(host *domain.Host) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.hosts[host.ID] = host
}

// DeleteHost removes a host from the index
func (idx *MemoryIndex) DeleteHost(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.hosts, id)
}

// Count returns the number of hosts in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.hosts)
}

// IncrementCounter increments the decode counter for a host
func (idx *MemoryIndex) IncrementCounter(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if host, ok := idx.hosts[id]; ok {
		host.Counter++
	}
}

// GetLastReload returns the timestamp of the last inventory reload
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}

// ─────────────────────────────────────────────────────────────────
// Anomaly methods
// ─────────────────────────────────────────────────────────────────

// UpdateAnomalies replaces all anomalies in the index
func (idx *MemoryIndex) UpdateAnomalies(anomalies []*domain.Anomaly) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.anomalies = make(map[string]*domain.Anomaly, len(anomalies))
	for _, anomaly := range anomalies {
		idx.anomalies[anomaly.ID] = anomaly
	}
	idx.lastAnomalySweep = time.Now()
}

// GetAnomaly retrieves an anomaly by ID
func (idx *MemoryIndex) GetAnomaly(id string) (*domain.Anomaly, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	anomaly, ok := idx.anomalies[id]
	return anomaly, ok
}

// GetAllAnomalies returns all anomalies
func (idx *MemoryIndex) GetAllAnomalies() []*domain.Anomaly {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	anomalies := make([]*domain.Anomaly, 0, len(idx.anomalies))
	for _, anomaly := range idx.anomalies {
		anomalies = append(anomalies, anomaly)
	}
	return anomalies
}

// AddAnomaly adds or updates a single anomaly
func (idx *MemoryIndex) AddAnomaly(anomaly *domain.Anomaly) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.anomalies[anomaly.ID] = anomaly
}

// DeleteAnomaly removes an anomaly from the index
func (idx *MemoryIndex) DeleteAnomaly(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.anomalies, id)
}

// AnomalyCount returns the number of anomalies in the index
func (idx *MemoryIndex) AnomalyCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.anomalies)
}

// GetLastAnomalySweep returns the timestamp of the last decode sweep
func (idx *MemoryIndex) GetLastAnomalySweep() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastAnomalySweep
}

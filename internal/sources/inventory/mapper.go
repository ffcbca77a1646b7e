package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsrig/hostdec/internal/domain"
)

// Mapper converts inventory entries to domain.Host entities
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapHosts converts an InventoryConfig to []domain.Host. Duplicate names
// across groups collapse into one host (first occurrence wins).
func (m *Mapper) MapHosts(config InventoryConfig) ([]*domain.Host, error) {
	var hosts []*domain.Host
	seen := make(map[string]bool)
	now := time.Now()

	// Iterate through groups
	for _, groupMap := range config {
		for groupName, entries := range groupMap {
			_ = groupName // Group name available if needed

			for _, props := range entries {
				name := strings.TrimSpace(props.Name)
				if name == "" {
					continue
				}

				id := strings.ToLower(name)
				if seen[id] {
					continue
				}
				seen[id] = true

				hosts = append(hosts, &domain.Host{
					ID:         id,
					Hostname:   name,
					Sources:    []string{"inventory"},
					LastSeenAt: now,
					Counter:    0,
				})
			}
		}
	}

	if len(hosts) == 0 {
		return nil, fmt.Errorf("no valid hosts found in inventory config")
	}

	return hosts, nil
}

package redis

import (
	"context"
	"fmt"
)

// IncrementUsage increments the decode counter for a host
func (s *Store) IncrementUsage(ctx context.Context, hostID string) error {
	return s.UpdateHostCounter(ctx, hostID)
}

// GetUsageStats retrieves decode counters for all hosts
func (s *Store) GetUsageStats(ctx context.Context) (map[string]int64, error) {
	hosts, err := s.GetAllHosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get hosts: %w", err)
	}

	stats := make(map[string]int64, len(hosts))
	for _, host := range hosts {
		stats[host.ID] = host.Counter
	}

	return stats, nil
}

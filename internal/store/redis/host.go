package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opsrig/hostdec/internal/domain"
)

const (
	// DefaultHostTTL is the default TTL for host entries (48 hours)
	DefaultHostTTL = 48 * time.Hour
	// DefaultAnomalyTTL is the default TTL for anomaly entries (7 days)
	DefaultAnomalyTTL = 7 * 24 * time.Hour
)

// Store handles Redis operations for inventory hosts and decode anomalies.
// It never stores decoded records; only input hostnames and bookkeeping.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveHost stores a host in Redis
func (s *Store) SaveHost(ctx context.Context, host *domain.Host) error {
	data, err := json.Marshal(host)
	if err != nil {
		return fmt.Errorf("failed to marshal host: %w", err)
	}

	key := HostKey(host.ID)

	// Store host data
	if err := s.client.Set(ctx, key, data, DefaultHostTTL).Err(); err != nil {
		return fmt.Errorf("failed to save host: %w", err)
	}

	// Add to set of all hosts
	if err := s.client.SAdd(ctx, AllHostsKey(), host.ID).Err(); err != nil {
		return fmt.Errorf("failed to add host to set: %w", err)
	}

	return nil
}

// GetHost retrieves a host from Redis by ID
func (s *Store) GetHost(ctx context.Context, id string) (*domain.Host, error) {
	key := HostKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("host not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	var host domain.Host
	if err := json.Unmarshal(data, &host); err != nil {
		return nil, fmt.Errorf("failed to unmarshal host: %w", err)
	}

	return &host, nil
}

// GetAllHosts retrieves all hosts from Redis
func (s *Store) GetAllHosts(ctx context.Context) ([]*domain.Host, error) {
	// Get all host IDs
	ids, err := s.client.SMembers(ctx, AllHostsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get host IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Host{}, nil
	}

	hosts := make([]*domain.Host, 0, len(ids))
	for _, id := range ids {
		host, err := s.GetHost(ctx, id)
		if err != nil {
			// Skip hosts that couldn't be retrieved (expired entries
			// linger in the set until the next bulk save)
			continue
		}
		hosts = append(hosts, host)
	}

	return hosts, nil
}

// DeleteHost removes a host from Redis
func (s *Store) DeleteHost(ctx context.Context, id string) error {
	key := HostKey(id)

	// Delete host data
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete host: %w", err)
	}

	// Remove from set of all hosts
	if err := s.client.SRem(ctx, AllHostsKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove host from set: %w", err)
	}

	return nil
}

// UpdateHostCounter increments the decode counter for a host
func (s *Store) UpdateHostCounter(ctx context.Context, id string) error {
	host, err := s.GetHost(ctx, id)
	if err != nil {
		return err
	}

	host.Counter++
	host.LastSeenAt = time.Now()

	return s.SaveHost(ctx, host)
}

// SaveHostsMany stores multiple hosts in Redis (bulk operation)
func (s *Store) SaveHostsMany(ctx context.Context, hosts []*domain.Host) error {
	pipe := s.client.Pipeline()

	for _, host := range hosts {
		data, err := json.Marshal(host)
		if err != nil {
			return fmt.Errorf("failed to marshal host %s: %w", host.ID, err)
		}

		key := HostKey(host.ID)
		pipe.Set(ctx, key, data, DefaultHostTTL)
		pipe.SAdd(ctx, AllHostsKey(), host.ID)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save hosts: %w", err)
	}

	return nil
}

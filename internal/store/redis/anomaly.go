package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/opsrig/hostdec/internal/domain"
)

// SaveAnomaly stores an anomaly in Redis
func (s *Store) SaveAnomaly(ctx context.Context, anomaly *domain.Anomaly) error {
	data, err := json.Marshal(anomaly)
	if err != nil {
		return fmt.Errorf("failed to marshal anomaly: %w", err)
	}

	key := AnomalyKey(anomaly.ID)

	if err := s.client.Set(ctx, key, data, DefaultAnomalyTTL).Err(); err != nil {
		return fmt.Errorf("failed to save anomaly: %w", err)
	}

	if err := s.client.SAdd(ctx, AllAnomaliesKey(), anomaly.ID).Err(); err != nil {
		return fmt.Errorf("failed to add anomaly to set: %w", err)
	}

	return nil
}

// GetAnomaly retrieves an anomaly from Redis by ID
func (s *Store) GetAnomaly(ctx context.Context, id string) (*domain.Anomaly, error) {
	key := AnomalyKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("anomaly not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get anomaly: %w", err)
	}

	var anomaly domain.Anomaly
	if err := json.Unmarshal(data, &anomaly); err != nil {
		return nil, fmt.Errorf("failed to unmarshal anomaly: %w", err)
	}

	return &anomaly, nil
}

// GetAllAnomalies retrieves all anomalies from Redis
func (s *Store) GetAllAnomalies(ctx context.Context) ([]*domain.Anomaly, error) {
	ids, err := s.client.SMembers(ctx, AllAnomaliesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get anomaly IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Anomaly{}, nil
	}

	anomalies := make([]*domain.Anomaly, 0, len(ids))
	for _, id := range ids {
		anomaly, err := s.GetAnomaly(ctx, id)
		if err != nil {
			continue
		}
		anomalies = append(anomalies, anomaly)
	}

	return anomalies, nil
}

// DeleteAnomaly removes an anomaly from Redis
func (s *Store) DeleteAnomaly(ctx context.Context, id string) error {
	key := AnomalyKey(id)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete anomaly: %w", err)
	}

	if err := s.client.SRem(ctx, AllAnomaliesKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove anomaly from set: %w", err)
	}

	return nil
}

// SaveAnomaliesMany stores multiple anomalies in Redis (bulk operation)
func (s *Store) SaveAnomaliesMany(ctx context.Context, anomalies []*domain.Anomaly) error {
	pipe := s.client.Pipeline()

	for _, anomaly := range anomalies {
		data, err := json.Marshal(anomaly)
		if err != nil {
			return fmt.Errorf("failed to marshal anomaly %s: %w", anomaly.ID, err)
		}

		key := AnomalyKey(anomaly.ID)
		pipe.Set(ctx, key, data, DefaultAnomalyTTL)
		pipe.SAdd(ctx, AllAnomaliesKey(), anomaly.ID)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save anomalies: %w", err)
	}

	return nil
}

package scheduler

import (
	"context"

	"github.com/opsrig/hostdec/internal/index"
	"github.com/opsrig/hostdec/internal/logger"
	redisstore "github.com/opsrig/hostdec/internal/store/redis"
)

// RedisSyncer syncs hosts and anomalies from Redis to memory index on startup
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads hosts and anomalies from Redis and updates memory index
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing hosts from redis to memory")

	hosts, err := rs.store.GetAllHosts(ctx)
	if err != nil {
		return err
	}

	if len(hosts) == 0 {
		rs.logger.Info("no hosts found in redis")
	} else {
		rs.index.UpdateHosts(hosts)
		rs.logger.Info("synced hosts from redis",
			logger.Int("count", len(hosts)))
	}

	anomalies, err := rs.store.GetAllAnomalies(ctx)
	if err != nil {
		return err
	}

	if len(anomalies) == 0 {
		rs.logger.Info("no anomalies found in redis")
		return nil
	}

	rs.index.UpdateAnomalies(anomalies)

	rs.logger.Info("synced anomalies from redis",
		logger.Int("count", len(anomalies)))

	return nil
}

package scheduler

import (
	"context"
	"time"

	"github.com/opsrig/hostdec/internal/index"
	"github.com/opsrig/hostdec/internal/logger"
	redisstore "github.com/opsrig/hostdec/internal/store/redis"
)

const (
	// DefaultGCThreshold is the duration after which disabled entries are deleted
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// GarbageCollector handles cleanup of old disabled hosts and anomalies
type GarbageCollector struct {
	store     *redisstore.Store
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic garbage collection process
func (gc *GarbageCollector) Start(ctx context.Context) error {
	// Run immediately on start
	if err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed",
			logger.Error(err))
	}

	// Start periodic collection
	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect removes hosts and anomalies that have been disabled for longer than the threshold
func (gc *GarbageCollector) Collect(ctx context.Context) error {
	gc.logger.Info("running garbage collection for disabled hosts and anomalies")

	now := time.Now()

	// Collect disabled hosts
	hostsDeleted := gc.collectHosts(ctx, now)

	// Collect disabled anomalies
	anomaliesDeleted := gc.collectAnomalies(ctx, now)

	totalDeleted := hostsDeleted + anomaliesDeleted

	if totalDeleted > 0 {
		gc.logger.Info("garbage collection completed",
			logger.Int("hosts_deleted", hostsDeleted),
			logger.Int("anomalies_deleted", anomaliesDeleted),
			logger.Int("total_deleted", totalDeleted))
	} else {
		gc.logger.Debug("no items to garbage collect")
	}

	return nil
}

// collectHosts removes disabled hosts
func (gc *GarbageCollector) collectHosts(ctx context.Context, now time.Time) int {
	hosts := gc.index.GetAllHosts()
	deletedCount := 0

	for _, host := range hosts {
		// Only collect disabled hosts
		if !host.Disabled {
			continue
		}

		// Check if host has been disabled long enough
		if host.UpdatedAt.IsZero() {
			continue
		}

		disabledDuration := now.Sub(host.UpdatedAt)
		if disabledDuration < gc.threshold {
			continue
		}

		// Delete from memory index
		gc.index.DeleteHost(host.ID)

		// Delete from Redis store (best effort)
		if gc.store != nil {
			if err := gc.store.DeleteHost(ctx, host.ID); err != nil {
				gc.logger.Warn("failed to delete host from redis",
					logger.String("host_id", host.ID),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled host",
			logger.String("host_id", host.ID),
			logger.String("hostname", host.Hostname),
			logger.String("disabled_for", disabledDuration.String()))

		deletedCount++
	}

	return deletedCount
}

// collectAnomalies removes disabled anomalies
func (gc *GarbageCollector) collectAnomalies(ctx context.Context, now time.Time) int {
	anomalies := gc.index.GetAllAnomalies()
	deletedCount := 0

	for _, anomaly := range anomalies {
		// Only collect disabled anomalies
		if !anomaly.Disabled {
			continue
		}

		// Check if anomaly has been disabled long enough
		if anomaly.UpdatedAt.IsZero() {
			continue
		}

		disabledDuration := now.Sub(anomaly.UpdatedAt)
		if disabledDuration < gc.threshold {
			continue
		}

		// Delete from memory index
		gc.index.DeleteAnomaly(anomaly.ID)

		// Delete from Redis store (best effort)
		if gc.store != nil {
			if err := gc.store.DeleteAnomaly(ctx, anomaly.ID); err != nil {
				gc.logger.Warn("failed to delete anomaly from redis",
					logger.String("anomaly_id", anomaly.ID),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled anomaly",
			logger.String("anomaly_id", anomaly.ID),
			logger.String("reason", anomaly.Reason),
			logger.String("disabled_for", disabledDuration.String()))

		deletedCount++
	}

	return deletedCount
}

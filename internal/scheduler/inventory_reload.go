package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/opsrig/hostdec/internal/domain"
	"github.com/opsrig/hostdec/internal/index"
	"github.com/opsrig/hostdec/internal/logger"
	"github.com/opsrig/hostdec/internal/sources/inventory"
	redisstore "github.com/opsrig/hostdec/internal/store/redis"
)

// InventoryReloader handles periodic reloading of the inventory host list.
// Each reload also runs a decode sweep: every hostname is decoded once and
// failures are recorded as anomalies. The decoded records themselves are
// discarded; only the failure bookkeeping is kept.
type InventoryReloader struct {
	loader        *inventory.Loader
	mapper        *inventory.Mapper
	decoder       *domain.Decoder
	store         *redisstore.Store
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewInventoryReloader creates a new inventory reloader
func NewInventoryReloader(
	inventoryFile string,
	decoder *domain.Decoder,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *InventoryReloader {
	return &InventoryReloader{
		loader:        inventory.NewLoader(inventoryFile),
		mapper:        inventory.NewMapper(),
		decoder:       decoder,
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process
func (ir *InventoryReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := ir.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(ir.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := ir.Reload(ctx); err != nil {
					ir.logger.Error("failed to reload inventory",
						logger.Error(err))
				}
			case <-ir.manualTrigger:
				ir.logger.Info("manual reload triggered")
				if err := ir.Reload(ctx); err != nil {
					ir.logger.Error("failed to reload inventory",
						logger.Error(err))
				}
			case <-ir.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (ir *InventoryReloader) Stop() {
	close(ir.stopCh)
}

// Reload loads hosts from the inventory file, runs the decode sweep and
// updates store + index entries.
func (ir *InventoryReloader) Reload(ctx context.Context) error {
	ir.logger.Info("reloading hosts from inventory")

	config, err := ir.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	newHosts, err := ir.mapper.MapHosts(config)
	if err != nil {
		return fmt.Errorf("failed to map hosts: %w", err)
	}

	ir.logger.Info("loaded hosts from inventory",
		logger.Int("count", len(newHosts)))

	// Find hosts that were removed from the inventory and mark them disabled
	disabledHosts := ir.markRemovedHosts(newHosts)
	if len(disabledHosts) > 0 {
		ir.logger.Info("marking removed hosts as disabled",
			logger.Int("count", len(disabledHosts)))
	}

	// Decode sweep over the fresh host list
	anomalies := ir.sweep(newHosts)

	// Combine active and disabled hosts for storage
	newHosts = append(newHosts, disabledHosts...)

	// Update memory index
	ir.index.UpdateHosts(newHosts)
	ir.index.UpdateAnomalies(anomalies)

	// Update Redis store (best effort)
	if ir.store != nil {
		if err := ir.store.SaveHostsMany(ctx, newHosts); err != nil {
			ir.logger.Warn("failed to save hosts to redis",
				logger.Error(err))
			// Don't fail - memory index is the primary source
		}
		if len(anomalies) > 0 {
			if err := ir.store.SaveAnomaliesMany(ctx, anomalies); err != nil {
				ir.logger.Warn("failed to save anomalies to redis",
					logger.Error(err))
			}
		}
	}

	return nil
}

// markRemovedHosts flags inventory-sourced hosts missing from the new list
func (ir *InventoryReloader) markRemovedHosts(newHosts []*domain.Host) []*domain.Host {
	existing := ir.inventoryHosts()

	newIDs := make(map[string]bool, len(newHosts))
	for _, host := range newHosts {
		newIDs[host.ID] = true
	}

	var disabled []*domain.Host
	for _, host := range existing {
		if !newIDs[host.ID] {
			// Stamp only on the transition so the GC clock keeps ticking
			if !host.Disabled {
				host.Disabled = true
				host.UpdatedAt = time.Now()
			}
			disabled = append(disabled, host)
		}
	}
	return disabled
}

// sweep decodes every host once and carries anomaly bookkeeping forward.
// Anomalies no longer reproduced are marked disabled so the garbage
// collector can drop them later.
func (ir *InventoryReloader) sweep(hosts []*domain.Host) []*domain.Anomaly {
	now := time.Now()
	previous := make(map[string]*domain.Anomaly)
	for _, anomaly := range ir.index.GetAllAnomalies() {
		previous[anomaly.ID] = anomaly
	}

	var anomalies []*domain.Anomaly
	failed := 0
	for _, host := range hosts {
		_, err := ir.decoder.Decode(host.Hostname)
		reason := domain.ReasonForDecodeError(err)
		if reason == "" {
			continue
		}
		failed++

		if prev, ok := previous[host.ID]; ok {
			prev.Reason = reason
			prev.Count++
			prev.LastSeenAt = now
			prev.UpdatedAt = now
			prev.Disabled = false
			anomalies = append(anomalies, prev)
			delete(previous, host.ID)
			continue
		}

		anomalies = append(anomalies, &domain.Anomaly{
			ID:          host.ID,
			Hostname:    host.Hostname,
			Reason:      reason,
			Count:       1,
			FirstSeenAt: now,
			LastSeenAt:  now,
			UpdatedAt:   now,
		})
	}

	// Whatever remains was not reproduced this sweep
	for _, anomaly := range previous {
		if !anomaly.Disabled {
			anomaly.Disabled = true
			anomaly.UpdatedAt = now
		}
		anomalies = append(anomalies, anomaly)
	}

	if failed > 0 {
		ir.logger.Warn("decode sweep found undecodable hosts",
			logger.Int("failed", failed),
			logger.Int("total", len(hosts)))
	} else {
		ir.logger.Info("decode sweep clean",
			logger.Int("total", len(hosts)))
	}

	return anomalies
}

// inventoryHosts returns the indexed hosts discovered from the inventory
func (ir *InventoryReloader) inventoryHosts() []*domain.Host {
	var hosts []*domain.Host
	for _, host := range ir.index.GetAllHosts() {
		for _, source := range host.Sources {
			if source == "inventory" {
				hosts = append(hosts, host)
				break
			}
		}
	}
	return hosts
}

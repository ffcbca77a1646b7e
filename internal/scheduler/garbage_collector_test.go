package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/opsrig/hostdec/internal/domain"
	"github.com/opsrig/hostdec/internal/index"
	"github.com/opsrig/hostdec/internal/logger"
)

func TestGarbageCollector_Collect(t *testing.T) {
	log := logger.New("error", false)
	memIndex := index.NewMemoryIndex()

	// Add some test hosts
	now := time.Now()
	hosts := []*domain.Host{
		{
			ID:        "denaerp01-d",
			Hostname:  "DENAERP01-D",
			Sources:   []string{"inventory"},
			Disabled:  false,
			UpdatedAt: now,
		},
		{
			ID:        "cinad02-z",
			Hostname:  "cinad02-z",
			Sources:   []string{"inventory"},
			Disabled:  true,
			UpdatedAt: now.Add(-10 * 24 * time.Hour), // Disabled 10 days ago
		},
		{
			ID:        "atlsql04",
			Hostname:  "atlsql04",
			Sources:   []string{"inventory"},
			Disabled:  true,
			UpdatedAt: now.Add(-35 * 24 * time.Hour), // Disabled 35 days ago
		},
	}

	memIndex.UpdateHosts(hosts)

	anomalies := []*domain.Anomaly{
		{
			ID:        "xyzqqq",
			Hostname:  "XYZQQQ",
			Reason:    domain.AnomalyUnrecognized,
			Disabled:  false,
			UpdatedAt: now,
		},
		{
			ID:        "bogus01",
			Hostname:  "bogus01",
			Reason:    domain.AnomalyUnrecognized,
			Disabled:  true,
			UpdatedAt: now.Add(-40 * 24 * time.Hour), // Disabled 40 days ago
		},
	}

	memIndex.UpdateAnomalies(anomalies)

	// Create GC with 30 day threshold
	gc := NewGarbageCollector(
		nil, // no Redis store for this test
		memIndex,
		log,
		24*time.Hour,
		30*24*time.Hour,
	)

	// Run collection
	err := gc.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	// Check results
	allHosts := memIndex.GetAllHosts()

	// Should have 2 hosts left (active + recently disabled)
	if len(allHosts) != 2 {
		t.Errorf("Expected 2 hosts after GC, got %d", len(allHosts))
	}

	// Check that active host is still there
	if _, ok := memIndex.GetHost("denaerp01-d"); !ok {
		t.Error("Active host was incorrectly removed")
	}

	// Check that recently disabled is still there
	if _, ok := memIndex.GetHost("cinad02-z"); !ok {
		t.Error("Recently disabled host was incorrectly removed")
	}

	// Check that old disabled host was removed
	if _, ok := memIndex.GetHost("atlsql04"); ok {
		t.Error("Old disabled host was not removed")
	}

	// Active anomaly stays, old disabled anomaly goes
	if _, ok := memIndex.GetAnomaly("xyzqqq"); !ok {
		t.Error("Active anomaly was incorrectly removed")
	}
	if _, ok := memIndex.GetAnomaly("bogus01"); ok {
		t.Error("Old disabled anomaly was not removed")
	}
}

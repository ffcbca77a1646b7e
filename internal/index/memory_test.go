package index

import (
	"sync"
	"testing"

	"github.com/opsrig/hostdec/internal/domain"
)

func TestNewMemoryIndex(t *testing.T) {
	idx := NewMemoryIndex()
	if idx == nil {
		t.Fatal("NewMemoryIndex() returned nil")
	}
	hosts := idx.GetAllHosts()
	if len(hosts) != 0 {
		t.Errorf("NewMemoryIndex() should start with empty hosts, got %v", len(hosts))
	}
	if idx.AnomalyCount() != 0 {
		t.Errorf("NewMemoryIndex() should start with empty anomalies, got %v", idx.AnomalyCount())
	}
}

func TestUpdateHosts(t *testing.T) {
	idx := NewMemoryIndex()

	hosts := []*domain.Host{
		{ID: "denaerp01-d", Hostname: "DENAERP01-D"},
		{ID: "cinad02-z.dmz.example.com", Hostname: "cinad02-z.dmz.example.com"},
	}

	idx.UpdateHosts(hosts)

	retrieved := idx.GetAllHosts()
	if len(retrieved) != 2 {
		t.Errorf("UpdateHosts() stored %v hosts, want 2", len(retrieved))
	}
	if idx.GetLastReload().IsZero() {
		t.Error("UpdateHosts() should set last reload timestamp")
	}
}

func TestUpdateHostsOverwrites(t *testing.T) {
	idx := NewMemoryIndex()

	idx.UpdateHosts([]*domain.Host{
		{ID: "denaerp01-d", Hostname: "DENAERP01-D"},
	})
	idx.UpdateHosts([]*domain.Host{
		{ID: "phxsql03", Hostname: "phxsql03"},
		{ID: "atlntp", Hostname: "atlntp"},
	})

	retrieved := idx.GetAllHosts()
	if len(retrieved) != 2 {
		t.Errorf("UpdateHosts() should overwrite, got %v hosts want 2", len(retrieved))
	}
	if _, ok := idx.GetHost("denaerp01-d"); ok {
		t.Error("UpdateHosts() should have dropped the old host")
	}
}

func TestIncrementCounter(t *testing.T) {
	idx := NewMemoryIndex()
	idx.AddHost(&domain.Host{ID: "denaerp01-d", Hostname: "DENAERP01-D"})

	idx.IncrementCounter("denaerp01-d")
	idx.IncrementCounter("denaerp01-d")
	idx.IncrementCounter("unknown-host") // no-op

	host, ok := idx.GetHost("denaerp01-d")
	if !ok {
		t.Fatal("GetHost() did not find host")
	}
	if host.Counter != 2 {
		t.Errorf("Counter = %v, want 2", host.Counter)
	}
}

func TestAnomalyLifecycle(t *testing.T) {
	idx := NewMemoryIndex()

	idx.AddAnomaly(&domain.Anomaly{
		ID:       "xyzqqq",
		Hostname: "XYZQQQ",
		Reason:   domain.AnomalyUnrecognized,
		Count:    1,
	})

	if idx.AnomalyCount() != 1 {
		t.Fatalf("AnomalyCount() = %v, want 1", idx.AnomalyCount())
	}

	anomaly, ok := idx.GetAnomaly("xyzqqq")
	if !ok {
		t.Fatal("GetAnomaly() did not find anomaly")
	}
	if anomaly.Reason != domain.AnomalyUnrecognized {
		t.Errorf("Reason = %q, want %q", anomaly.Reason, domain.AnomalyUnrecognized)
	}

	idx.DeleteAnomaly("xyzqqq")
	if idx.AnomalyCount() != 0 {
		t.Errorf("AnomalyCount() after delete = %v, want 0", idx.AnomalyCount())
	}
}

func TestConcurrentAccess(t *testing.T) {
	idx := NewMemoryIndex()
	idx.AddHost(&domain.Host{ID: "denaerp01-d", Hostname: "DENAERP01-D"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			idx.IncrementCounter("denaerp01-d")
		}()
		go func() {
			defer wg.Done()
			_ = idx.GetAllHosts()
		}()
	}
	wg.Wait()

	host, _ := idx.GetHost("denaerp01-d")
	if host.Counter != 10 {
		t.Errorf("Counter = %v, want 10", host.Counter)
	}
}

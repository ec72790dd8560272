package roster

import (
	"strings"
	"testing"
	"time"
)

func newRegistryWithVillains(t *testing.T) (*Registry, *Collection[villain]) {
	t.Helper()
	reg := NewRegistry()
	c := newTestCollection(t, []villain{{ID: 1, Name: "Joker"}})
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return reg, c
}

func TestRegistry_Register(t *testing.T) {
	reg, c := newRegistryWithVillains(t)

	if err := reg.Register(c); err == nil {
		t.Error("duplicate registration must fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Error("nil resource must fail")
	}
	if got := reg.Get("villains"); got == nil {
		t.Error("Get returned nil for registered resource")
	}
	if got := reg.Get("ghosts"); got != nil {
		t.Error("Get returned a resource for an unknown name")
	}
}

func TestRegistry_Overview(t *testing.T) {
	reg, c := newRegistryWithVillains(t)
	c.Create(villain{Name: "Bane"})

	ov := reg.Overview()
	if ov.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", ov.TotalRecords)
	}
	if len(ov.Resources) != 1 {
		t.Fatalf("Resources = %+v, want one entry", ov.Resources)
	}
	info := ov.Resources[0]
	if info.Name != "villains" || info.Count != 2 || info.NextID != 3 {
		t.Errorf("ResourceInfo = %+v", info)
	}
}

func TestRegistry_Reset(t *testing.T) {
	reg, c := newRegistryWithVillains(t)
	c.Create(villain{Name: "Bane"})

	result, err := reg.Reset("villains")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !result.Reset || len(result.Resources) != 1 || result.Resources[0] != "villains" {
		t.Errorf("ResetResult = %+v", result)
	}
	if c.Count() != 1 {
		t.Errorf("Count after reset = %d, want 1", c.Count())
	}

	if _, err := reg.Reset("ghosts"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Reset unknown resource error = %v, want not found", err)
	}

	// Empty name resets everything.
	c.Create(villain{Name: "Hatter"})
	if _, err := reg.Reset(""); err != nil {
		t.Fatalf("Reset all: %v", err)
	}
	if c.Count() != 1 {
		t.Errorf("Count after reset all = %d, want 1", c.Count())
	}
}

func TestRegistry_ObserverFiresOnReset(t *testing.T) {
	reg, _ := newRegistryWithVillains(t)
	metrics := NewMetricsObserver()
	reg.SetObserver(metrics)

	if _, err := reg.Reset(""); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	snap := metrics.Snapshot()
	if snap.ResetCount != 1 {
		t.Errorf("ResetCount = %d, want 1", snap.ResetCount)
	}
}

func TestMetricsObserver(t *testing.T) {
	m := NewMetricsObserver()

	m.OnCreate("villains", 1, time.Millisecond)
	m.OnRead("villains", 1, time.Millisecond)
	m.OnList("villains", 3, time.Millisecond)
	m.OnUpdate("villains", 1, time.Millisecond)
	m.OnDelete("villains", 1, time.Millisecond)
	m.OnError("villains", "get", &NotFoundError{Resource: "villains", ID: 9})

	snap := m.Snapshot()
	if snap.TotalOperations() != 5 {
		t.Errorf("TotalOperations = %d, want 5", snap.TotalOperations())
	}
	if snap.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", snap.ErrorCount)
	}
	if snap.TotalLatency != 5*time.Millisecond {
		t.Errorf("TotalLatency = %v, want 5ms", snap.TotalLatency)
	}

	m.Reset()
	if m.Snapshot().TotalOperations() != 0 {
		t.Error("counters survived Reset")
	}
}

package roster

import (
	"sync/atomic"
	"time"
)

// Observer defines hooks for observability around collection operations.
// Implementations can log operations or collect metrics; the request layer
// fires these hooks after each manager call.
type Observer interface {
	// OnCreate is called after a successful create operation.
	OnCreate(resource string, id int64, duration time.Duration)

	// OnRead is called after a successful single-record read.
	OnRead(resource string, id int64, duration time.Duration)

	// OnList is called after a successful list or search operation.
	OnList(resource string, count int, duration time.Duration)

	// OnUpdate is called after a successful update operation.
	OnUpdate(resource string, id int64, duration time.Duration)

	// OnDelete is called after a successful delete operation.
	OnDelete(resource string, id int64, duration time.Duration)

	// OnError is called when an operation fails.
	OnError(resource string, operation string, err error)

	// OnReset is called after a state reset.
	OnReset(resources []string, duration time.Duration)
}

// NoopObserver is a no-op Observer for when metrics are disabled.
type NoopObserver struct{}

func (NoopObserver) OnCreate(resource string, id int64, duration time.Duration) {}
func (NoopObserver) OnRead(resource string, id int64, duration time.Duration)   {}
func (NoopObserver) OnList(resource string, count int, duration time.Duration)  {}
func (NoopObserver) OnUpdate(resource string, id int64, duration time.Duration) {}
func (NoopObserver) OnDelete(resource string, id int64, duration time.Duration) {}
func (NoopObserver) OnError(resource string, operation string, err error)       {}
func (NoopObserver) OnReset(resources []string, duration time.Duration)         {}

// MetricsObserver counts operations and accumulates latency. Counters are
// atomic so the snapshot endpoint can read them while requests are in
// flight.
type MetricsObserver struct {
	createCount    atomic.Int64
	readCount      atomic.Int64
	listCount      atomic.Int64
	updateCount    atomic.Int64
	deleteCount    atomic.Int64
	errorCount     atomic.Int64
	resetCount     atomic.Int64
	totalLatencyNs atomic.Int64
}

// NewMetricsObserver creates a metrics observer with all counters at zero.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

func (m *MetricsObserver) OnCreate(resource string, id int64, duration time.Duration) {
	m.createCount.Add(1)
	m.totalLatencyNs.Add(int64(duration))
}

func (m *MetricsObserver) OnRead(resource string, id int64, duration time.Duration) {
	m.readCount.Add(1)
	m.totalLatencyNs.Add(int64(duration))
}

func (m *MetricsObserver) OnList(resource string, count int, duration time.Duration) {
	m.listCount.Add(1)
	m.totalLatencyNs.Add(int64(duration))
}

func (m *MetricsObserver) OnUpdate(resource string, id int64, duration time.Duration) {
	m.updateCount.Add(1)
	m.totalLatencyNs.Add(int64(duration))
}

func (m *MetricsObserver) OnDelete(resource string, id int64, duration time.Duration) {
	m.deleteCount.Add(1)
	m.totalLatencyNs.Add(int64(duration))
}

func (m *MetricsObserver) OnError(resource string, operation string, err error) {
	m.errorCount.Add(1)
}

func (m *MetricsObserver) OnReset(resources []string, duration time.Duration) {
	m.resetCount.Add(1)
	m.totalLatencyNs.Add(int64(duration))
}

// Snapshot returns a point-in-time copy of the current counters.
func (m *MetricsObserver) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		CreateCount:  m.createCount.Load(),
		ReadCount:    m.readCount.Load(),
		ListCount:    m.listCount.Load(),
		UpdateCount:  m.updateCount.Load(),
		DeleteCount:  m.deleteCount.Load(),
		ErrorCount:   m.errorCount.Load(),
		ResetCount:   m.resetCount.Load(),
		TotalLatency: time.Duration(m.totalLatencyNs.Load()),
	}
}

// Reset clears all counters to zero.
func (m *MetricsObserver) Reset() {
	m.createCount.Store(0)
	m.readCount.Store(0)
	m.listCount.Store(0)
	m.updateCount.Store(0)
	m.deleteCount.Store(0)
	m.errorCount.Store(0)
	m.resetCount.Store(0)
	m.totalLatencyNs.Store(0)
}

// MetricsSnapshot is a point-in-time snapshot of operation counters.
type MetricsSnapshot struct {
	CreateCount  int64         `json:"createCount"`
	ReadCount    int64         `json:"readCount"`
	ListCount    int64         `json:"listCount"`
	UpdateCount  int64         `json:"updateCount"`
	DeleteCount  int64         `json:"deleteCount"`
	ErrorCount   int64         `json:"errorCount"`
	ResetCount   int64         `json:"resetCount"`
	TotalLatency time.Duration `json:"totalLatencyNs"`
}

// TotalOperations returns the total number of successful operations.
func (s MetricsSnapshot) TotalOperations() int64 {
	return s.CreateCount + s.ReadCount + s.ListCount + s.UpdateCount + s.DeleteCount
}

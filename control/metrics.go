// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for ring buffer monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/ringio/core/ringbuf"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Observe records a ring state snapshot under the given ring name.
func (mr *MetricsRegistry) Observe(name string, s ringbuf.State) {
	mr.mu.Lock()
	mr.metrics[name+".capacity"] = s.Capacity
	mr.metrics[name+".used"] = s.Used
	mr.metrics[name+".bytes_in"] = s.BytesIn
	mr.metrics[name+".bytes_out"] = s.BytesOut
	mr.metrics[name+".overwrites"] = s.Overwrites
	mr.metrics[name+".drops"] = s.Drops
	mr.metrics[name+".rejects"] = s.Rejects
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last registry mutation.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

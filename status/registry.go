package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Well-known metric keys written by the engine
const (
	FramesRendered      = "frames.rendered"
	FramesSkipped       = "frames.skipped"
	SurfaceReconfigured = "surface.reconfigured"
	EventsDispatched    = "events.dispatched"
	EventsHandled       = "events.handled"
	EventsUnsupported   = "events.unsupported"
	LayerCount          = "layers.count"
	FrameTimeMs         = "frame.ms"
)

// Registry is the metrics facade shared between the engine and layers.
// Writers cache the returned pointers; reads and writes after lookup are lock-free.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*AtomicFloat
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*AtomicFloat),
	}
}

// Counter returns the counter for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return lookup(&r.mu, r.counters, key)
}

// Gauge returns the gauge for key, creating it on first use
func (r *Registry) Gauge(key string) *AtomicFloat {
	return lookup(&r.mu, r.gauges, key)
}

func lookup[T any](mu *sync.RWMutex, items map[string]*T, key string) *T {
	mu.RLock()
	if ptr, ok := items[key]; ok {
		mu.RUnlock()
		return ptr
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	// Another writer may have created it between the locks
	if ptr, ok := items[key]; ok {
		return ptr
	}
	ptr := new(T)
	items[key] = ptr
	return ptr
}

// Metric is one entry of a Snapshot
type Metric struct {
	Key   string
	Value float64
	Gauge bool
}

// Snapshot returns every metric sorted by key
func (r *Registry) Snapshot() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.counters)+len(r.gauges))
	for k, c := range r.counters {
		out = append(out, Metric{Key: k, Value: float64(c.Load())})
	}
	for k, g := range r.gauges {
		out = append(out, Metric{Key: k, Value: g.Get(), Gauge: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.gauges)
}

package status

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRegistryCachedPointers tests that lookups return the same pointer
func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Counter(FramesRendered)
	a.Add(2)
	if b := r.Counter(FramesRendered); b != a || b.Load() != 2 {
		t.Errorf("expected cached counter with value 2, got %p/%d", b, b.Load())
	}
	g := r.Gauge(FrameTimeMs)
	g.Set(16.5)
	if r.Gauge(FrameTimeMs).Get() != 16.5 {
		t.Errorf("gauge value lost")
	}
}

// TestRegistrySnapshot tests sorted snapshot output
func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Counter(EventsHandled).Store(4)
	r.Counter(EventsDispatched).Store(9)
	r.Gauge(FrameTimeMs).Set(1.5)

	want := []Metric{
		{Key: EventsDispatched, Value: 9},
		{Key: EventsHandled, Value: 4},
		{Key: FrameTimeMs, Value: 1.5, Gauge: true},
	}
	if diff := cmp.Diff(want, r.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if r.Count() != 3 {
		t.Errorf("expected 3 metrics, got %d", r.Count())
	}
}

// TestRegistryConcurrentCreate tests concurrent first-use creation
func TestRegistryConcurrentCreate(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Counter(EventsDispatched).Add(1)
		}()
	}
	wg.Wait()
	if got := r.Counter(EventsDispatched).Load(); got != 16 {
		t.Errorf("expected 16, got %d", got)
	}
}

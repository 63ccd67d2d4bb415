package engine

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stackNames(s *LayerStack) []string {
	var names []string
	for _, l := range s.Reverse() {
		names = append(names, l.Name())
	}
	return names
}

func named(name string) Layer {
	return BaseLayer{LayerName: name}
}

// TestLayerStackOrder tests dispatch order across both regions
func TestLayerStackOrder(t *testing.T) {
	s := NewLayerStack()
	s.PushLayer(named("L1"))
	s.PushOverlay(named("O1"))
	s.PushLayer(named("L2"))

	want := []string{"O1", "L2", "L1"}
	if diff := cmp.Diff(want, stackNames(s)); diff != "" {
		t.Errorf("dispatch order mismatch (-want +got):\n%s", diff)
	}
	if s.Boundary() != 2 {
		t.Errorf("Boundary() = %d, want 2", s.Boundary())
	}

	s.PushOverlay(named("O2"))
	want = []string{"O2", "O1", "L2", "L1"}
	if diff := cmp.Diff(want, stackNames(s)); diff != "" {
		t.Errorf("dispatch order after second overlay (-want +got):\n%s", diff)
	}
}

// TestLayerStackIDs tests that ids increase and are never reused after pops
func TestLayerStackIDs(t *testing.T) {
	s := NewLayerStack()
	a := s.PushLayer(named("a"))
	b := s.PushOverlay(named("b"))
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a, b)
	}

	if _, ok := s.PopLayer(a); !ok {
		t.Fatal("PopLayer(a) failed")
	}
	c := s.PushLayer(named("c"))
	if c <= b {
		t.Errorf("new id %d not greater than previous %d", c, b)
	}
	if s.Contains(a) {
		t.Error("popped id still present")
	}
}

// TestLayerStackPopRegions tests that each pop only searches its own region
func TestLayerStackPopRegions(t *testing.T) {
	s := NewLayerStack()
	l := s.PushLayer(named("layer"))
	o := s.PushOverlay(named("overlay"))

	if _, ok := s.PopLayer(o); ok {
		t.Error("PopLayer removed an overlay")
	}
	if _, ok := s.PopOverlay(l); ok {
		t.Error("PopOverlay removed a layer")
	}
	if s.Len() != 2 || s.Boundary() != 1 {
		t.Fatalf("stack changed by failed pops: len=%d boundary=%d", s.Len(), s.Boundary())
	}

	if !s.IsOverlay(o) || s.IsOverlay(l) {
		t.Error("IsOverlay misreports regions")
	}

	got, ok := s.PopOverlay(o)
	if !ok || got.Name() != "overlay" {
		t.Errorf("PopOverlay(o) = %v, %v", got, ok)
	}
	if _, ok := s.PopOverlay(o); ok {
		t.Error("second PopOverlay succeeded")
	}
	if _, ok := s.PopLayer(99); ok {
		t.Error("PopLayer of unknown id succeeded")
	}
}

// TestLayerStackBoundaryInvariant tests the boundary against a random operation sequence
func TestLayerStackBoundaryInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewLayerStack()
	overlays := make(map[LayerID]bool)
	var live []LayerID
	var lastID LayerID

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(4); {
		case op == 0:
			id := s.PushLayer(named("l"))
			if id <= lastID {
				t.Fatalf("step %d: id %d not increasing", step, id)
			}
			lastID = id
			overlays[id] = false
			live = append(live, id)
		case op == 1:
			id := s.PushOverlay(named("o"))
			if id <= lastID {
				t.Fatalf("step %d: id %d not increasing", step, id)
			}
			lastID = id
			overlays[id] = true
			live = append(live, id)
		case len(live) > 0:
			i := rng.Intn(len(live))
			id := live[i]
			var ok bool
			if op == 2 {
				_, ok = s.PopLayer(id)
				if ok == overlays[id] {
					t.Fatalf("step %d: PopLayer(%d) = %v for overlay=%v", step, id, ok, overlays[id])
				}
			} else {
				_, ok = s.PopOverlay(id)
				if ok != overlays[id] {
					t.Fatalf("step %d: PopOverlay(%d) = %v for overlay=%v", step, id, ok, overlays[id])
				}
			}
			if ok {
				live = append(live[:i], live[i+1:]...)
				delete(overlays, id)
			}
		}

		layers := 0
		for _, ov := range overlays {
			if !ov {
				layers++
			}
		}
		if s.Boundary() != layers {
			t.Fatalf("step %d: boundary %d, want %d", step, s.Boundary(), layers)
		}
		for i := 0; i < s.Len(); i++ {
			id, _ := s.At(i)
			if overlays[id] != (i >= s.Boundary()) {
				t.Fatalf("step %d: entry %d (id %d) on wrong side of boundary", step, i, id)
			}
		}
	}
}

// TestLayerStackSet tests replacement in place keeps the id
func TestLayerStackSet(t *testing.T) {
	s := NewLayerStack()
	id := s.PushLayer(named("old"))
	s.Set(0, named("new"))

	gotID, l := s.At(0)
	if gotID != id || l.Name() != "new" {
		t.Errorf("At(0) = %d %q, want %d \"new\"", gotID, l.Name(), id)
	}
}

// TestLayerStackReverseBreak tests early termination of the reverse iterator
func TestLayerStackReverseBreak(t *testing.T) {
	s := NewLayerStack()
	s.PushLayer(named("a"))
	s.PushLayer(named("b"))
	s.PushOverlay(named("c"))

	var seen []string
	for _, l := range s.Reverse() {
		seen = append(seen, l.Name())
		if l.Name() == "b" {
			break
		}
	}
	if diff := cmp.Diff([]string{"c", "b"}, seen); diff != "" {
		t.Errorf("iteration mismatch (-want +got):\n%s", diff)
	}

	order := s.DispatchOrder()
	if diff := cmp.Diff([]LayerID{3, 2, 1}, order); diff != "" {
		t.Errorf("DispatchOrder mismatch (-want +got):\n%s", diff)
	}
}

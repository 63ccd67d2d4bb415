package engine

import "iter"

// LayerID identifies one stack entry. Ids increase strictly and are never reused.
type LayerID uint64

type layerEntry struct {
	id    LayerID
	layer Layer
}

// LayerStack is an ordered sequence of layers split into two regions:
//
//	[0, layerInsert)    layers, in push order
//	[layerInsert, len)  overlays, in push order
//
// Invariant: layerInsert equals the number of non-overlay entries.
// Push/pop never call lifecycle hooks; DispatchContext pairs them with attach/detach.
type LayerStack struct {
	entries     []layerEntry
	layerInsert int
	nextID      LayerID
}

// NewLayerStack creates an empty stack; the first id issued is 1
func NewLayerStack() *LayerStack {
	return &LayerStack{nextID: 1}
}

func (s *LayerStack) issue() LayerID {
	id := s.nextID
	s.nextID++
	return id
}

// PushLayer inserts at the layer/overlay boundary and advances it
func (s *LayerStack) PushLayer(l Layer) LayerID {
	id := s.issue()
	s.entries = append(s.entries, layerEntry{})
	copy(s.entries[s.layerInsert+1:], s.entries[s.layerInsert:])
	s.entries[s.layerInsert] = layerEntry{id: id, layer: l}
	s.layerInsert++
	return id
}

// PushOverlay appends after every overlay; the boundary is unchanged
func (s *LayerStack) PushOverlay(l Layer) LayerID {
	id := s.issue()
	s.entries = append(s.entries, layerEntry{id: id, layer: l})
	return id
}

// PopLayer removes the layer with id from the layer region.
// Returns false when no such layer exists (already gone, or id is an overlay).
func (s *LayerStack) PopLayer(id LayerID) (Layer, bool) {
	i := s.find(id, 0, s.layerInsert)
	if i < 0 {
		return nil, false
	}
	l := s.remove(i)
	s.layerInsert--
	return l, true
}

// PopOverlay removes the overlay with id from the overlay region
func (s *LayerStack) PopOverlay(id LayerID) (Layer, bool) {
	i := s.find(id, s.layerInsert, len(s.entries))
	if i < 0 {
		return nil, false
	}
	return s.remove(i), true
}

func (s *LayerStack) find(id LayerID, from, to int) int {
	for i := from; i < to; i++ {
		if s.entries[i].id == id {
			return i
		}
	}
	return -1
}

func (s *LayerStack) remove(i int) Layer {
	l := s.entries[i].layer
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[len(s.entries)-1] = layerEntry{}
	s.entries = s.entries[:len(s.entries)-1]
	return l
}

// Len returns the number of entries
func (s *LayerStack) Len() int {
	return len(s.entries)
}

// Boundary returns the index of the first overlay, which is also the layer count
func (s *LayerStack) Boundary() int {
	return s.layerInsert
}

// At returns the entry at index i in push order (layers first, then overlays)
func (s *LayerStack) At(i int) (LayerID, Layer) {
	e := s.entries[i]
	return e.id, e.layer
}

// Set replaces the layer at index i, keeping its id
func (s *LayerStack) Set(i int, l Layer) {
	s.entries[i].layer = l
}

// Get returns the layer with id
func (s *LayerStack) Get(id LayerID) (Layer, bool) {
	if i := s.find(id, 0, len(s.entries)); i >= 0 {
		return s.entries[i].layer, true
	}
	return nil, false
}

// Contains reports whether id is in the stack
func (s *LayerStack) Contains(id LayerID) bool {
	return s.find(id, 0, len(s.entries)) >= 0
}

// IsOverlay reports whether id is in the overlay region
func (s *LayerStack) IsOverlay(id LayerID) bool {
	return s.find(id, s.layerInsert, len(s.entries)) >= 0
}

// Reverse iterates in dispatch order: newest overlay first, first pushed layer last.
// The stack must not be modified during iteration; use DispatchOrder for that.
func (s *LayerStack) Reverse() iter.Seq2[LayerID, Layer] {
	return func(yield func(LayerID, Layer) bool) {
		for i := len(s.entries) - 1; i >= 0; i-- {
			if !yield(s.entries[i].id, s.entries[i].layer) {
				return
			}
		}
	}
}

// DispatchOrder returns a snapshot of ids in dispatch order
func (s *LayerStack) DispatchOrder() []LayerID {
	ids := make([]LayerID, len(s.entries))
	for i, e := range s.entries {
		ids[len(s.entries)-1-i] = e.id
	}
	return ids
}

package orders

import "sort"

// entry is one origin's slot in the store: its order, if any, and the
// elements drawn for it.
type entry struct {
	order    *Order
	elements []ElementID
}

// Store maps origin provinces to their current order and owns the elements
// drawn for each origin. SetOrder is the only path that replaces elements.
type Store struct {
	layer    Layer
	renderer *Renderer
	entries  map[string]*entry
}

// NewStore creates an empty store drawing onto layer.
func NewStore(layer Layer, renderer *Renderer) *Store {
	return &Store{
		layer:    layer,
		renderer: renderer,
		entries:  make(map[string]*entry),
	}
}

// SetOrder records o for its origin, erasing whatever was drawn for that
// origin before drawing o.
func (s *Store) SetOrder(o Order) {
	e := s.clear(o.Origin)
	prims := s.renderer.Render(&o, s.Get)
	e.order = &o
	e.elements = s.draw(prims)
}

// Sketch draws o for its origin without recording it as an order. It is
// used for the startup Hold glyphs; the next SetOrder for the origin erases it.
func (s *Store) Sketch(o Order) {
	e := s.clear(o.Origin)
	e.elements = s.draw(s.renderer.Render(&o, s.Get))
}

// Get returns the order stored for origin.
func (s *Store) Get(origin string) (Order, bool) {
	e, ok := s.entries[origin]
	if !ok || e.order == nil {
		return Order{}, false
	}
	return *e.order, true
}

// Orders returns every stored order, sorted by origin.
func (s *Store) Orders() []Order {
	out := make([]Order, 0, len(s.entries))
	for _, e := range s.entries {
		if e.order != nil {
			out = append(out, *e.order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Origin < out[j].Origin })
	return out
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	n := 0
	for _, e := range s.entries {
		if e.order != nil {
			n++
		}
	}
	return n
}

// Elements returns the ids drawn for origin.
func (s *Store) Elements(origin string) []ElementID {
	e, ok := s.entries[origin]
	if !ok {
		return nil
	}
	return append([]ElementID(nil), e.elements...)
}

func (s *Store) clear(origin string) *entry {
	e, ok := s.entries[origin]
	if !ok {
		e = &entry{}
		s.entries[origin] = e
	}
	for _, id := range e.elements {
		s.layer.Remove(id)
	}
	e.elements = nil
	return e
}

func (s *Store) draw(prims []Primitive) []ElementID {
	ids := make([]ElementID, 0, len(prims))
	for _, p := range prims {
		ids = append(ids, s.layer.Append(p))
	}
	return ids
}

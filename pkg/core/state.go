package core

import "reflect"

// GlobalOrInit returns the tree-global value of type T, creating it with
// init on first use. Globals live for the lifetime of the Dom and are
// keyed by their concrete type; they are intended for state shared across
// the whole tree, not for per-widget or scoped state.
func GlobalOrInit[T any](d *Dom, init func() T) T {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := d.globals[key]; ok {
		return v.(T)
	}
	v := init()
	d.globals[key] = v
	return v
}

// StateSlot persists one value of type T per widget node across frames.
// Stateful leaf widgets use slots to keep values they cannot re-derive
// from props. Entries are evicted on the frame boundary where their node
// is removed from the tree.
type StateSlot[T any] struct {
	values map[WidgetID]*T
}

// NewStateSlot creates a slot whose entries are evicted when their node
// is removed from d.
func NewStateSlot[T any](d *Dom) *StateSlot[T] {
	s := &StateSlot[T]{values: make(map[WidgetID]*T)}
	d.addEvictor(func(id WidgetID) {
		delete(s.values, id)
	})
	return s
}

// OrInit returns the value stored for id, creating it with init on first
// use.
func (s *StateSlot[T]) OrInit(id WidgetID, init func() T) *T {
	if v, ok := s.values[id]; ok {
		return v
	}
	v := init()
	s.values[id] = &v
	return &v
}

// Get returns the value stored for id, if any.
func (s *StateSlot[T]) Get(id WidgetID) (*T, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Set stores value for id, replacing any existing entry.
func (s *StateSlot[T]) Set(id WidgetID, value T) {
	s.values[id] = &value
}

// Len returns the number of live entries.
func (s *StateSlot[T]) Len() int {
	return len(s.values)
}

// addEvictor registers a callback invoked once per node removed from the
// tree, at the end of the frame that removed it.
func (d *Dom) addEvictor(evict func(WidgetID)) {
	d.evictors = append(d.evictors, evict)
}

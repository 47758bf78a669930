package core

import "fmt"

// WidgetID identifies a node in the tree. IDs are generation-checked: once
// a node is removed, every outstanding id for it goes stale, and stale ids
// report "not found" rather than aliasing whatever node later reuses the
// slot. The zero WidgetID is never issued.
type WidgetID struct {
	index      uint32
	generation uint32
}

// IsZero reports whether the id is the zero value.
func (id WidgetID) IsZero() bool {
	return id.generation == 0
}

func (id WidgetID) String() string {
	return fmt.Sprintf("%d.%d", id.index, id.generation)
}

// arena is the slot storage behind the tree. Generations start at 1 and
// advance whenever a slot is vacated, which is what invalidates stale ids.
type arena struct {
	slots []arenaSlot
	free  []uint32
	live  int
}

type arenaSlot struct {
	node       *Node
	generation uint32
}

func (a *arena) insert(n *Node) WidgetID {
	a.live++
	if count := len(a.free); count > 0 {
		index := a.free[count-1]
		a.free = a.free[:count-1]
		a.slots[index].node = n
		return WidgetID{index: index, generation: a.slots[index].generation}
	}
	a.slots = append(a.slots, arenaSlot{node: n, generation: 1})
	return WidgetID{index: uint32(len(a.slots) - 1), generation: 1}
}

func (a *arena) get(id WidgetID) (*Node, bool) {
	if id.IsZero() || int(id.index) >= len(a.slots) {
		return nil, false
	}
	slot := &a.slots[id.index]
	if slot.node == nil || slot.generation != id.generation {
		return nil, false
	}
	return slot.node, true
}

func (a *arena) remove(id WidgetID) (*Node, bool) {
	n, ok := a.get(id)
	if !ok {
		return nil, false
	}
	slot := &a.slots[id.index]
	slot.node = nil
	slot.generation++
	a.free = append(a.free, id.index)
	a.live--
	return n, true
}

func (a *arena) len() int {
	return a.live
}

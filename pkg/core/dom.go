package core

import (
	"fmt"
	"reflect"
)

// Dom is the retained tree of widget instances behind a declarative build
// pass. Each frame, the application re-declares its widgets in order;
// the Dom matches the declarations against the existing tree by position,
// updating matching nodes in place and tearing down subtrees whose
// position now declares a different widget type.
//
// A Dom is single-threaded. Reentrant access from widget routines is
// expected and safe; reentrant access to the *same node's* widget is a
// contract violation detected by Node.DetachWidget.
type Dom struct {
	nodes    arena
	stack    []WidgetID
	removed  []WidgetID
	root     WidgetID
	globals  map[reflect.Type]any
	evictors []func(WidgetID)
	input    InputAccess
}

// NewDom creates an empty tree holding only the root node.
func NewDom() *Dom {
	d := &Dom{globals: make(map[reflect.Type]any)}
	d.root = d.nodes.insert(&Node{
		widget:    &rootWidget{},
		propsType: reflect.TypeOf(rootProps{}),
	})
	return d
}

// BindInput supplies the input accessor handed to widgets during update.
// Called once by the runtime context during setup.
func (d *Dom) BindInput(in InputAccess) {
	d.input = in
}

// Start begins the frame's declaration pass by resetting the root's
// reconciliation cursor. Must be called before any widget declarations.
func (d *Dom) Start() {
	root, _ := d.nodes.get(d.root)
	root.cursor = 0
	d.removed = d.removed[:0]
}

// Finish ends the declaration pass. Root children that were not
// re-declared this frame are pruned, and state registered against the
// tree is evicted for every node removed since Start.
func (d *Dom) Finish() {
	if count := len(d.stack); count != 0 {
		panic(fmt.Sprintf("glow: Finish called with %d widgets still open; unbalanced BeginWidget/EndWidget", count))
	}
	d.trimChildren(d.root)
	for _, id := range d.removed {
		for _, evict := range d.evictors {
			evict(id)
		}
	}
}

// Root returns the root node's id. The root always exists.
func (d *Dom) Root() WidgetID {
	return d.root
}

// Len returns the number of live nodes, including the root.
func (d *Dom) Len() int {
	return d.nodes.len()
}

// IsEmpty reports whether the tree holds nothing but the root.
func (d *Dom) IsEmpty() bool {
	return d.nodes.len() <= 1
}

// Removed returns the ids removed since the last Start, in teardown
// order. The slice is reused across frames; callers must not retain it.
func (d *Dom) Removed() []WidgetID {
	return d.removed
}

// Current returns the widget on top of the traversal stack, or the root
// if no widget is in progress. It answers "which widget am I" from inside
// update, event, and paint routines.
func (d *Dom) Current() WidgetID {
	if count := len(d.stack); count > 0 {
		return d.stack[count-1]
	}
	return d.root
}

// Enter pushes id onto the traversal stack so that Current resolves to it
// during a routine invoked outside the build pass, such as event dispatch.
func (d *Dom) Enter(id WidgetID) {
	d.stack = append(d.stack, id)
}

// Exit pops id off the traversal stack. Exiting a widget other than the
// one on top is a contract violation and panics.
func (d *Dom) Exit(id WidgetID) {
	count := len(d.stack)
	if count == 0 {
		panic("glow: Exit called with no widget entered")
	}
	if top := d.stack[count-1]; top != id {
		panic(fmt.Sprintf("glow: Exit(%v) does not match the entered widget %v", id, top))
	}
	d.stack = d.stack[:count-1]
}

// Contains reports whether id refers to a live node.
func (d *Dom) Contains(id WidgetID) bool {
	_, ok := d.nodes.get(id)
	return ok
}

// Get returns the node for id. ok is false for stale or unknown ids,
// which are routine during teardown and not an error.
func (d *Dom) Get(id WidgetID) (*Node, bool) {
	return d.nodes.get(id)
}

// BeginWidget declares a widget at the current position in the tree. If
// the position held a widget of the same Props type last frame, that
// instance is updated in place; otherwise the old subtree is destroyed
// and a fresh instance is created. The widget is entered on the traversal
// stack until the matching EndWidget.
func (d *Dom) BeginWidget(props Props) Response {
	parentID := d.Current()
	parent, ok := d.nodes.get(parentID)
	if !ok {
		panic(fmt.Sprintf("glow: current widget %v is not in the tree", parentID))
	}

	propsType := reflect.TypeOf(props)

	var id WidgetID
	var w Widget

	if parent.cursor < len(parent.children) {
		slot := parent.cursor
		existing := parent.children[slot]
		parent.cursor++

		if node, ok := d.nodes.get(existing); ok && node.propsType == propsType {
			// Same type at the same position: reuse in place. The widget
			// leaves its node so Update can touch the tree without
			// aliasing itself.
			w = node.DetachWidget()
			node.cursor = 0
			id = existing
		} else {
			// The position now declares a different widget type. The old
			// subtree is no longer valid; destroy it and start over in
			// the same slot.
			d.removeRecursive(existing)
			id, w = d.createNode(parent, parentID, slot, props, propsType)
		}
	} else {
		slot := parent.cursor
		parent.cursor++
		id, w = d.createNode(parent, parentID, slot, props, propsType)
	}

	d.stack = append(d.stack, id)

	value := w.Update(UpdateContext{Dom: d, Input: d.input}, props)

	node, ok := d.nodes.get(id)
	if !ok {
		panic(fmt.Sprintf("glow: widget %v was removed during its own update", id))
	}
	node.AttachWidget(w)

	return Response{ID: id, Value: value}
}

// EndWidget finishes the widget with the given id. It must be the widget
// on top of the traversal stack. Children beyond the widget's cursor were
// not re-declared this frame and are destroyed.
func (d *Dom) EndWidget(id WidgetID) {
	count := len(d.stack)
	if count == 0 {
		panic("glow: EndWidget called without an in-progress widget")
	}
	if top := d.stack[count-1]; top != id {
		panic(fmt.Sprintf("glow: EndWidget(%v) does not match the in-progress widget %v", id, top))
	}
	d.stack = d.stack[:count-1]

	d.trimChildren(id)
}

// DoWidget declares a leaf widget: BeginWidget immediately followed by
// EndWidget.
func (d *Dom) DoWidget(props Props) Response {
	response := d.BeginWidget(props)
	d.EndWidget(response.ID)
	return response
}

// createNode inserts a fresh node at the given child slot of parent,
// overwriting a vacated slot or appending a new one.
func (d *Dom) createNode(parent *Node, parentID WidgetID, slot int, props Props, propsType reflect.Type) (WidgetID, Widget) {
	node := &Node{
		parent:    parentID,
		propsType: propsType,
	}
	id := d.nodes.insert(node)

	if slot < len(parent.children) {
		parent.children[slot] = id
	} else {
		parent.children = append(parent.children, id)
	}

	return id, props.CreateWidget()
}

// trimChildren destroys every child of id at or beyond its cursor, along
// with their descendants. Each destroyed id is recorded exactly once.
func (d *Dom) trimChildren(id WidgetID) {
	node, ok := d.nodes.get(id)
	if !ok {
		return
	}
	if node.cursor >= len(node.children) {
		return
	}

	stale := append([]WidgetID(nil), node.children[node.cursor:]...)
	node.children = node.children[:node.cursor]
	d.destroyQueue(stale)
}

// removeRecursive destroys the subtree rooted at id.
func (d *Dom) removeRecursive(id WidgetID) {
	d.destroyQueue([]WidgetID{id})
}

// destroyQueue removes each queued node and its descendants breadth
// first, appending every destroyed id to the frame's removed list. Stale
// ids in the queue are recorded but otherwise skipped.
func (d *Dom) destroyQueue(queue []WidgetID) {
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		d.removed = append(d.removed, id)

		node, ok := d.nodes.remove(id)
		if !ok {
			continue
		}
		queue = append(queue, node.children...)
	}
}

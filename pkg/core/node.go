package core

import "reflect"

// Node is one live widget position in the tree.
type Node struct {
	// widget is nil while the instance is detached for an update or event
	// call. Detaching gives the routine exclusive ownership of the widget
	// while the rest of the tree stays reachable for nested declarations.
	widget Widget

	// propsType is the concrete Props type declared at this position.
	// Reconciliation matches on it: same type means update in place,
	// different type means tear down and recreate.
	propsType reflect.Type

	parent   WidgetID
	children []WidgetID

	// cursor is the index of the next child slot to reconcile this frame.
	cursor int
}

// Widget returns the widget instance owned by this node, or nil while the
// instance is detached for an in-progress update or event call.
func (n *Node) Widget() Widget {
	return n.widget
}

// Parent returns the parent id. ok is false for the root node.
func (n *Node) Parent() (WidgetID, bool) {
	return n.parent, !n.parent.IsZero()
}

// Children returns the node's children in frame order. The slice is owned
// by the node and must not be mutated.
func (n *Node) Children() []WidgetID {
	return n.children
}

// DetachWidget takes exclusive ownership of the node's widget instance,
// leaving the node empty until AttachWidget. Update and event routines are
// reentrant with respect to the tree, so the instance must be out of the
// node while one of its routines runs; a second detach on the same node
// means a routine is being re-entered on itself and panics.
func (n *Node) DetachWidget() Widget {
	if n.widget == nil {
		panic("glow: widget is already detached; reentrant update or event delivery on the same node")
	}
	w := n.widget
	n.widget = nil
	return w
}

// AttachWidget returns a detached widget instance to its node.
func (n *Node) AttachWidget(w Widget) {
	if w == nil {
		panic("glow: cannot attach a nil widget")
	}
	if n.widget != nil {
		panic("glow: node already has an attached widget")
	}
	n.widget = w
}

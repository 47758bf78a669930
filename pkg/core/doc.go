// Package core provides the retained widget tree and its reconciler.
//
// Applications declare their widget tree every frame by calling
// Dom.BeginWidget and Dom.EndWidget (or Dom.DoWidget for leaves) in the
// order the widgets should appear. The Dom matches each declaration
// against the previous frame's tree by position: a position that declares
// the same Props type as last frame keeps its widget instance and updates
// it in place, while a position that declares a different type has its
// old subtree destroyed and a fresh instance created. Children that are
// not re-declared are pruned when their parent ends.
//
// # Identity
//
// Every node has a WidgetID that stays stable for as long as the node
// lives. IDs are generation-checked: after a node is removed, lookups
// with its old id report "not found" instead of resolving to whatever
// node reuses the storage. Dependent systems (input routing, state
// slots) rely on this while cleaning up after removed nodes.
//
// # Matching is positional
//
// There is no key concept. Two frames that reorder same-typed siblings
// are seen as "each position updated in place", so persisted widget
// state transfers to whatever widget now occupies the position. This is
// a deliberate trade-off; callers that need stable per-widget state
// across reordering must manage identity themselves.
//
// # Widget state
//
// Widget instances persist across frames and may carry state in their
// own fields. StateSlot persists values keyed by node identity for state
// owned outside the widget, and GlobalOrInit stores tree-global values.
// Both are evicted in step with node removal.
package core

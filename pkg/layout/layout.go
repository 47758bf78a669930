// Package layout defines the read-only surface the input router and paint
// pass consume from the layout pass: per-widget rectangles, clip
// ancestry, event interest, and the viewport transform.
//
// The layout pass itself lives outside this module. Each frame it calls
// Reset, then Set once per laid-out widget in depth-first traversal
// order; that order is what hit testing reverses to approximate
// visually-topmost-first dispatch.
package layout

import (
	"github.com/go-glow/glow/pkg/core"
	"github.com/go-glow/glow/pkg/event"
	"github.com/go-glow/glow/pkg/geometry"
)

// Node is the layout result for one widget.
type Node struct {
	// Rect is the widget's rectangle in layout-local coordinates.
	Rect geometry.Rect

	// ClippedBy names the nearest ancestor whose rectangle clips this
	// widget. Zero means unclipped. Hit testing intersects the widget's
	// rect with every rect up the chain.
	ClippedBy core.WidgetID

	// EventInterest is the event category bitset the widget declared.
	EventInterest event.Interest
}

// InterestEntry records one widget with mouse interest, in layout
// traversal order.
type InterestEntry struct {
	ID       core.WidgetID
	Interest event.Interest
}

// LayoutDom holds one frame's layout results.
type LayoutDom struct {
	nodes         map[core.WidgetID]Node
	interestMouse []InterestEntry
	scaleFactor   float64
	viewport      geometry.Rect
}

// NewLayoutDom creates an empty layout surface with scale factor 1.
func NewLayoutDom() *LayoutDom {
	return &LayoutDom{
		nodes:       make(map[core.WidgetID]Node),
		scaleFactor: 1,
	}
}

// Reset clears per-widget results for a new layout pass. The scale
// factor and viewport persist until changed.
func (l *LayoutDom) Reset() {
	clear(l.nodes)
	l.interestMouse = l.interestMouse[:0]
}

// Set records the layout result for id. Call in depth-first traversal
// order; widgets with mouse interest are additionally recorded in that
// order for hit testing and move delivery.
func (l *LayoutDom) Set(id core.WidgetID, node Node) {
	l.nodes[id] = node
	if node.EventInterest.Intersects(event.InterestMouseAll) {
		l.interestMouse = append(l.interestMouse, InterestEntry{ID: id, Interest: node.EventInterest})
	}
}

// Get returns the layout result for id. ok is false for widgets the
// layout pass did not reach, including stale ids.
func (l *LayoutDom) Get(id core.WidgetID) (Node, bool) {
	node, ok := l.nodes[id]
	return node, ok
}

// InterestMouse returns every widget with mouse interest in layout
// traversal order. The slice is owned by the LayoutDom.
func (l *LayoutDom) InterestMouse() []InterestEntry {
	return l.interestMouse
}

// ScaleFactor returns the global device scale factor.
func (l *LayoutDom) ScaleFactor() float64 {
	return l.scaleFactor
}

// SetScaleFactor sets the global device scale factor.
func (l *LayoutDom) SetScaleFactor(factor float64) {
	l.scaleFactor = factor
}

// Viewport returns the unscaled viewport rectangle in surface
// coordinates.
func (l *LayoutDom) Viewport() geometry.Rect {
	return l.viewport
}

// SetViewport sets the unscaled viewport rectangle.
func (l *LayoutDom) SetViewport(viewport geometry.Rect) {
	l.viewport = viewport
}

// ToViewport maps a surface-space point into viewport space by removing
// the viewport origin. Scale is not applied.
func (l *LayoutDom) ToViewport(p geometry.Offset) geometry.Offset {
	t := geometry.Translation(geometry.Offset{X: -l.viewport.Pos.X, Y: -l.viewport.Pos.Y})
	return t.Apply(p)
}

// ToLocal maps a surface-space point into layout-local space: viewport
// origin removed, then divided by the scale factor.
func (l *LayoutDom) ToLocal(p geometry.Offset) geometry.Offset {
	t := geometry.Translation(geometry.Offset{X: -l.viewport.Pos.X, Y: -l.viewport.Pos.Y}).
		Then(geometry.Scaling(1 / l.scaleFactor))
	return t.Apply(p)
}

// NodeRect implements core.LayoutAccess.
func (l *LayoutDom) NodeRect(id core.WidgetID) (geometry.Rect, bool) {
	node, ok := l.nodes[id]
	return node.Rect, ok
}

package core

import (
	"github.com/go-glow/glow/pkg/event"
	"github.com/go-glow/glow/pkg/geometry"
)

// Props describes one frame's declaration of a widget. Each Props type
// corresponds to exactly one concrete Widget type; the reconciler matches
// tree positions by the Props type to decide between updating in place and
// recreating the subtree.
type Props interface {
	// CreateWidget returns the widget in its default state. The frame's
	// props are applied afterwards through Widget.Update.
	CreateWidget() Widget
}

// Widget is a stateful widget instance owned by a tree node. Instances
// persist across frames as long as the same position declares the same
// Props type.
//
// Widgets opt into more of the lifecycle by implementing EventHandler,
// InterestDeclarer, or Painter.
type Widget interface {
	// Update applies this frame's props and returns the widget's response
	// value. It may declare children through ctx.Dom.
	Update(ctx UpdateContext, props Props) any
}

// EventHandler is implemented by widgets that respond to routed events.
type EventHandler interface {
	HandleEvent(ctx EventContext, ev event.WidgetEvent) event.Response
}

// InterestDeclarer is implemented by widgets that want event categories
// routed to them even when they are not the topmost hit target. Widgets
// without it receive no routed events.
type InterestDeclarer interface {
	EventInterest() event.Interest
}

// Painter is implemented by widgets that paint themselves. The paint pass
// walks the finalized tree and invokes it per node.
type Painter interface {
	Paint(ctx PaintContext)
}

// InputAccess is the part of the input state machine visible to widgets.
// Implemented by input.InputState.
type InputAccess interface {
	// Selection returns the currently selected widget, if any.
	Selection() (WidgetID, bool)

	// SetSelection makes id the selected widget.
	SetSelection(id WidgetID)

	// ClearSelection deselects the selected widget, if any.
	ClearSelection()
}

// LayoutAccess is the part of the layout pass visible to widgets and the
// input router. Implemented by layout.LayoutDom.
type LayoutAccess interface {
	// NodeRect returns the laid-out rectangle for id. ok is false when the
	// layout pass has no entry for id.
	NodeRect(id WidgetID) (geometry.Rect, bool)

	// ScaleFactor returns the global device scale factor.
	ScaleFactor() float64
}

// UpdateContext is passed to Widget.Update.
type UpdateContext struct {
	Dom   *Dom
	Input InputAccess
}

// CaptureSelection selects the widget currently being updated.
func (ctx UpdateContext) CaptureSelection() {
	ctx.Input.SetSelection(ctx.Dom.Current())
}

// IsSelected reports whether the widget currently being updated is the
// selected widget.
func (ctx UpdateContext) IsSelected() bool {
	id, ok := ctx.Input.Selection()
	return ok && id == ctx.Dom.Current()
}

// EventContext is passed to EventHandler.HandleEvent.
type EventContext struct {
	Dom    *Dom
	Layout LayoutAccess
	Input  InputAccess
}

// CaptureSelection selects the widget the event is being delivered to.
func (ctx EventContext) CaptureSelection() {
	ctx.Input.SetSelection(ctx.Dom.Current())
}

// ClearSelection deselects the selected widget, if any.
func (ctx EventContext) ClearSelection() {
	ctx.Input.ClearSelection()
}

// IsSelected reports whether the widget the event is being delivered to is
// the selected widget.
func (ctx EventContext) IsSelected() bool {
	id, ok := ctx.Input.Selection()
	return ok && id == ctx.Dom.Current()
}

// PaintContext is passed to Painter.Paint.
type PaintContext struct {
	Dom    *Dom
	Layout LayoutAccess
}

// Response pairs a widget's update result with the identity of the node
// that produced it.
type Response struct {
	ID    WidgetID
	Value any
}

// rootWidget anchors the tree. It is never declared by applications,
// receives no events, and paints nothing.
type rootWidget struct{}

type rootProps struct{}

func (rootProps) CreateWidget() Widget {
	return &rootWidget{}
}

func (*rootWidget) Update(UpdateContext, Props) any {
	return nil
}

// Package input converts raw platform events into widget-level events
// with bubble/sink semantics and keeps the cross-frame pointer, hover,
// and focus bookkeeping.
package input

import (
	"github.com/go-glow/glow/pkg/core"
	"github.com/go-glow/glow/pkg/errors"
	"github.com/go-glow/glow/pkg/event"
	"github.com/go-glow/glow/pkg/geometry"
	"github.com/go-glow/glow/pkg/layout"
)

// InputState owns pointer, button, and modifier state plus the hover and
// selection bookkeeping that persists across frames. Like the tree it
// routes into, it is single-threaded.
type InputState struct {
	mouse         mouseState
	modifiers     event.Modifiers
	intersections intersections
	selection     core.WidgetID
	lastSelection core.WidgetID
}

type mouseState struct {
	// position is in viewport space (surface position minus viewport
	// origin), unscaled. Nil when the pointer is outside the surface.
	position *geometry.Offset

	// buttons holds per-button edge state. A button missing from the map
	// is up and has never been pressed.
	buttons map[event.MouseButton]ButtonState
}

type intersections struct {
	// mouseHit is every widget with mouse interest under the pointer,
	// deepest-declared first.
	mouseHit []core.WidgetID

	// mouseEntered is every widget that received MouseEnter without a
	// matching MouseLeave yet. Differs from mouseHit because enter
	// delivery can be cut short by a sink.
	mouseEntered []core.WidgetID

	// mouseEnteredAndSunk is the subset of mouseEntered that sank their
	// MouseEnter. A widget that claimed hover this way keeps blocking
	// enter delivery to widgets beneath it for as long as it stays hit.
	mouseEnteredAndSunk []core.WidgetID
}

// NewInputState creates an empty input state machine.
func NewInputState() *InputState {
	return &InputState{
		mouse: mouseState{
			buttons: make(map[event.MouseButton]ButtonState),
		},
	}
}

// Start begins a new frame of input handling by delivering any pending
// focus-change notifications. Call after the tree's build pass finishes
// and before feeding events.
func (s *InputState) Start(d *core.Dom, l *layout.LayoutDom) {
	s.notifySelection(d, l)
}

// Finish settles button edge states at frame end: JustDown becomes Down,
// JustUp becomes Up.
func (s *InputState) Finish() {
	for button, state := range s.mouse.buttons {
		s.mouse.buttons[button] = state.Settle()
	}
}

// Selection returns the currently selected widget, if any.
func (s *InputState) Selection() (core.WidgetID, bool) {
	return s.selection, !s.selection.IsZero()
}

// SetSelection makes id the selected widget. The focus-change events are
// delivered on the next Start.
func (s *InputState) SetSelection(id core.WidgetID) {
	s.selection = id
}

// ClearSelection deselects the selected widget, if any.
func (s *InputState) ClearSelection() {
	s.selection = core.WidgetID{}
}

// LastSelection returns the widget that was selected as of the last
// Start, which the paint pass reads alongside Selection for focus-ring
// transitions.
func (s *InputState) LastSelection() (core.WidgetID, bool) {
	return s.lastSelection, !s.lastSelection.IsZero()
}

// Modifiers returns the current modifier key state.
func (s *InputState) Modifiers() event.Modifiers {
	return s.modifiers
}

// Button returns the edge state of the given mouse button.
func (s *InputState) Button(b event.MouseButton) ButtonState {
	return s.mouse.buttons[b]
}

// PointerPosition returns the pointer position in viewport space. ok is
// false when the pointer is outside the surface.
func (s *InputState) PointerPosition() (geometry.Offset, bool) {
	if s.mouse.position == nil {
		return geometry.Offset{}, false
	}
	return *s.mouse.position, true
}

// HandleEvent dispatches one raw platform event through the tree.
// Panics raised by widget handlers are reported to the global error
// handler and re-raised; the runtime never continues past a handler
// failure with inconsistent state.
func (s *InputState) HandleEvent(d *core.Dom, l *layout.LayoutDom, ev event.Event) event.Response {
	defer func() {
		if r := recover(); r != nil {
			errors.Rethrow("input.HandleEvent", "", r)
		}
	}()

	switch ev := ev.(type) {
	case event.PointerMoved:
		s.mouseMoved(d, l, ev.Pos)
		return event.Bubble
	case event.PointerButton:
		return s.mouseButtonChanged(d, l, ev.Button, ev.Down)
	case event.PointerScroll:
		return s.sendMouseScroll(d, l, ev.Delta)
	case event.KeyChange:
		return s.keyboardKeyChanged(d, l, ev.Key, ev.Down)
	case event.ModifierChange:
		s.modifiers = ev.Modifiers
		return event.Bubble
	case event.TextTyped:
		return s.textInput(d, l, ev.Rune)
	default:
		return event.Bubble
	}
}

// Purge drops input bookkeeping for widgets removed from the tree this
// frame: the selection is cleared if it referenced one of them, and the
// hit and hover sets are filtered.
func (s *InputState) Purge(removed []core.WidgetID) {
	if len(removed) == 0 {
		return
	}

	gone := make(map[core.WidgetID]struct{}, len(removed))
	for _, id := range removed {
		gone[id] = struct{}{}
	}

	if _, ok := gone[s.selection]; ok {
		s.selection = core.WidgetID{}
	}

	s.intersections.mouseHit = filterIDs(s.intersections.mouseHit, gone)
	s.intersections.mouseEntered = filterIDs(s.intersections.mouseEntered, gone)
	s.intersections.mouseEnteredAndSunk = filterIDs(s.intersections.mouseEnteredAndSunk, gone)
}

// notifySelection compares the selection against last frame's and fires
// FocusChanged to both sides of a change: gain before loss. A side that
// has since been removed from the tree is skipped.
func (s *InputState) notifySelection(d *core.Dom, l *layout.LayoutDom) {
	current, last := s.selection, s.lastSelection
	if current == last {
		return
	}

	if !current.IsZero() {
		s.fireEvent(d, l, current, event.FocusChanged{Focused: true})
	}
	if !last.IsZero() {
		s.fireEvent(d, l, last, event.FocusChanged{Focused: false})
	}

	s.lastSelection = current
}

// mouseMoved stores the new pointer position and runs the full move
// cycle: continuous-motion delivery, hit testing, then the enter and
// leave diffs.
func (s *InputState) mouseMoved(d *core.Dom, l *layout.LayoutDom, pos *geometry.Offset) {
	if pos != nil {
		translated := l.ToViewport(*pos)
		s.mouse.position = &translated
	} else {
		s.mouse.position = nil
	}

	s.sendMouseMove(d, l)
	s.mouseHitTest(l)
	s.sendMouseEnter(d, l)
	s.sendMouseLeave(d, l)
}

// mouseButtonChanged updates the button's edge state and delivers the
// change. Raw input repeating the current state is a no-op transition.
func (s *InputState) mouseButtonChanged(d *core.Dom, l *layout.LayoutDom, button event.MouseButton, down bool) event.Response {
	state := s.mouse.buttons[button]
	switch {
	case state.IsDown() == down:
		// No edge; leave the state alone.
	case down:
		s.mouse.buttons[button] = ButtonJustDown
	default:
		s.mouse.buttons[button] = ButtonJustUp
	}

	return s.sendButtonChange(d, l, button, down)
}

func (s *InputState) keyboardKeyChanged(d *core.Dom, l *layout.LayoutDom, key event.KeyCode, down bool) event.Response {
	id, ok := s.Selection()
	if !ok {
		return event.Bubble
	}

	node, ok := l.Get(id)
	if !ok || !node.EventInterest.Contains(event.InterestFocusedKeyboard) {
		return event.Bubble
	}

	return s.fireEvent(d, l, id, event.KeyChanged{
		Key:       key,
		Down:      down,
		Modifiers: s.modifiers,
	})
}

func (s *InputState) textInput(d *core.Dom, l *layout.LayoutDom, r rune) event.Response {
	id, ok := s.Selection()
	if !ok {
		return event.Bubble
	}

	node, ok := l.Get(id)
	if !ok || !node.EventInterest.Contains(event.InterestFocusedKeyboard) {
		return event.Bubble
	}

	return s.fireEvent(d, l, id, event.TextInput{Rune: r})
}

// sendButtonChange delivers a button event to every hit widget, deepest
// first, stopping at the first sink. Widgets with outside interest that
// were not hit receive the Inside=false variant afterwards; that pass is
// informational and cannot be sunk.
func (s *InputState) sendButtonChange(d *core.Dom, l *layout.LayoutDom, button event.MouseButton, down bool) event.Response {
	position := s.deliveryPosition(l)
	overall := event.Bubble

	for _, id := range s.intersections.mouseHit {
		response := s.fireEvent(d, l, id, event.MouseButtonChanged{
			Button:    button,
			Down:      down,
			Inside:    true,
			Position:  position,
			Modifiers: s.modifiers,
		})
		if response == event.Sink {
			overall = event.Sink
			break
		}
	}

	// Reverse the interest list for consistency with hit testing, so the
	// outside pass also runs deepest first.
	entries := l.InterestMouse()
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if !entry.Interest.Contains(event.InterestMouseOutside) {
			continue
		}
		if containsID(s.intersections.mouseHit, entry.ID) {
			continue
		}
		s.fireEvent(d, l, entry.ID, event.MouseButtonChanged{
			Button:    button,
			Down:      down,
			Inside:    false,
			Position:  position,
			Modifiers: s.modifiers,
		})
	}

	return overall
}

// sendMouseScroll delivers scroll to hit widgets deepest first, stopping
// at the first sink.
func (s *InputState) sendMouseScroll(d *core.Dom, l *layout.LayoutDom, delta geometry.Offset) event.Response {
	for _, id := range s.intersections.mouseHit {
		if s.fireEvent(d, l, id, event.MouseScroll{Delta: delta}) == event.Sink {
			return event.Sink
		}
	}
	return event.Bubble
}

// sendMouseMove notifies every widget with continuous-motion interest of
// the new pointer position, hit or not.
func (s *InputState) sendMouseMove(d *core.Dom, l *layout.LayoutDom) {
	var pos *geometry.Offset
	if s.mouse.position != nil {
		local := s.mouse.position.Div(l.ScaleFactor())
		pos = &local
	}
	ev := event.MouseMoved{Pos: pos}

	entries := l.InterestMouse()
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if entry.Interest.Intersects(event.InterestMouseMove) {
			s.fireEvent(d, l, entry.ID, ev)
		}
	}
}

// sendMouseEnter fires MouseEnter for newly hit widgets. A widget that
// sinks the enter claims hover: no widget beneath it is entered, and the
// claim is remembered in mouseEnteredAndSunk so it holds on later moves
// that still hit the widget.
func (s *InputState) sendMouseEnter(d *core.Dom, l *layout.LayoutDom) {
	ix := &s.intersections

	for _, hit := range ix.mouseHit {
		if !containsID(ix.mouseEntered, hit) {
			ix.mouseEntered = append(ix.mouseEntered, hit)

			if s.fireEvent(d, l, hit, event.MouseEnter{}) == event.Sink {
				ix.mouseEnteredAndSunk = append(ix.mouseEnteredAndSunk, hit)
				break
			}
		} else if containsID(ix.mouseEnteredAndSunk, hit) {
			// Still hovered and previously sank the enter; keep sinking so
			// widgets beneath it are not erroneously hovered.
			break
		}
	}
}

// sendMouseLeave fires MouseLeave for entered widgets that are no longer
// hit and drops them from both hover sets.
func (s *InputState) sendMouseLeave(d *core.Dom, l *layout.LayoutDom) {
	ix := &s.intersections

	var left []core.WidgetID
	for _, entered := range ix.mouseEntered {
		if !containsID(ix.mouseHit, entered) {
			s.fireEvent(d, l, entered, event.MouseLeave{})
			left = append(left, entered)
		}
	}

	for _, id := range left {
		ix.mouseEntered = removeID(ix.mouseEntered, id)
		ix.mouseEnteredAndSunk = removeID(ix.mouseEnteredAndSunk, id)
	}
}

// mouseHitTest recomputes the hit set for the stored pointer position.
func (s *InputState) mouseHitTest(l *layout.LayoutDom) {
	s.intersections.mouseHit = s.intersections.mouseHit[:0]

	if s.mouse.position == nil {
		return
	}
	local := s.mouse.position.Div(l.ScaleFactor())
	hitTest(l, local, &s.intersections.mouseHit)
}

// deliveryPosition is the pointer position handed to widgets with button
// events: layout-local, or the origin when the pointer is outside.
func (s *InputState) deliveryPosition(l *layout.LayoutDom) geometry.Offset {
	if s.mouse.position == nil {
		return geometry.Offset{}
	}
	return s.mouse.position.Div(l.ScaleFactor())
}

// fireEvent delivers one widget-level event to id. The widget is entered
// on the traversal stack for the duration of the call so nested queries
// resolve to it, and its instance is detached from the node to give the
// handler exclusive ownership. Stale ids and widgets without an event
// handler bubble.
func (s *InputState) fireEvent(d *core.Dom, l *layout.LayoutDom, id core.WidgetID, ev event.WidgetEvent) event.Response {
	node, ok := d.Get(id)
	if !ok {
		return event.Bubble
	}

	w := node.DetachWidget()

	handler, ok := w.(core.EventHandler)
	if !ok {
		node.AttachWidget(w)
		return event.Bubble
	}

	d.Enter(id)
	response := handler.HandleEvent(core.EventContext{Dom: d, Layout: l, Input: s}, ev)
	d.Exit(id)

	node.AttachWidget(w)
	return response
}

func containsID(ids []core.WidgetID, id core.WidgetID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []core.WidgetID, id core.WidgetID) []core.WidgetID {
	kept := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func filterIDs(ids []core.WidgetID, gone map[core.WidgetID]struct{}) []core.WidgetID {
	kept := ids[:0]
	for _, candidate := range ids {
		if _, ok := gone[candidate]; !ok {
			kept = append(kept, candidate)
		}
	}
	return kept
}

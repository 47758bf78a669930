// Package event defines the events that flow through the runtime: raw
// platform events fed into input routing, widget-level events delivered
// to individual widgets, and the interest flags widgets use to opt into
// delivery.
package event

import "github.com/go-glow/glow/pkg/geometry"

// Event is a raw platform event handed to the input state machine.
// Implementations are the Pointer*, Key*, Modifier*, and TextTyped types
// in this package.
type Event interface {
	isEvent()
}

// PointerMoved reports a new pointer position in surface coordinates.
// Pos is nil when the pointer has left the surface.
type PointerMoved struct {
	Pos *geometry.Offset
}

// PointerButton reports a raw press or release of a mouse button.
type PointerButton struct {
	Button MouseButton
	Down   bool
}

// PointerScroll reports scroll wheel movement.
type PointerScroll struct {
	Delta geometry.Offset
}

// KeyChange reports a raw press or release of a keyboard key.
type KeyChange struct {
	Key  KeyCode
	Down bool
}

// ModifierChange reports the new state of the keyboard modifiers.
type ModifierChange struct {
	Modifiers Modifiers
}

// TextTyped reports a character of text input.
type TextTyped struct {
	Rune rune
}

func (PointerMoved) isEvent()   {}
func (PointerButton) isEvent()  {}
func (PointerScroll) isEvent()  {}
func (KeyChange) isEvent()      {}
func (ModifierChange) isEvent() {}
func (TextTyped) isEvent()      {}

// Response tells the dispatcher whether a widget consumed an event.
type Response int

const (
	// Bubble lets the event continue to the next candidate widget.
	Bubble Response = iota

	// Sink consumes the event, stopping further delivery.
	Sink
)

func (r Response) String() string {
	switch r {
	case Bubble:
		return "bubble"
	case Sink:
		return "sink"
	default:
		return "unknown"
	}
}

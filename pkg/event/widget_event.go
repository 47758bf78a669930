package event

import "github.com/go-glow/glow/pkg/geometry"

// WidgetEvent is an event delivered to a single widget's event handler.
type WidgetEvent interface {
	isWidgetEvent()
}

// MouseEnter is sent when the pointer starts hitting a widget.
type MouseEnter struct{}

// MouseLeave is sent when the pointer stops hitting a widget that was
// previously entered.
type MouseLeave struct{}

// MouseMoved reports the pointer position in layout-local coordinates to
// widgets that declared InterestMouseMove. Pos is nil when the pointer is
// outside the surface.
type MouseMoved struct {
	Pos *geometry.Offset
}

// MouseButtonChanged reports a button press or release. Inside tells
// whether the pointer was over the widget; widgets only receive the
// Inside=false variant if they declared InterestMouseOutside.
type MouseButtonChanged struct {
	Button    MouseButton
	Down      bool
	Inside    bool
	Position  geometry.Offset
	Modifiers Modifiers
}

// MouseScroll reports scroll wheel movement over a hit widget.
type MouseScroll struct {
	Delta geometry.Offset
}

// KeyChanged reports a key press or release to the selected widget.
type KeyChanged struct {
	Key       KeyCode
	Down      bool
	Modifiers Modifiers
}

// TextInput reports a typed character to the selected widget.
type TextInput struct {
	Rune rune
}

// FocusChanged tells a widget that it gained or lost selection.
type FocusChanged struct {
	Focused bool
}

func (MouseEnter) isWidgetEvent()         {}
func (MouseLeave) isWidgetEvent()         {}
func (MouseMoved) isWidgetEvent()         {}
func (MouseButtonChanged) isWidgetEvent() {}
func (MouseScroll) isWidgetEvent()        {}
func (KeyChanged) isWidgetEvent()         {}
func (TextInput) isWidgetEvent()          {}
func (FocusChanged) isWidgetEvent()       {}

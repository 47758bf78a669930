package event

// Interest is a bitset of event categories a widget wants routed to it
// even when it is not the topmost hit target.
type Interest uint8

const (
	// InterestMouseInside delivers mouse button and scroll events that hit
	// the widget's rectangle.
	InterestMouseInside Interest = 1 << iota

	// InterestMouseOutside delivers button events that happen outside the
	// widget's rectangle, with Inside set to false.
	InterestMouseOutside

	// InterestMouseMove delivers every pointer move, hit or not.
	InterestMouseMove

	// InterestFocusedKeyboard delivers key and text events while the
	// widget is selected.
	InterestFocusedKeyboard

	// InterestNone is the empty interest set.
	InterestNone Interest = 0

	// InterestMouse covers button events both inside and outside the
	// widget's rectangle.
	InterestMouse = InterestMouseInside | InterestMouseOutside

	// InterestMouseAll covers every mouse event category.
	InterestMouseAll = InterestMouse | InterestMouseMove
)

// Contains reports whether every flag in other is set in i.
func (i Interest) Contains(other Interest) bool {
	return i&other == other
}

// Intersects reports whether any flag in other is set in i.
func (i Interest) Intersects(other Interest) bool {
	return i&other != 0
}

package input

// ButtonState is the edge-detecting state of one mouse button. Raw
// down/up input drives Up/Down transitions through the Just* states;
// Settle collapses them to their steady equivalents at frame end.
type ButtonState int

const (
	// ButtonUp means the button is released.
	ButtonUp ButtonState = iota

	// ButtonJustDown means the button was pressed during this frame.
	ButtonJustDown

	// ButtonDown means the button has been held since a previous frame.
	ButtonDown

	// ButtonJustUp means the button was released during this frame.
	ButtonJustUp
)

// IsDown reports whether the button is currently held.
func (b ButtonState) IsDown() bool {
	return b == ButtonJustDown || b == ButtonDown
}

// Settle collapses a frame-edge state into its steady equivalent.
func (b ButtonState) Settle() ButtonState {
	switch b {
	case ButtonJustDown:
		return ButtonDown
	case ButtonJustUp:
		return ButtonUp
	default:
		return b
	}
}

func (b ButtonState) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonJustDown:
		return "just-down"
	case ButtonDown:
		return "down"
	case ButtonJustUp:
		return "just-up"
	default:
		return "unknown"
	}
}

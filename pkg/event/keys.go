package event

// MouseButton identifies a button on a pointing device.
type MouseButton int

const (
	// MouseButtonLeft is the primary button.
	MouseButtonLeft MouseButton = iota

	// MouseButtonRight is the secondary button.
	MouseButtonRight

	// MouseButtonMiddle is the scroll wheel button.
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// KeyCode identifies a physical key. The set covers the keys the
// built-in widgets respond to; platform layers may define their own
// codes above KeyUser.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyEnter
	KeyNumpadEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyHome
	KeyEnd
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeySpace

	// KeyUser is the first code available for embedder-defined keys.
	KeyUser KeyCode = 1 << 16
)

// Modifiers is a bitset of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Contains reports whether every modifier in other is held.
func (m Modifiers) Contains(other Modifiers) bool {
	return m&other == other
}

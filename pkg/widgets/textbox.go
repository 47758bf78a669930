package widgets

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-glow/glow/pkg/core"
	"github.com/go-glow/glow/pkg/event"
)

// TextBox declares an editable line of text. Clicking the box selects
// it; while selected it receives keyboard and text input.
type TextBox struct {
	Text string
}

// CreateWidget implements core.Props.
func (t TextBox) CreateWidget() core.Widget {
	return &TextBoxWidget{}
}

// Show declares the text box as a leaf at the current tree position.
func (t TextBox) Show(d *core.Dom) TextBoxResponse {
	r := d.DoWidget(t)
	response := r.Value.(TextBoxResponse)
	response.ID = r.ID
	return response
}

// TextBoxResponse reports the text box state for this frame.
type TextBoxResponse struct {
	ID core.WidgetID

	// Text is non-nil once the user has edited the contents; it points
	// at the edited text. Nil means the declared text is unchanged.
	Text *string

	// Selected reports whether the box currently holds the selection.
	Selected bool
}

// TextBoxWidget is the retained instance behind TextBox declarations.
type TextBoxWidget struct {
	props       TextBox
	updatedText *string
	selected    bool

	// cursor is a byte offset into the text, always on a rune boundary.
	cursor int
}

func (w *TextBoxWidget) Update(ctx core.UpdateContext, props core.Props) any {
	w.props = props.(TextBox)

	return TextBoxResponse{
		Text:     w.updatedText,
		Selected: w.selected,
	}
}

func (w *TextBoxWidget) EventInterest() event.Interest {
	return event.InterestMouseInside | event.InterestFocusedKeyboard
}

func (w *TextBoxWidget) HandleEvent(ctx core.EventContext, ev event.WidgetEvent) event.Response {
	switch ev := ev.(type) {
	case event.FocusChanged:
		w.selected = ev.Focused
		return event.Sink

	case event.MouseButtonChanged:
		if ev.Button == event.MouseButtonLeft && ev.Down && ev.Inside {
			ctx.CaptureSelection()
			return event.Sink
		}
		return event.Bubble

	case event.KeyChanged:
		if !ev.Down {
			return event.Bubble
		}
		switch ev.Key {
		case event.KeyArrowLeft:
			w.moveCursor(-1)
			return event.Sink
		case event.KeyArrowRight:
			w.moveCursor(1)
			return event.Sink
		case event.KeyBackspace:
			w.delete(-1)
			return event.Sink
		case event.KeyDelete:
			w.delete(1)
			return event.Sink
		case event.KeyHome:
			w.cursor = 0
			return event.Sink
		case event.KeyEnd:
			w.cursor = len(w.text())
			return event.Sink
		case event.KeyEnter, event.KeyNumpadEnter, event.KeyEscape:
			ctx.ClearSelection()
			return event.Sink
		default:
			return event.Bubble
		}

	case event.TextInput:
		if unicode.IsControl(ev.Rune) {
			return event.Bubble
		}
		text := w.editableText()
		*text = (*text)[:w.cursor] + string(ev.Rune) + (*text)[w.cursor:]
		w.cursor += utf8.RuneLen(ev.Rune)
		return event.Sink

	default:
		return event.Bubble
	}
}

// text returns the current contents: the edited text once editing has
// started, the declared props text before that.
func (w *TextBoxWidget) text() string {
	if w.updatedText != nil {
		return *w.updatedText
	}
	return w.props.Text
}

// editableText returns the edited text, seeding it from the declared
// text on first edit.
func (w *TextBoxWidget) editableText() *string {
	if w.updatedText == nil {
		text := w.props.Text
		w.updatedText = &text
	}
	return w.updatedText
}

// moveCursor shifts the cursor by delta runes, clamped to the text.
func (w *TextBoxWidget) moveCursor(delta int) {
	text := w.text()
	for ; delta > 0; delta-- {
		if w.cursor >= len(text) {
			w.cursor = len(text)
			break
		}
		_, size := utf8.DecodeRuneInString(text[w.cursor:])
		w.cursor += size
	}
	for ; delta < 0; delta++ {
		if w.cursor <= 0 {
			w.cursor = 0
			break
		}
		_, size := utf8.DecodeLastRuneInString(text[:w.cursor])
		w.cursor -= size
	}
}

// delete removes one rune after the cursor (dir > 0) or before it
// (dir < 0).
func (w *TextBoxWidget) delete(dir int) {
	text := w.editableText()
	if dir > 0 {
		if w.cursor >= len(*text) {
			return
		}
		_, size := utf8.DecodeRuneInString((*text)[w.cursor:])
		*text = (*text)[:w.cursor] + (*text)[w.cursor+size:]
		return
	}
	if w.cursor <= 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString((*text)[:w.cursor])
	w.cursor -= size
	*text = (*text)[:w.cursor] + (*text)[w.cursor+size:]
}

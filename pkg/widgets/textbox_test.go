package widgets_test

import (
	"testing"

	"github.com/go-glow/glow/pkg/core"
	"github.com/go-glow/glow/pkg/event"
	"github.com/go-glow/glow/pkg/geometry"
	"github.com/go-glow/glow/pkg/glow"
	"github.com/go-glow/glow/pkg/layout"
	"github.com/go-glow/glow/pkg/widgets"
)

type textBoxFixture struct {
	ctx  *glow.Context
	text string
	id   core.WidgetID
}

func newTextBoxFixture(text string) *textBoxFixture {
	f := &textBoxFixture{ctx: glow.NewContext(), text: text}
	f.frame()
	f.ctx.Layout().Set(f.id, layout.Node{
		Rect:          geometry.Rect{Size: geometry.Size{Width: 200, Height: 30}},
		EventInterest: event.InterestMouseInside | event.InterestFocusedKeyboard,
	})
	return f
}

func (f *textBoxFixture) frame() widgets.TextBoxResponse {
	var response widgets.TextBoxResponse
	f.ctx.BuildFrame(func(d *core.Dom) {
		response = widgets.TextBox{Text: f.text}.Show(d)
	})
	f.id = response.ID
	return response
}

// selectBox clicks into the box and runs the frames that deliver the
// focus change.
func (f *textBoxFixture) selectBox() {
	pos := geometry.Offset{X: 10, Y: 10}
	f.ctx.HandleEvent(event.PointerMoved{Pos: &pos})
	f.ctx.HandleEvent(event.PointerButton{Button: event.MouseButtonLeft, Down: true})
	f.ctx.HandleEvent(event.PointerButton{Button: event.MouseButtonLeft, Down: false})
	f.ctx.Settle()
	f.frame()
}

func (f *textBoxFixture) key(code event.KeyCode) {
	f.ctx.HandleEvent(event.KeyChange{Key: code, Down: true})
	f.ctx.HandleEvent(event.KeyChange{Key: code, Down: false})
}

func (f *textBoxFixture) typeText(text string) {
	for _, r := range text {
		f.ctx.HandleEvent(event.TextTyped{Rune: r})
	}
}

func TestTextBox_ClickSelects(t *testing.T) {
	f := newTextBoxFixture("ab")

	if f.frame().Selected {
		t.Fatal("box must start unselected")
	}

	f.selectBox()
	if !f.frame().Selected {
		t.Error("clicking the box should select it")
	}
}

func TestTextBox_EscapeDeselects(t *testing.T) {
	f := newTextBoxFixture("ab")
	f.selectBox()
	f.frame()

	f.key(event.KeyEscape)
	f.frame()
	if f.frame().Selected {
		t.Error("escape should deselect the box")
	}
}

func TestTextBox_TypingEditsAtCursor(t *testing.T) {
	f := newTextBoxFixture("ab")
	f.selectBox()

	f.key(event.KeyEnd)
	f.typeText("c!")

	response := f.frame()
	if response.Text == nil {
		t.Fatal("editing should produce an updated text")
	}
	if *response.Text != "abc!" {
		t.Errorf("text = %q, want %q", *response.Text, "abc!")
	}
}

func TestTextBox_CursorMovementAndDeletion(t *testing.T) {
	f := newTextBoxFixture("héo")
	f.selectBox()

	// End, step left before the final rune, delete the accented rune
	// behind the cursor, then insert in its place.
	f.key(event.KeyEnd)
	f.key(event.KeyArrowLeft)
	f.key(event.KeyBackspace)
	f.typeText("i")

	response := f.frame()
	if response.Text == nil {
		t.Fatal("editing should produce an updated text")
	}
	if *response.Text != "hio" {
		t.Errorf("text = %q, want %q", *response.Text, "hio")
	}
}

func TestTextBox_DeleteForward(t *testing.T) {
	f := newTextBoxFixture("abc")
	f.selectBox()

	f.key(event.KeyHome)
	f.key(event.KeyDelete)

	response := f.frame()
	if response.Text == nil || *response.Text != "bc" {
		t.Errorf("forward delete at the start should leave %q", "bc")
	}
}

func TestTextBox_ControlRunesIgnored(t *testing.T) {
	f := newTextBoxFixture("ab")
	f.selectBox()

	f.ctx.HandleEvent(event.TextTyped{Rune: '\t'})

	if response := f.frame(); response.Text != nil {
		t.Errorf("control input must not edit the text, got %q", *response.Text)
	}
}

func TestTextBox_KeysIgnoredWhileUnselected(t *testing.T) {
	f := newTextBoxFixture("ab")

	f.key(event.KeyEnd)
	f.typeText("xyz")

	if response := f.frame(); response.Text != nil {
		t.Errorf("an unselected box must not receive input, got %q", *response.Text)
	}
}

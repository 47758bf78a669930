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

type buttonFixture struct {
	ctx *glow.Context
	id  core.WidgetID
}

// newButtonFixture declares a single 100x40 button at the origin and
// runs the layout stand-in for it.
func newButtonFixture() *buttonFixture {
	f := &buttonFixture{ctx: glow.NewContext()}
	f.frame()
	f.ctx.Layout().Set(f.id, layout.Node{
		Rect:          geometry.Rect{Size: geometry.Size{Width: 100, Height: 40}},
		EventInterest: event.InterestMouse,
	})
	return f
}

func (f *buttonFixture) frame() widgets.ButtonResponse {
	var response widgets.ButtonResponse
	f.ctx.BuildFrame(func(d *core.Dom) {
		response = widgets.Button{Text: "Go"}.Show(d)
	})
	f.id = response.ID
	return response
}

func (f *buttonFixture) move(x, y float64) {
	pos := geometry.Offset{X: x, Y: y}
	f.ctx.HandleEvent(event.PointerMoved{Pos: &pos})
}

func (f *buttonFixture) press() {
	f.ctx.HandleEvent(event.PointerButton{Button: event.MouseButtonLeft, Down: true})
	f.ctx.Settle()
}

func (f *buttonFixture) release() {
	f.ctx.HandleEvent(event.PointerButton{Button: event.MouseButtonLeft, Down: false})
	f.ctx.Settle()
}

func TestButton_HoverTracksPointer(t *testing.T) {
	f := newButtonFixture()

	f.move(50, 20)
	if !f.frame().Hovering {
		t.Error("button should report hovering with the pointer inside")
	}

	f.move(500, 500)
	if f.frame().Hovering {
		t.Error("button should stop hovering when the pointer leaves")
	}
}

func TestButton_ClickReportsExactlyOneFrame(t *testing.T) {
	f := newButtonFixture()

	f.move(50, 20)
	f.press()
	f.release()

	if !f.frame().Clicked {
		t.Error("press and release on the button should click")
	}
	if f.frame().Clicked {
		t.Error("the click must be reported on one frame only")
	}
}

func TestButton_ReleaseOutsideCancelsPress(t *testing.T) {
	f := newButtonFixture()

	f.move(50, 20)
	f.press()
	f.move(500, 500)
	f.release()

	if f.frame().Clicked {
		t.Error("a press released off the button must not click")
	}

	// A later release inside without a press does nothing either.
	f.move(50, 20)
	f.release()
	if f.frame().Clicked {
		t.Error("a release without a press must not click")
	}
}

func TestButton_IgnoresSecondaryButton(t *testing.T) {
	f := newButtonFixture()

	f.move(50, 20)
	f.ctx.HandleEvent(event.PointerButton{Button: event.MouseButtonRight, Down: true})
	f.ctx.HandleEvent(event.PointerButton{Button: event.MouseButtonRight, Down: false})
	f.ctx.Settle()

	if f.frame().Clicked {
		t.Error("secondary-button activity must not click")
	}
}

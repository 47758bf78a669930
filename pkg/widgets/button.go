// Package widgets provides leaf widgets built on the core widget
// contract. They live outside the core on purpose: everything they do
// goes through the same Props/Widget/EventHandler surface available to
// applications.
package widgets

import (
	"github.com/go-glow/glow/pkg/core"
	"github.com/go-glow/glow/pkg/event"
)

// Button declares a clickable button.
type Button struct {
	Text string
}

// CreateWidget implements core.Props.
func (b Button) CreateWidget() core.Widget {
	return &ButtonWidget{}
}

// Show declares the button as a leaf at the current tree position.
func (b Button) Show(d *core.Dom) ButtonResponse {
	r := d.DoWidget(b)
	response := r.Value.(ButtonResponse)
	response.ID = r.ID
	return response
}

// ButtonResponse reports the button's interaction state for this frame.
type ButtonResponse struct {
	ID       core.WidgetID
	Hovering bool

	// Clicked is true on exactly the frame where a press that started on
	// the button was released on it.
	Clicked bool
}

// ButtonWidget is the retained instance behind Button declarations.
type ButtonWidget struct {
	props     Button
	hovering  bool
	mouseDown bool
	clicked   bool
}

func (w *ButtonWidget) Update(ctx core.UpdateContext, props core.Props) any {
	w.props = props.(Button)

	clicked := w.clicked
	w.clicked = false

	return ButtonResponse{
		Hovering: w.hovering,
		Clicked:  clicked,
	}
}

func (w *ButtonWidget) EventInterest() event.Interest {
	return event.InterestMouse
}

func (w *ButtonWidget) HandleEvent(ctx core.EventContext, ev event.WidgetEvent) event.Response {
	switch ev := ev.(type) {
	case event.MouseEnter:
		w.hovering = true
		return event.Sink

	case event.MouseLeave:
		w.hovering = false
		return event.Sink

	case event.MouseButtonChanged:
		if ev.Button != event.MouseButtonLeft {
			return event.Bubble
		}
		if !ev.Inside {
			// A release anywhere cancels an in-progress press.
			if !ev.Down {
				w.mouseDown = false
			}
			return event.Bubble
		}
		if ev.Down {
			w.mouseDown = true
			return event.Sink
		}
		if w.mouseDown {
			w.mouseDown = false
			w.clicked = true
			return event.Sink
		}
		return event.Bubble

	default:
		return event.Bubble
	}
}

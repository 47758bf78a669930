package glow

import (
	"github.com/go-glow/glow/pkg/core"
	"github.com/go-glow/glow/pkg/errors"
	"github.com/go-glow/glow/pkg/event"
	"github.com/go-glow/glow/pkg/input"
	"github.com/go-glow/glow/pkg/layout"
)

// Context binds one widget tree to one input state machine and one
// layout surface, and drives them through the per-frame sequence. It is
// the explicit replacement for a thread-bound "current tree" singleton:
// embedders thread the Context to wherever it is needed instead of
// reaching into hidden global state.
//
// A Context is single-threaded and admits one build pass at a time;
// overlapping Start calls are a contract violation and panic.
type Context struct {
	dom      *core.Dom
	input    *input.InputState
	layout   *layout.LayoutDom
	building bool
}

// NewContext creates a fresh tree, input state, and layout surface wired
// together.
func NewContext() *Context {
	d := core.NewDom()
	in := input.NewInputState()
	d.BindInput(in)

	return &Context{
		dom:    d,
		input:  in,
		layout: layout.NewLayoutDom(),
	}
}

// Dom returns the widget tree.
func (c *Context) Dom() *core.Dom {
	return c.dom
}

// Input returns the input state machine.
func (c *Context) Input() *input.InputState {
	return c.input
}

// Layout returns the layout surface the external layout pass populates.
func (c *Context) Layout() *layout.LayoutDom {
	return c.layout
}

// Start begins the frame's declaration pass.
func (c *Context) Start() {
	if c.building {
		panic("glow: Start called while a build pass is already in progress")
	}
	c.building = true
	c.dom.Start()
}

// Finish ends the declaration pass: unreached subtrees are pruned, input
// bookkeeping for removed widgets is purged, and pending focus-change
// notifications are delivered. In DebugMode the tree invariants are
// validated first.
func (c *Context) Finish() {
	if !c.building {
		panic("glow: Finish called without a matching Start")
	}
	c.dom.Finish()
	c.building = false

	c.input.Purge(c.dom.Removed())

	if DebugMode {
		validateTree(c.dom)
	}

	c.input.Start(c.dom, c.layout)
}

// BuildFrame runs one complete declaration pass: Start, then fn, then
// Finish. A panic inside fn is reported to the global error handler and
// re-raised; the tree is not usable afterwards.
func (c *Context) BuildFrame(fn func(*core.Dom)) {
	defer func() {
		if r := recover(); r != nil {
			errors.Rethrow("glow.BuildFrame", "", r)
		}
	}()

	c.Start()
	fn(c.dom)
	c.Finish()
}

// HandleEvent routes one raw platform event through the tree. Events
// cannot be routed while a build pass is in progress.
func (c *Context) HandleEvent(ev event.Event) event.Response {
	if c.building {
		panic("glow: HandleEvent called during the build pass")
	}
	return c.input.HandleEvent(c.dom, c.layout, ev)
}

// Settle ends the frame's input handling, collapsing button edge states
// to their steady values. Call once per frame after all events.
func (c *Context) Settle() {
	c.input.Finish()
}

package glow

import "github.com/go-glow/glow/pkg/core"

// UseState returns persisted state for the widget currently being
// updated, creating it with init on first use. The value survives across
// frames for as long as the widget's node stays in the tree and is
// evicted on the frame that removes it.
//
// One slot exists per value type per tree; widgets of different types
// sharing a state type share the slot but never a key, since keys are
// node identities.
func UseState[T any](ctx core.UpdateContext, init func() T) *T {
	slot := core.GlobalOrInit(ctx.Dom, func() *core.StateSlot[T] {
		return core.NewStateSlot[T](ctx.Dom)
	})
	return slot.OrInit(ctx.Dom.Current(), init)
}

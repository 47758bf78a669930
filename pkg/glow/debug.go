package glow

import (
	"fmt"

	"github.com/go-glow/glow/pkg/core"
)

// DebugMode enables per-frame tree validation in Context.Finish. It
// catches dangling child ids and broken parent back-references close to
// the frame that introduced them.
var DebugMode = true

// SetDebugMode enables or disables per-frame tree validation.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// validateTree walks the whole tree checking structural invariants:
// every child id resolves to a live node, and every child's parent
// back-reference names the node it hangs under. Violations are
// programming errors in the reconciler or misuse of the node API, so
// they panic.
func validateTree(d *core.Dom) {
	var walk func(id core.WidgetID)
	walk = func(id core.WidgetID) {
		node, ok := d.Get(id)
		if !ok {
			panic(fmt.Sprintf("glow: tree invariant violated: dangling child id %v", id))
		}
		for _, child := range node.Children() {
			childNode, ok := d.Get(child)
			if !ok {
				panic(fmt.Sprintf("glow: tree invariant violated: node %v lists dangling child %v", id, child))
			}
			if parent, ok := childNode.Parent(); !ok || parent != id {
				panic(fmt.Sprintf("glow: tree invariant violated: child %v of %v has parent %v", child, id, parent))
			}
			walk(child)
		}
	}
	walk(d.Root())
}

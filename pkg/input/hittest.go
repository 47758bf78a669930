package input

import (
	"github.com/go-glow/glow/pkg/core"
	"github.com/go-glow/glow/pkg/geometry"
	"github.com/go-glow/glow/pkg/layout"
)

// hitTest appends every mouse-interested widget whose rectangle contains
// pos to out, deepest-declared first.
//
// The layout's interest list is in depth-first traversal order, so
// walking it in reverse tests the deepest widgets first, which for this
// tree shape approximates visually-topmost first. A widget's rectangle
// is intersected with every rectangle up its clip chain before the
// containment check.
func hitTest(l *layout.LayoutDom, pos geometry.Offset, out *[]core.WidgetID) {
	entries := l.InterestMouse()
	for i := len(entries) - 1; i >= 0; i-- {
		id := entries[i].ID
		node, ok := l.Get(id)
		if !ok {
			continue
		}

		rect := node.Rect
		for clip := node.ClippedBy; !clip.IsZero(); {
			parent, ok := l.Get(clip)
			if !ok {
				break
			}
			rect = rect.Constrain(parent.Rect)
			clip = parent.ClippedBy
		}

		if rect.ContainsPoint(pos) {
			*out = append(*out, id)
		}
	}
}

package solver

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/unit"
)

// applyRelativeOffset implements spec.md §4.3.10: position:relative shifts
// an already-placed rectangle by its resolved inset offsets without
// affecting any sibling's rectangle or the parent's intrinsic size.
func applyRelativeOffset(n *element.Node, rect Rect, basisW, basisH, fontSize float64) Rect {
	if n.Attrs.Position != element.PosRelative {
		return rect
	}
	if v, ok := unit.ResolveLength(n.Attrs.Left, basisW, fontSize); ok {
		rect.X += v
	} else if v, ok := unit.ResolveLength(n.Attrs.Right, basisW, fontSize); ok {
		rect.X -= v
	}
	if v, ok := unit.ResolveLength(n.Attrs.Top, basisH, fontSize); ok {
		rect.Y += v
	} else if v, ok := unit.ResolveLength(n.Attrs.Bottom, basisH, fontSize); ok {
		rect.Y -= v
	}
	return rect
}

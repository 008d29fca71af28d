// Package layouttree defines the output of layout resolution: a tree of
// resolved boxes, each carrying the absolute position and final size its
// source element.Node was assigned (spec.md §4's "LayoutNode").
package layouttree

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/colorparse"
)

// Node is one resolved box in the output tree. X/Y are relative to the
// root canvas origin (top-left, spec.md §3), already carrying any
// position:relative offset baked in; Width/Height are the final
// content+padding+border box size (the border box, spec.md GLOSSARY).
type Node struct {
	Element *element.Node

	X, Y          float64
	Width, Height float64

	// Direction is the resolved main-axis direction the element's own
	// flex container used to place Children, copied through for a
	// renderer that wants to draw borders/backgrounds direction-aware.
	Direction element.Direction

	// TextLines and LineHeight are populated only when Element.Kind is
	// KindText: the shaped lines and the line height used to stack them,
	// straight from the one shaper.Shape call the solver made for this
	// node (spec.md §4.4).
	TextLines  []string
	LineHeight float64

	// LineOffsets is the x-offset (for a row of text, relative to the
	// node's content-box left edge) each entry of TextLines should be
	// drawn at, resolving Element.Text.TextAlign against the node's
	// final content width and resolved writing direction.
	LineOffsets []float64

	Children []*Node

	// Background is set only on the tree root, resolved from
	// canvas.background (spec.md §6); nil when the canvas declared none.
	Background *colorparse.Color
}

// Walk visits n and every descendant, pre-order.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

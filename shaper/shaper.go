// Package shaper defines the text-shaping capability the flex solver calls
// back into exactly once per text node (spec.md §4.4), plus a deterministic
// default implementation and an optional real-font-backed one.
package shaper

import "github.com/brambleworks/flexlayout/element"

// Shaped is the result of shaping a text node against a width budget: the
// wrapped lines, the content box they occupy, and the line height used.
type Shaped struct {
	Lines      []string
	LineWidths []float64 // per-line measured width, parallel to Lines
	Width      float64
	Height     float64
	LineHeight float64
}

// Options carries everything beyond (text, fontSize, maxWidth) that a
// shaper needs to honor spec.md §3's text-only attributes.
type Options struct {
	LineHeightExpr string // raw "line_height" attribute, unresolved
	Wrap           bool
	WrapMode       element.WrapMode
	WrapSymbol     string
	MaxLines       int
	OverflowMode   element.TextOverflowMode
}

// TextShaper segments a text string into visible lines given a width
// budget, producing per-line strings and a line-height metric
// (spec.md GLOSSARY: "Shaping"). The solver calls Shape exactly once per
// text node, at the point the node's final max-width is known
// (post-flex-resolution, spec.md §4.4); MeasureAll calls it once more per
// text node with an unconstrained max-width during intrinsic measurement.
// Per the cross-pass consistency rule, both calls must go through the same
// TextShaper instance.
type TextShaper interface {
	Shape(content string, fontSize, maxWidth float64, opts Options) (Shaped, error)
}

// Unbounded is the max-width value the intrinsic measurer passes for
// "no wrap constraint" (spec.md §4.2: "max_width = ∞").
const Unbounded = 1e12

// Package solver implements the flex layout algorithm of spec.md §4.3: a
// recursive top-down pass that turns an element tree, a precomputed
// intrinsic-size map, and a root border-box rectangle into a tree of absolute
// rectangles. It is the largest component of the engine (spec.md §2: ~55%
// share), grounded in the teacher's auto_layout_flex.go/auto_layout_place.go
// pipeline (computeInner -> buildLines -> placeLines -> positionAbsolute),
// generalized from fixed-point pixel integers to continuous float64
// coordinates and from the teacher's single fixed Row/Column model to the
// full grow/shrink/wrap/justify/align/position surface spec.md §4.3 names.
package solver

import (
	"github.com/brambleworks/flexlayout/content"
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/intrinsic"
	"github.com/brambleworks/flexlayout/shaper"
)

// Rect is an absolute border-box rectangle in the root canvas's coordinate
// space (spec.md §6).
type Rect struct {
	X, Y, Width, Height float64
}

// Config bundles everything the solver needs beyond the element tree
// itself, mirroring the root compute_layout(template, shaper?, config?)
// entry point's config record (spec.md §6).
type Config struct {
	BaseFontSize float64
	MaxDepth     int
	Shaper       shaper.TextShaper
	Provider     content.Provider
	Intrinsics   intrinsic.Map

	// shapedCache holds the one-per-node Shape result computed as soon as
	// a text node's final max-width is known (spec.md §4.4: "the solver
	// calls it exactly once per text node"), keyed by element.Node.ID, so
	// the final recursion step that populates layouttree.Node.TextLines
	// never reshapes. Lives only for the duration of one Layout call.
	shapedCache map[int]shaper.Shaped
}

// DepthExceededError is the fatal "recursion depth exceeded" input error
// spec.md §7 names explicitly.
type DepthExceededError struct {
	MaxDepth int
}

func (e *DepthExceededError) Error() string {
	return "layout recursion exceeded max depth"
}

// flexItem is the solver's working record for one flow child during a
// single container's resolution. Main/cross terminology follows spec.md's
// GLOSSARY: main is horizontal for row containers, vertical for column.
type flexItem struct {
	node        *element.Node
	sourceIndex int

	// mainSize/crossSize are border-box dimensions (content + padding +
	// border), excluding margin; they start at the hypothetical size
	// (§4.3.3) and mainSize is mutated by the freeze algorithm (§4.3.5).
	mainSize  float64
	crossSize float64

	minMain, maxMain   float64
	minCross, maxCross float64

	grow         float64
	shrink       float64
	scaledShrink float64
	frozen       bool

	marginMainStart, marginMainEnd     float64
	marginMainStartAuto, marginMainEndAuto bool
	marginCrossStart, marginCrossEnd       float64
	marginCrossStartAuto, marginCrossEndAuto bool

	explicitCrossSet bool
	explicitMainSet  bool
	aspectRatio      *float64

	// mainOffset/crossOffset are the item's border-box origin relative to
	// the container's content box, filled in by placement (§4.3.7, §4.3.8).
	mainOffset, crossOffset float64

	alignSelf element.Align
}

func (it *flexItem) outerMain() float64 {
	return it.mainSize + it.marginMainStart + it.marginMainEnd
}

// line is one flex line (§4.3.4): a contiguous run of items sharing the
// container's main axis.
type line struct {
	items          []*flexItem
	crossSize      float64
	crossOffset    float64
	hasAutoMargins bool
}

package flexlayout

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/intrinsic"
	"github.com/brambleworks/flexlayout/layouttree"
	"github.com/brambleworks/flexlayout/shaper"
)

// Type aliases for public API.
//
// These aliases re-export types from internal packages to present a
// unified, concise public interface under the flexlayout namespace.
type (
	Node     = element.Node
	Attrs    = element.Attrs
	Canvas   = element.Canvas
	Template = element.Template

	IntrinsicSize = intrinsic.Size
	IntrinsicMap  = intrinsic.Map

	LayoutNode = layouttree.Node

	TextShaper    = shaper.TextShaper
	DefaultShaper = shaper.DefaultShaper
)

// Constructors re-exported for convenience.
var (
	NewDefaultShaper  = shaper.NewDefaultShaper
	NewTrueTypeShaper = shaper.NewTrueTypeShaper
)

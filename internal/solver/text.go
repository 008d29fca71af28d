package solver

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/mathutil"
	"github.com/brambleworks/flexlayout/shaper"
	"github.com/brambleworks/flexlayout/unit"
)

var fallbackShaper = shaper.NewDefaultShaper()

// shapeTextNode is the text-shaper bridge's single call site (spec.md
// §4.4): invoked exactly once per text node, at the point its final
// max-width is known. Falls back to DefaultShaper when the caller injected
// none, so intrinsic measurement (package intrinsic) and final layout
// always share one deterministic model when no shaper is configured.
func shapeTextNode(n *element.Node, fontSize, maxWidth float64, cfg *Config) (shaper.Shaped, error) {
	sh := cfg.Shaper
	if sh == nil {
		sh = fallbackShaper
	}
	opts := shaper.Options{
		LineHeightExpr: n.Text.LineHeight,
		Wrap:           n.Text.Wrap,
		WrapMode:       n.Text.WrapMode,
		WrapSymbol:     n.Text.WrapSymbol,
		MaxLines:       n.Text.MaxLines,
		OverflowMode:   n.Text.OverflowMode,
	}
	return sh.Shape(n.Text.Content, fontSize, maxWidth, opts)
}

func resolvedTextFontSize(n *element.Node, inherited float64) float64 {
	return unit.ResolveFontSize(n.Text.Size, inherited)
}

// textLineOffsets resolves text_align (spec.md §3) into a per-line x-offset
// from the content box's left edge, given each line's measured width and the
// box's content width. Start/End resolve against dir, the node's own
// resolved writing direction; Left/Right are direction-independent aliases.
func textLineOffsets(lineWidths []float64, contentWidth float64, align element.TextAlign, dir element.TextDirection) []float64 {
	offsets := make([]float64, len(lineWidths))
	left := align == element.TextAlignLeft
	right := align == element.TextAlignRight
	if align == element.TextAlignStart {
		left = dir != element.RTL
		right = !left
	}
	if align == element.TextAlignEnd {
		right = dir != element.RTL
		left = !right
	}
	for i, w := range lineWidths {
		free := contentWidth - w
		switch {
		case left:
			offsets[i] = 0
		case right:
			offsets[i] = mathutil.MaxF64(free, 0)
		case align == element.TextAlignCenter:
			offsets[i] = mathutil.MaxF64(free, 0) / 2
		default:
			offsets[i] = 0
		}
	}
	return offsets
}

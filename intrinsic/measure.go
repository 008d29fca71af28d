// Package intrinsic implements the bottom-up intrinsic-size pass spec.md
// §4.2 describes: for every element, a min/max content size computed
// without positioning, independent of any container constraint.
package intrinsic

import (
	"math"

	"github.com/brambleworks/flexlayout/content"
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/shaper"
	"github.com/brambleworks/flexlayout/unit"
)

// Size is the intrinsic min/max size of one element (spec.md §3's
// IntrinsicSize). The sizes MeasureAll stores in Map include the element's
// padding, border and margin (see AddBox).
type Size struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// AddBox returns a copy of s with the given box-model contributions added
// to every dimension, per spec.md §3 ("helpers to add padding/margin").
func (s Size) AddBox(padding, margin, border unit.Sides) Size {
	h := padding.Left + padding.Right + margin.Left + margin.Right + border.Left + border.Right
	v := padding.Top + padding.Bottom + margin.Top + margin.Bottom + border.Top + border.Bottom
	return Size{
		MinWidth:  s.MinWidth + h,
		MaxWidth:  s.MaxWidth + h,
		MinHeight: s.MinHeight + v,
		MaxHeight: s.MaxHeight + v,
	}
}

// Map is the output of MeasureAll, keyed by element.Node.ID.
type Map map[int]Size

// Config bundles the inputs the measurer needs beyond the tree itself.
type Config struct {
	BaseFontSize float64
	Shaper       shaper.TextShaper
	Provider     content.Provider
}

// MeasureAll performs the recursive post-order measurement of spec.md §4.2
// over root's subtree, returning a map from element ID to intrinsic size.
// root's own font size is cfg.BaseFontSize and descendants inherit it; a
// text node resolves its own font size from TextAttrs.Size.
func MeasureAll(root *element.Node, cfg Config) Map {
	m := make(Map)
	if root == nil {
		return m
	}
	measureNode(root, cfg.BaseFontSize, cfg, m)
	return m
}

func measureNode(n *element.Node, inheritedFontSize float64, cfg Config, out Map) Size {
	if n.IsHidden() {
		out[n.ID] = Size{}
		return Size{}
	}

	var sz Size
	switch n.Kind {
	case element.KindFlex:
		sz = measureFlexContainer(n, inheritedFontSize, cfg, out)
	case element.KindText:
		sz = measureText(n, inheritedFontSize, cfg)
	default:
		sz = measureLeaf(n, cfg)
	}

	sz = applyExplicitOverrides(n, sz, inheritedFontSize)
	sz = applyAspectRatio(n, sz)

	padding, margin, border := boxSides(n, 0, inheritedFontSize)
	final := sz.AddBox(padding, margin, border)
	out[n.ID] = final
	return final
}

// boxSides resolves padding/margin/border against basis (the containing
// block width — intrinsic measurement has no concrete container yet, so
// percentage box-model values resolve against 0, matching "no opinion"
// rather than guessing; the flex solver re-resolves these for real once a
// container width is known).
func boxSides(n *element.Node, basis, fontSize float64) (padding, margin, border unit.Sides) {
	padding = unit.ResolveBoxShorthand(n.Attrs.Padding, basis, fontSize)
	marginAuto := unit.ResolveMarginShorthand(n.Attrs.Margin, basis, fontSize)
	margin = unit.Sides{
		Top:    derefOr(marginAuto.Top, 0),
		Right:  derefOr(marginAuto.Right, 0),
		Bottom: derefOr(marginAuto.Bottom, 0),
		Left:   derefOr(marginAuto.Left, 0),
	}
	b := unit.ResolveBorder(n.Attrs.Border, n.Attrs.BorderTop, n.Attrs.BorderRight, n.Attrs.BorderBottom, n.Attrs.BorderLeft, n.Attrs.BorderWidth, n.Attrs.BorderColor, basis, fontSize)
	border = b.Widths()
	return
}

func derefOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func applyExplicitOverrides(n *element.Node, content Size, fontSize float64) Size {
	if v, ok := unit.ResolveLength(n.Attrs.Width, 0, fontSize); ok {
		content.MinWidth, content.MaxWidth = v, v
	}
	if v, ok := unit.ResolveLength(n.Attrs.Height, 0, fontSize); ok {
		content.MinHeight, content.MaxHeight = v, v
	}
	if v, ok := unit.ResolveLength(n.Attrs.MinWidth, 0, fontSize); ok {
		content.MinWidth = math.Max(content.MinWidth, v)
		content.MaxWidth = math.Max(content.MaxWidth, v)
	}
	if v, ok := unit.ResolveLength(n.Attrs.MaxWidth, 0, fontSize); ok {
		content.MaxWidth = math.Min(content.MaxWidth, v)
	}
	if v, ok := unit.ResolveLength(n.Attrs.MinHeight, 0, fontSize); ok {
		content.MinHeight = math.Max(content.MinHeight, v)
		content.MaxHeight = math.Max(content.MaxHeight, v)
	}
	if v, ok := unit.ResolveLength(n.Attrs.MaxHeight, 0, fontSize); ok {
		content.MaxHeight = math.Min(content.MaxHeight, v)
	}
	return content
}

// applyAspectRatio derives the undefined axis from the defined one when
// exactly one of width/height is explicitly set and an aspect ratio is
// present (spec.md §4.2).
func applyAspectRatio(n *element.Node, content Size) Size {
	if n.Attrs.AspectRatio == nil {
		return content
	}
	ratio := *n.Attrs.AspectRatio
	if ratio <= 0 {
		return content
	}
	_, hasW := unit.ResolveLength(n.Attrs.Width, 0, 0)
	_, hasH := unit.ResolveLength(n.Attrs.Height, 0, 0)
	switch {
	case hasW && !hasH:
		h := content.MaxWidth / ratio
		content.MinHeight, content.MaxHeight = h, h
	case hasH && !hasW:
		w := content.MaxHeight * ratio
		content.MinWidth, content.MaxWidth = w, w
	}
	return content
}

func measureLeaf(n *element.Node, cfg Config) Size {
	var w, h float64
	if cfg.Provider != nil {
		w, h, _ = cfg.Provider.Intrinsic(n)
	}
	return Size{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

func measureText(n *element.Node, inheritedFontSize float64, cfg Config) Size {
	fontSize := unit.ResolveFontSize(n.Text.Size, inheritedFontSize)
	sh := cfg.Shaper
	if sh == nil {
		sh = defaultShaperSingleton
	}
	result, err := sh.Shape(n.Text.Content, fontSize, shaper.Unbounded, shaperOptions(n))
	if err != nil {
		return Size{}
	}
	return Size{MinWidth: result.Width, MaxWidth: result.Width, MinHeight: result.Height, MaxHeight: result.Height}
}

func shaperOptions(n *element.Node) shaper.Options {
	return shaper.Options{
		LineHeightExpr: n.Text.LineHeight,
		Wrap:           n.Text.Wrap,
		WrapMode:       n.Text.WrapMode,
		WrapSymbol:     n.Text.WrapSymbol,
		MaxLines:       n.Text.MaxLines,
		OverflowMode:   n.Text.OverflowMode,
	}
}

func measureFlexContainer(n *element.Node, inheritedFontSize float64, cfg Config, out Map) Size {
	isRow := n.Container.Direction.IsRow()

	var mainSum, crossMax float64
	visible := 0
	for _, c := range n.Children {
		if c.IsHidden() {
			out[c.ID] = Size{}
			continue
		}
		childFontSize := inheritedFontSize
		childSize := measureNode(c, childFontSize, cfg, out)
		if c.IsAbsolute() {
			// Measured and recorded for resolveAbsoluteChild's intrinsic
			// fallback (§4.3.11), but absolutes are taken out of flow and
			// don't contribute to the container's own content size.
			continue
		}
		if isRow {
			mainSum += childSize.MaxWidth
			crossMax = math.Max(crossMax, childSize.MaxHeight)
		} else {
			mainSum += childSize.MaxHeight
			crossMax = math.Max(crossMax, childSize.MaxWidth)
		}
		visible++
	}

	gap, _ := unit.ResolveLength(n.Container.Gap, 0, inheritedFontSize)
	if visible > 1 {
		mainSum += gap * float64(visible-1)
	}

	if isRow {
		return Size{MinWidth: mainSum, MaxWidth: mainSum, MinHeight: crossMax, MaxHeight: crossMax}
	}
	return Size{MinWidth: crossMax, MaxWidth: crossMax, MinHeight: mainSum, MaxHeight: mainSum}
}

var defaultShaperSingleton = shaper.NewDefaultShaper()

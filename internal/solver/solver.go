package solver

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/mathutil"
	"github.com/brambleworks/flexlayout/layouttree"
	"github.com/brambleworks/flexlayout/shaper"
	"github.com/brambleworks/flexlayout/unit"
)

// Layout is the solver's entry point: rect is the root's own border-box
// rectangle (already resolved by the caller from the canvas's fixed/auto
// sizing rule, spec.md §6), fontSize is config.base_font_size, and dir is
// the canvas's configured text direction.
func Layout(root *element.Node, rect Rect, fontSize float64, dir element.TextDirection, cfg Config) (*layouttree.Node, error) {
	cfg.shapedCache = make(map[int]shaper.Shaped)
	return layoutNode(root, rect, fontSize, dir, 0, &cfg)
}

func layoutNode(n *element.Node, rect Rect, fontSize float64, dir element.TextDirection, depth int, cfg *Config) (*layouttree.Node, error) {
	if depth > cfg.MaxDepth {
		return nil, &DepthExceededError{MaxDepth: cfg.MaxDepth}
	}

	ownDir := dir
	if n.Attrs.TextDirection != nil && *n.Attrs.TextDirection != element.DirInherit {
		ownDir = *n.Attrs.TextDirection
	}

	out := &layouttree.Node{Element: n, X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height}

	switch n.Kind {
	case element.KindFlex:
		out.Direction = n.Container.Direction
		children, err := layoutFlexChildren(n, rect, fontSize, ownDir, depth, cfg)
		if err != nil {
			return nil, err
		}
		out.Children = children
	case element.KindText:
		nodeFontSize := resolvedTextFontSize(n, fontSize)
		padding, _, border := resolveBoxModel(n, rect.Width, nodeFontSize)
		contentWidth := rect.Width - padding.Left - padding.Right - border.Left.Width - border.Right.Width
		if contentWidth < 0 {
			contentWidth = 0
		}
		shaped, cached := cfg.shapedCache[n.ID]
		if !cached {
			var err error
			shaped, err = shapeTextNode(n, nodeFontSize, contentWidth, cfg)
			if err != nil {
				return nil, err
			}
		}
		out.TextLines = shaped.Lines
		out.LineHeight = shaped.LineHeight
		out.LineOffsets = textLineOffsets(shaped.LineWidths, contentWidth, n.Text.TextAlign, ownDir)
	default:
		// Image/Qr/Barcode/Separator: the assigned rect is final, nothing
		// further to resolve.
	}

	return out, nil
}

// resolveBoxModel resolves n's padding/margin/border against basisW (the
// containing block width, used for both axes per spec.md §4.3.1) and
// fontSize.
func resolveBoxModel(n *element.Node, basisW, fontSize float64) (padding unit.Sides, margin unit.SidesAuto, border unit.Border) {
	padding = unit.ResolveBoxShorthand(n.Attrs.Padding, basisW, fontSize)
	margin = unit.ResolveMarginShorthand(n.Attrs.Margin, basisW, fontSize)
	border = unit.ResolveBorder(n.Attrs.Border, n.Attrs.BorderTop, n.Attrs.BorderRight, n.Attrs.BorderBottom, n.Attrs.BorderLeft, n.Attrs.BorderWidth, n.Attrs.BorderColor, basisW, fontSize)
	return
}

// layoutFlexChildren runs the full per-container flex pipeline (spec.md
// §4.3.1-§4.3.13) and returns the resolved layouttree.Node for every child,
// in original source order (not the order-sorted flow order used
// internally for placement).
func layoutFlexChildren(n *element.Node, rect Rect, fontSize float64, dir element.TextDirection, depth int, cfg *Config) ([]*layouttree.Node, error) {
	padding, _, border := resolveBoxModel(n, rect.Width, fontSize)
	contentX := rect.X + padding.Left + border.Left.Width
	contentY := rect.Y + padding.Top + border.Top.Width
	contentW := rect.Width - padding.Left - padding.Right - border.Left.Width - border.Right.Width
	contentH := rect.Height - padding.Top - padding.Bottom - border.Top.Width - border.Bottom.Width
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	isRow := n.Container.Direction.IsRow()
	mainLimit, crossLimit := contentW, contentH
	if !isRow {
		mainLimit, crossLimit = contentH, contentW
	}

	gap := unit.ResolveLengthOr(n.Container.Gap, mainLimit, fontSize, 0)

	flow, absolute, hidden := partitionChildren(n.Children)

	results := make(map[int]*layouttree.Node, len(n.Children))

	for _, c := range hidden {
		results[c.ID] = zeroSubtree(c, Rect{X: rect.X, Y: rect.Y})
	}

	items := make([]*flexItem, len(flow))
	for i, c := range flow {
		items[i] = buildItem(c, i, isRow, mainLimit, crossLimit, fontSize, cfg)
	}

	lines := buildLines(items, n.Container.Wrap, mainLimit, gap)

	rtl := dir == element.RTL
	reverseMain := false
	if isRow {
		reverseMain = (n.Container.Direction == element.RowReverse) != rtl
	} else {
		reverseMain = n.Container.Direction == element.ColumnReverse
	}

	for _, ln := range lines {
		freeSpace := resolveLineMain(ln, mainLimit, gap)
		if isRow {
			reconcileRowTextCrossSizes(ln, fontSize, cfg)
		}
		placeLineMain(ln, mainLimit, gap, n.Container.Justify, freeSpace, reverseMain, mainLimit)
	}

	computeLineCrossSizes(lines)
	crossGap := gap
	if n.Container.Wrap != element.NoWrap {
		distributeAlignContent(lines, crossLimit, crossGap, n.Container.AlignContent)
	} else if len(lines) == 1 {
		lines[0].crossSize = crossLimit
	}
	for _, ln := range lines {
		alignItemsInLine(ln, n.Container.Align)
	}

	if !isRow {
		for _, ln := range lines {
			reconcileColumnTextCrossSizes(ln, fontSize, cfg)
		}
	}

	if n.Container.Wrap == element.WrapReverse {
		var containerCrossFull, crossBasisOffset float64
		if isRow {
			containerCrossFull = rect.Height
			crossBasisOffset = padding.Top + border.Top.Width
		} else {
			containerCrossFull = rect.Width
			crossBasisOffset = padding.Left + border.Left.Width
		}
		for _, ln := range lines {
			mirrorWrapReverse(ln.items, ln.crossOffset, crossBasisOffset, containerCrossFull)
		}
	}

	for _, ln := range lines {
		for _, it := range ln.items {
			applyAspectRatioPostPass(it, isRow)

			var x, y, w, h float64
			if isRow {
				x = contentX + it.mainOffset
				y = contentY + ln.crossOffset + it.crossOffset
				w, h = it.mainSize, it.crossSize
			} else {
				y = contentY + it.mainOffset
				x = contentX + ln.crossOffset + it.crossOffset
				w, h = it.crossSize, it.mainSize
			}
			childRect := Rect{X: x, Y: y, Width: w, Height: h}
			childRect = applyRelativeOffset(it.node, childRect, contentW, contentH, fontSize)

			childDir := dir
			childNode, err := layoutNode(it.node, childRect, fontSize, childDir, depth+1, cfg)
			if err != nil {
				return nil, err
			}
			results[it.node.ID] = childNode
		}
	}

	contentBoxRect := Rect{X: contentX, Y: contentY, Width: contentW, Height: contentH}
	for _, c := range absolute {
		abs := resolveAbsoluteChild(c, contentBoxRect, isRow, n.Container.Justify, n.Container.Align, fontSize, cfg)
		childNode, err := layoutNode(c, abs, fontSize, dir, depth+1, cfg)
		if err != nil {
			return nil, err
		}
		results[c.ID] = childNode
	}

	out := make([]*layouttree.Node, len(n.Children))
	for i, c := range n.Children {
		out[i] = results[c.ID]
	}
	return out, nil
}

// zeroSubtree builds a layouttree.Node for a display:none element and its
// descendants, every rectangle collapsed to zero at origin (spec.md §4.3.2:
// "Hidden children receive a zero rectangle at the container's origin").
func zeroSubtree(n *element.Node, origin Rect) *layouttree.Node {
	out := &layouttree.Node{Element: n, X: origin.X, Y: origin.Y, Width: 0, Height: 0}
	if n.Kind == element.KindFlex {
		out.Direction = n.Container.Direction
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, zeroSubtree(c, origin))
	}
	return out
}

// reconcileRowTextCrossSizes re-shapes every text item in a row-direction
// line at its now-final main-axis (width) size, so the line's cross-axis
// sizing pass (§4.3.8) uses the real wrapped height instead of the
// intrinsic measurer's single-line estimate, and caches the result so the
// final recursive layoutNode call for that node never reshapes.
func reconcileRowTextCrossSizes(ln *line, fontSize float64, cfg *Config) {
	for _, it := range ln.items {
		if it.node.Kind != element.KindText {
			continue
		}
		nodeFontSize := resolvedTextFontSize(it.node, fontSize)
		padding, _, border := resolveBoxModel(it.node, it.mainSize, nodeFontSize)
		contentWidth := it.mainSize - padding.Left - padding.Right - border.Left.Width - border.Right.Width
		if contentWidth < 0 {
			contentWidth = 0
		}
		shaped, err := shapeTextNode(it.node, nodeFontSize, contentWidth, cfg)
		if err != nil {
			continue
		}
		cfg.shapedCache[it.node.ID] = shaped
		vertical := padding.Top + padding.Bottom + border.Top.Width + border.Bottom.Width
		it.crossSize = mathutil.ClampF64(shaped.Height+vertical, it.minCross, it.maxCross)
	}
}

// reconcileColumnTextCrossSizes shapes every text item in a column-
// direction line at its final cross-axis (width) size, purely to populate
// the shaped-text cache the final recursion step consumes; column main-
// axis (height) sizing already happened against the intrinsic estimate and
// is not revised here (spec.md §4.4's documented reconciliation gap, §9).
func reconcileColumnTextCrossSizes(ln *line, fontSize float64, cfg *Config) {
	for _, it := range ln.items {
		if it.node.Kind != element.KindText {
			continue
		}
		nodeFontSize := resolvedTextFontSize(it.node, fontSize)
		padding, _, border := resolveBoxModel(it.node, it.crossSize, nodeFontSize)
		contentWidth := it.crossSize - padding.Left - padding.Right - border.Left.Width - border.Right.Width
		if contentWidth < 0 {
			contentWidth = 0
		}
		shaped, err := shapeTextNode(it.node, nodeFontSize, contentWidth, cfg)
		if err != nil {
			continue
		}
		cfg.shapedCache[it.node.ID] = shaped
	}
}

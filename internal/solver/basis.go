package solver

import (
	"sort"

	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/mathutil"
	"github.com/brambleworks/flexlayout/unit"
)

// partitionChildren splits n's children into flow, absolute, and hidden
// groups per spec.md §4.3.2, sorting flow children by (order, sourceIndex).
func partitionChildren(children []*element.Node) (flow, absolute, hidden []*element.Node) {
	type ordered struct {
		n   *element.Node
		idx int
	}
	var flowOrdered []ordered
	for i, c := range children {
		switch {
		case c.IsHidden():
			hidden = append(hidden, c)
		case c.IsAbsolute():
			absolute = append(absolute, c)
		default:
			flowOrdered = append(flowOrdered, ordered{c, i})
		}
	}
	sort.SliceStable(flowOrdered, func(i, j int) bool {
		return flowOrdered[i].n.Attrs.Order < flowOrdered[j].n.Attrs.Order
	})
	for _, o := range flowOrdered {
		flow = append(flow, o.n)
	}
	return flow, absolute, hidden
}

// resolvedAlign returns the container align value to use for an item,
// applying align_self override (spec.md §4.3.8) and treating the
// container's own AlignAuto as the CSS default of stretch.
func resolvedAlign(itemAlignSelf, containerAlign element.Align) element.Align {
	a := containerAlign
	if a == element.AlignAuto {
		a = element.AlignStretch
	}
	if itemAlignSelf != element.AlignAuto {
		a = itemAlignSelf
	}
	return a
}

// buildItem constructs a flexItem from n, resolving its hypothetical main
// size (§4.3.3) and margins. contentMainBasis/contentCrossBasis are the
// container's content-box main/cross sizes, used to resolve percentage
// lengths; fontSize is inherited for em resolution.
func buildItem(n *element.Node, idx int, isRow bool, contentMainBasis, contentCrossBasis, fontSize float64, cfg *Config) *flexItem {
	it := &flexItem{node: n, sourceIndex: idx, alignSelf: n.Attrs.AlignSelf}

	mainBasisDim, crossBasisDim := contentMainBasis, contentCrossBasis
	widthExpr, heightExpr := n.Attrs.Width, n.Attrs.Height
	minWExpr, maxWExpr := n.Attrs.MinWidth, n.Attrs.MaxWidth
	minHExpr, maxHExpr := n.Attrs.MinHeight, n.Attrs.MaxHeight

	var mainExpr, crossExpr, minMainExpr, maxMainExpr, minCrossExpr, maxCrossExpr string
	if isRow {
		mainExpr, crossExpr = widthExpr, heightExpr
		minMainExpr, maxMainExpr = minWExpr, maxWExpr
		minCrossExpr, maxCrossExpr = minHExpr, maxHExpr
	} else {
		mainExpr, crossExpr = heightExpr, widthExpr
		minMainExpr, maxMainExpr = minHExpr, maxHExpr
		minCrossExpr, maxCrossExpr = minWExpr, maxWExpr
	}

	it.minMain = unit.ResolveLengthOr(minMainExpr, mainBasisDim, fontSize, 0)
	it.maxMain = unit.ResolveLengthOr(maxMainExpr, mainBasisDim, fontSize, posInf)
	it.minCross = unit.ResolveLengthOr(minCrossExpr, crossBasisDim, fontSize, 0)
	it.maxCross = unit.ResolveLengthOr(maxCrossExpr, crossBasisDim, fontSize, posInf)

	hypothetical, ok := unit.ResolveLength(n.Attrs.Basis, mainBasisDim, fontSize)
	if !ok || n.Attrs.Basis == "" {
		if v, explicit := unit.ResolveLength(mainExpr, mainBasisDim, fontSize); explicit {
			hypothetical = v
			it.explicitMainSet = true
		} else {
			hypothetical = intrinsicMainSize(n, isRow, contentMainBasis, fontSize, cfg)
		}
	} else {
		if _, explicit := unit.ResolveLength(mainExpr, mainBasisDim, fontSize); explicit {
			it.explicitMainSet = true
		}
	}
	it.mainSize = mathutil.ClampF64(hypothetical, it.minMain, it.maxMain)
	it.aspectRatio = n.Attrs.AspectRatio

	if v, explicit := unit.ResolveLength(crossExpr, crossBasisDim, fontSize); explicit {
		it.crossSize = mathutil.ClampF64(v, it.minCross, it.maxCross)
		it.explicitCrossSet = true
	} else {
		it.crossSize = mathutil.ClampF64(intrinsicCrossSize(n, isRow, contentMainBasis, fontSize, cfg), it.minCross, it.maxCross)
	}

	it.grow = n.Attrs.Grow
	it.shrink = n.Attrs.ResolvedShrink()

	margin := unit.ResolveMarginShorthand(n.Attrs.Margin, contentMainBasis, fontSize)
	if isRow {
		it.marginMainStart, it.marginMainStartAuto = derefAuto(margin.Left)
		it.marginMainEnd, it.marginMainEndAuto = derefAuto(margin.Right)
		it.marginCrossStart, it.marginCrossStartAuto = derefAuto(margin.Top)
		it.marginCrossEnd, it.marginCrossEndAuto = derefAuto(margin.Bottom)
	} else {
		it.marginMainStart, it.marginMainStartAuto = derefAuto(margin.Top)
		it.marginMainEnd, it.marginMainEndAuto = derefAuto(margin.Bottom)
		it.marginCrossStart, it.marginCrossStartAuto = derefAuto(margin.Left)
		it.marginCrossEnd, it.marginCrossEndAuto = derefAuto(margin.Right)
	}

	return it
}

func derefAuto(p *float64) (float64, bool) {
	if p == nil {
		return 0, true
	}
	return *p, false
}

// intrinsicMainSize/intrinsicCrossSize fall back to the precomputed
// intrinsic map when no explicit basis/width/height applies (§4.3.3). The
// intrinsic map's Size already folds in margin (§4.2), so it is subtracted
// back out here to keep mainSize/crossSize strictly border-box, matching
// the rest of the solver's bookkeeping (margins are tracked separately as
// flexItem.marginMainStart/End and added back by outerMain()).
func intrinsicMainSize(n *element.Node, isRow bool, basis, fontSize float64, cfg *Config) float64 {
	sz := cfg.Intrinsics[n.ID]
	margin := unit.ResolveMarginShorthand(n.Attrs.Margin, basis, fontSize)
	if isRow {
		return sz.MaxWidth - derefAutoZero(margin.Left) - derefAutoZero(margin.Right)
	}
	return sz.MaxHeight - derefAutoZero(margin.Top) - derefAutoZero(margin.Bottom)
}

func intrinsicCrossSize(n *element.Node, isRow bool, basis, fontSize float64, cfg *Config) float64 {
	sz := cfg.Intrinsics[n.ID]
	margin := unit.ResolveMarginShorthand(n.Attrs.Margin, basis, fontSize)
	if isRow {
		return sz.MaxHeight - derefAutoZero(margin.Top) - derefAutoZero(margin.Bottom)
	}
	return sz.MaxWidth - derefAutoZero(margin.Left) - derefAutoZero(margin.Right)
}

func derefAutoZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

const posInf = 1e18

// buildLines partitions items into flex lines per spec.md §4.3.4.
// no_wrap always yields a single line; otherwise a new line opens whenever
// the next item's outer main size (plus the gap before it) would overflow
// the remaining main-axis space.
func buildLines(items []*flexItem, wrap element.Wrap, mainLimit, gap float64) []*line {
	if wrap == element.NoWrap || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return []*line{{items: items}}
	}

	var lines []*line
	var current []*flexItem
	used := 0.0
	for _, it := range items {
		outer := it.outerMain()
		g := 0.0
		if len(current) > 0 {
			g = gap
		}
		if len(current) > 0 && used+g+outer > mainLimit {
			lines = append(lines, &line{items: current})
			current = nil
			used = 0
			g = 0
		}
		current = append(current, it)
		used += g + outer
	}
	if len(current) > 0 {
		lines = append(lines, &line{items: current})
	}
	return lines
}

package solver

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/mathutil"
)

// computeLineCrossSizes sets each line's raw cross size: the max outer
// cross size (item cross size + cross margins) over its items (§4.3.8,
// first paragraph). Stretch items contribute their pre-stretch natural
// cross size here; they are expanded to the line's final size afterward.
func computeLineCrossSizes(lines []*line) {
	for _, ln := range lines {
		max := 0.0
		for _, it := range ln.items {
			outer := it.crossSize + it.marginCrossStart + it.marginCrossEnd
			max = mathutil.MaxF64(max, outer)
		}
		ln.crossSize = max
	}
}

// distributeAlignContent implements spec.md §4.3.9: positions each line
// along the cross axis and, for align_content=stretch, grows every line's
// cross size to absorb its share of the container's remaining cross free
// space.
func distributeAlignContent(lines []*line, containerCross, gap float64, alignContent element.AlignContent) {
	n := len(lines)
	if n == 0 {
		return
	}
	sumCross := 0.0
	for _, ln := range lines {
		sumCross += ln.crossSize
	}
	gapTotal := 0.0
	if n > 1 {
		gapTotal = gap * float64(n-1)
	}
	crossFree := containerCross - sumCross - gapTotal

	effective := alignContent
	if crossFree < 0 {
		switch effective {
		case element.AlignContentSpaceBetween, element.AlignContentSpaceAround, element.AlignContentSpaceEvenly:
			effective = element.AlignContentStart
		}
	}

	if effective == element.AlignContentStretch && n > 0 {
		extra := crossFree / float64(n)
		for _, ln := range lines {
			ln.crossSize += extra
		}
		crossFree = 0
	}

	leading, between := 0.0, gap
	switch effective {
	case element.AlignContentStart, element.AlignContentStretch:
	case element.AlignContentCenter:
		leading = crossFree / 2
	case element.AlignContentEnd:
		leading = crossFree
	case element.AlignContentSpaceBetween:
		if n >= 2 {
			between = gap + crossFree/float64(n-1)
		}
	case element.AlignContentSpaceAround:
		slot := crossFree / float64(n)
		leading = slot / 2
		between = gap + slot
	case element.AlignContentSpaceEvenly:
		slot := crossFree / float64(n+1)
		leading = slot
		between = gap + slot
	}

	offset := leading
	for _, ln := range lines {
		ln.crossOffset = offset
		offset += ln.crossSize + between
	}
}

// alignItemsInLine resolves each item's final cross size and line-relative
// cross offset (§4.3.8), applying align_self/container-align, stretch,
// and cross-axis auto margins.
func alignItemsInLine(ln *line, containerAlign element.Align) {
	for _, it := range ln.items {
		align := resolvedAlign(it.alignSelf, containerAlign)

		availableSpace := ln.crossSize - it.crossSize - it.marginCrossStart - it.marginCrossEnd

		switch {
		case it.marginCrossStartAuto && it.marginCrossEndAuto:
			it.marginCrossStart = mathutil.MaxF64(availableSpace, 0) / 2
			it.marginCrossEnd = it.marginCrossStart
		case it.marginCrossStartAuto:
			it.marginCrossStart = mathutil.MaxF64(availableSpace, 0)
		case it.marginCrossEndAuto:
			it.marginCrossEnd = mathutil.MaxF64(availableSpace, 0)
		default:
			if align == element.AlignStretch && !it.explicitCrossSet {
				it.crossSize = mathutil.ClampF64(ln.crossSize-it.marginCrossStart-it.marginCrossEnd, it.minCross, it.maxCross)
			}
		}

		space := ln.crossSize - it.crossSize - it.marginCrossStart - it.marginCrossEnd
		switch align {
		case element.AlignCenter:
			it.crossOffset = it.marginCrossStart + space/2
		case element.AlignEnd:
			it.crossOffset = it.marginCrossStart + space
		default: // Start, Stretch, Baseline (treated as start, spec.md §9)
			it.crossOffset = it.marginCrossStart
		}
		if it.marginCrossStartAuto || it.marginCrossEndAuto {
			it.crossOffset = it.marginCrossStart
		}
	}
}

// mirrorWrapReverse applies spec.md §4.3.9's wrap_reverse rule: every
// item's cross coordinate mirrors against the full container cross
// dimension (not the content cross size), after normal placement.
// lineCrossOffset and crossBasisOffset translate each item's
// line-relative crossOffset into the container-box-relative coordinate
// the spec's new_cross formula mirrors against (padding/border before the
// content box, plus the item's line's own offset within it); the result
// is translated back into a line-relative crossOffset so the caller's
// existing contentY/X + ln.crossOffset + it.crossOffset assembly needs no
// further changes.
func mirrorWrapReverse(items []*flexItem, lineCrossOffset, crossBasisOffset, containerCrossFull float64) {
	for _, it := range items {
		absStart := crossBasisOffset + lineCrossOffset + it.crossOffset
		absEnd := absStart + it.crossSize
		mirroredStart := containerCrossFull - absEnd
		it.crossOffset = mirroredStart - crossBasisOffset - lineCrossOffset
	}
}

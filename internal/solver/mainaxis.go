package solver

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/mathutil"
)

// resolveLineMain runs the iterative freeze algorithm (§4.3.5), then
// distributes remaining free space to auto margins (§4.3.6), and returns
// the line's final free space (after auto-margin consumption) for the
// caller to feed into justify-content placement.
func resolveLineMain(ln *line, lineMain, gap float64) float64 {
	n := len(ln.items)
	sumOuter := 0.0
	for _, it := range ln.items {
		sumOuter += it.outerMain()
	}
	gapTotal := 0.0
	if n > 1 {
		gapTotal = gap * float64(n-1)
	}
	freeSpace := lineMain - sumOuter - gapTotal

	for _, it := range ln.items {
		it.frozen = false
		it.scaledShrink = it.shrink * it.mainSize
	}

	for {
		var unfrozen []*flexItem
		for _, it := range ln.items {
			if !it.frozen {
				unfrozen = append(unfrozen, it)
			}
		}
		if len(unfrozen) == 0 || freeSpace == 0 {
			break
		}

		var weights []float64
		growing := freeSpace > 0
		for _, it := range unfrozen {
			if growing {
				weights = append(weights, it.grow)
			} else {
				weights = append(weights, it.scaledShrink)
			}
		}

		sumWeights := 0.0
		for _, w := range weights {
			sumWeights += w
		}
		if sumWeights <= 0 {
			for _, it := range unfrozen {
				it.frozen = true
			}
			break
		}

		denom := sumWeights
		if growing && denom < 1 {
			// CSS factor flooring (spec.md §9): a grow-factor sum below 1
			// never over-distributes free space.
			denom = 1
		}
		share := make([]float64, len(unfrozen))
		for i, w := range weights {
			if growing {
				share[i] = freeSpace * (w / denom)
			} else {
				share[i] = freeSpace * (w / sumWeights)
			}
		}

		anyClamped := false
		for i, it := range unfrozen {
			proposed := it.mainSize + share[i]
			clamped := mathutil.ClampF64(proposed, it.minMain, it.maxMain)
			clamped = mathutil.MaxF64(clamped, 0)
			if clamped != proposed {
				delta := clamped - it.mainSize
				freeSpace -= delta
				it.mainSize = clamped
				it.frozen = true
				anyClamped = true
			}
		}
		if !anyClamped {
			for i, it := range unfrozen {
				it.mainSize += share[i]
				freeSpace -= share[i]
				it.frozen = true
			}
			break
		}
	}

	return applyAutoMargins(ln, freeSpace)
}

// applyAutoMargins implements spec.md §4.3.6: remaining free space is
// distributed equally among items with auto main-axis margins, forcing
// justify to start. A negative remainder sets all auto margins to 0.
func applyAutoMargins(ln *line, freeSpace float64) float64 {
	var autoSlots int
	for _, it := range ln.items {
		if it.marginMainStartAuto {
			autoSlots++
		}
		if it.marginMainEndAuto {
			autoSlots++
		}
	}
	if autoSlots == 0 {
		return freeSpace
	}
	each := 0.0
	if freeSpace > 0 {
		each = freeSpace / float64(autoSlots)
	}
	for _, it := range ln.items {
		if it.marginMainStartAuto {
			it.marginMainStart = each
		}
		if it.marginMainEndAuto {
			it.marginMainEnd = each
		}
	}
	ln.hasAutoMargins = true
	if freeSpace > 0 {
		return 0
	}
	return freeSpace
}

// placeLineMain assigns each item's mainOffset (relative to the content
// box start) per spec.md §4.3.7, honoring justify-content and mirroring
// for row_reverse / RTL-row containers.
func placeLineMain(ln *line, lineMain, gap float64, justify element.Justify, freeSpace float64, reverseMain bool, contentMainSize float64) {
	n := len(ln.items)
	if ln.hasAutoMargins {
		justify = element.JustifyStart
	}

	leading, between := 0.0, gap
	if freeSpace < 0 {
		switch justify {
		case element.JustifySpaceBetween, element.JustifySpaceAround, element.JustifySpaceEvenly:
			justify = element.JustifyStart
		}
	}

	switch justify {
	case element.JustifyStart:
		// leading = 0, between = gap
	case element.JustifyCenter:
		leading = freeSpace / 2
	case element.JustifyEnd:
		leading = freeSpace
	case element.JustifySpaceBetween:
		if n >= 2 {
			between = gap + freeSpace/float64(n-1)
		}
	case element.JustifySpaceAround:
		if n >= 1 {
			slot := freeSpace / float64(n)
			leading = slot / 2
			between = gap + slot
		}
	case element.JustifySpaceEvenly:
		slot := freeSpace / float64(n+1)
		leading = slot
		between = gap + slot
	}

	offset := leading
	for i, it := range ln.items {
		offset += it.marginMainStart
		it.mainOffset = offset
		offset += it.mainSize + it.marginMainEnd
		if i < n-1 {
			offset += between
		}
	}

	if reverseMain {
		for _, it := range ln.items {
			mainEnd := it.mainOffset + it.mainSize
			it.mainOffset = contentMainSize - mainEnd
		}
	}
}

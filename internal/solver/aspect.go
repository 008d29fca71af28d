package solver

import "github.com/brambleworks/flexlayout/internal/mathutil"

// applyAspectRatioPostPass implements spec.md §4.3.12: after flex grow/
// shrink, if an item carries an aspect ratio and exactly one of its width/
// height was explicitly set by the caller (not merely resolved by flex),
// the other axis is recomputed from it. Neither axis explicit leaves the
// ratio unapplied.
func applyAspectRatioPostPass(it *flexItem, isRow bool) {
	if it.aspectRatio == nil || *it.aspectRatio <= 0 {
		return
	}
	ratio := *it.aspectRatio

	widthExplicit, heightExplicit := it.explicitMainSet, it.explicitCrossSet
	if !isRow {
		widthExplicit, heightExplicit = it.explicitCrossSet, it.explicitMainSet
	}
	if widthExplicit == heightExplicit {
		return
	}

	width, height := it.mainSize, it.crossSize
	if !isRow {
		width, height = it.crossSize, it.mainSize
	}

	if widthExplicit {
		height = width / ratio
	} else {
		width = height * ratio
	}

	if isRow {
		it.mainSize = mathutil.ClampF64(width, it.minMain, it.maxMain)
		it.crossSize = mathutil.ClampF64(height, it.minCross, it.maxCross)
	} else {
		it.crossSize = mathutil.ClampF64(width, it.minCross, it.maxCross)
		it.mainSize = mathutil.ClampF64(height, it.minMain, it.maxMain)
	}
}

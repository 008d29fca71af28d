package solver

import (
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/unit"
)

// resolveAbsoluteChild implements spec.md §4.3.11: size resolution (explicit
// > inset-derived > intrinsic fallback), the aspect-ratio tie-in, and
// positioning from whichever insets are defined, falling back to the
// container's justify/align outcome when none are. contentBox is the
// containing block (the container's content box, per spec.md scenario 5:
// insets resolve against padding and border both subtracted out); isRow and
// justify/align are the container's own flow settings used only for the
// no-inset fallback.
func resolveAbsoluteChild(n *element.Node, contentBox Rect, isRow bool, justify element.Justify, align element.Align, fontSize float64, cfg *Config) Rect {
	marginBox := unit.ResolveMarginShorthand(n.Attrs.Margin, contentBox.Width, fontSize)
	marginLeft := derefOrZero(marginBox.Left)
	marginRight := derefOrZero(marginBox.Right)
	marginTop := derefOrZero(marginBox.Top)
	marginBottom := derefOrZero(marginBox.Bottom)

	leftV, hasLeft := unit.ResolveLength(n.Attrs.Left, contentBox.Width, fontSize)
	rightV, hasRight := unit.ResolveLength(n.Attrs.Right, contentBox.Width, fontSize)
	topV, hasTop := unit.ResolveLength(n.Attrs.Top, contentBox.Height, fontSize)
	bottomV, hasBottom := unit.ResolveLength(n.Attrs.Bottom, contentBox.Height, fontSize)

	width, widthExplicit := unit.ResolveLength(n.Attrs.Width, contentBox.Width, fontSize)
	height, heightExplicit := unit.ResolveLength(n.Attrs.Height, contentBox.Height, fontSize)

	intrinsicSz := cfg.Intrinsics[n.ID]
	if !widthExplicit {
		switch {
		case hasLeft && hasRight:
			width = contentBox.Width - leftV - rightV - marginLeft - marginRight
		default:
			width = intrinsicSz.MaxWidth
		}
	}
	if !heightExplicit {
		switch {
		case hasTop && hasBottom:
			height = contentBox.Height - topV - bottomV - marginTop - marginBottom
		default:
			height = intrinsicSz.MaxHeight
		}
	}

	if n.Attrs.AspectRatio != nil && *n.Attrs.AspectRatio > 0 {
		ratio := *n.Attrs.AspectRatio
		if widthExplicit && !heightExplicit {
			height = width / ratio
		} else if heightExplicit && !widthExplicit {
			width = height * ratio
		}
	}

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	var x, y float64
	switch {
	case hasLeft:
		x = contentBox.X + leftV + marginLeft
	case hasRight:
		x = contentBox.X + contentBox.Width - rightV - marginRight - width
	default:
		free := contentBox.Width - width
		if isRow {
			x = contentBox.X + fallbackMainOffset(justify, free)
		} else {
			x = contentBox.X + fallbackCrossOffset(align, free)
		}
	}
	switch {
	case hasTop:
		y = contentBox.Y + topV + marginTop
	case hasBottom:
		y = contentBox.Y + contentBox.Height - bottomV - marginBottom - height
	default:
		free := contentBox.Height - height
		if isRow {
			y = contentBox.Y + fallbackCrossOffset(align, free)
		} else {
			y = contentBox.Y + fallbackMainOffset(justify, free)
		}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

func derefOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// fallbackMainOffset approximates the container's justify-content outcome
// for a single isolated absolute item with no main-axis insets; the
// space-* variants collapse to start since there is no second item to
// space against.
func fallbackMainOffset(justify element.Justify, free float64) float64 {
	switch justify {
	case element.JustifyCenter:
		return free / 2
	case element.JustifyEnd:
		return free
	default:
		return 0
	}
}

func fallbackCrossOffset(align element.Align, free float64) float64 {
	switch align {
	case element.AlignCenter:
		return free / 2
	case element.AlignEnd:
		return free
	default:
		return 0
	}
}

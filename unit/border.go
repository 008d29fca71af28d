package unit

import (
	"strconv"
	"strings"

	"github.com/brambleworks/flexlayout/internal/colorparse"
	"github.com/brambleworks/flexlayout/element"
)

// BorderSide is one resolved edge of a border box.
type BorderSide struct {
	Width float64
	Style element.BorderStyle
	Color colorparse.Color
}

// Border is all four resolved border edges.
type Border struct {
	Top, Right, Bottom, Left BorderSide
}

// Widths returns the four edge widths as Sides, for callers that only
// need the box-model contribution and not style/color.
func (b Border) Widths() Sides {
	return Sides{Top: b.Top.Width, Right: b.Right.Width, Bottom: b.Bottom.Width, Left: b.Left.Width}
}

func parseBorderStyle(s string) element.BorderStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dashed":
		return element.BorderDashed
	case "dotted":
		return element.BorderDotted
	case "none":
		return element.BorderNone
	default:
		return element.BorderSolid
	}
}

// parseBorderShorthand parses a whitespace-separated "<width> <style>
// <color>" shorthand (spec.md §4.1). Omitted style defaults to solid,
// omitted color to #000000. Tokens may appear in any order as long as the
// width is numeric/unit-like and the color starts with '#'; anything else
// is treated as the style keyword. This mirrors typical CSS shorthand
// parsers (order-independent, type-sniffed tokens).
func parseBorderShorthand(expr string, basis, fontSize float64) BorderSide {
	side := BorderSide{Width: 0, Style: element.BorderSolid, Color: colorparse.Black}
	tokens := strings.Fields(expr)
	sawWidth := false
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "#"):
			side.Color = colorparse.Resolve(tok, colorparse.Black)
		case looksLikeLength(tok):
			if v, ok := ResolveLength(tok, basis, fontSize); ok {
				side.Width = v
				sawWidth = true
			}
		default:
			side.Style = parseBorderStyle(tok)
		}
	}
	_ = sawWidth
	return side
}

func looksLikeLength(tok string) bool {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(tok, "px"), "%")
	trimmed = strings.TrimSuffix(trimmed, "em")
	_, err := strconv.ParseFloat(trimmed, 64)
	return err == nil
}

// ResolveBorder resolves the full border attribute surface for one
// element: the shorthand, per-side overrides (which defeat the shorthand
// on that side), and finally the per-property overrides (border_width,
// border_color), which apply to all sides last (spec.md §4.1).
func ResolveBorder(shorthand, top, right, bottom, left, widthOverride, colorOverride string, basis, fontSize float64) Border {
	base := parseBorderShorthand(shorthand, basis, fontSize)

	resolveSide := func(override string) BorderSide {
		if strings.TrimSpace(override) == "" {
			return base
		}
		return parseBorderShorthand(override, basis, fontSize)
	}

	b := Border{
		Top:    resolveSide(top),
		Right:  resolveSide(right),
		Bottom: resolveSide(bottom),
		Left:   resolveSide(left),
	}

	if strings.TrimSpace(widthOverride) != "" {
		if v, ok := ResolveLength(widthOverride, basis, fontSize); ok {
			b.Top.Width, b.Right.Width, b.Bottom.Width, b.Left.Width = v, v, v, v
		}
	}
	if strings.TrimSpace(colorOverride) != "" {
		c := colorparse.Resolve(colorOverride, colorparse.Black)
		b.Top.Color, b.Right.Color, b.Bottom.Color, b.Left.Color = c, c, c, c
	}
	return b
}

package unit

import "strings"

// Sides holds four resolved values in CSS shorthand order: top, right,
// bottom, left.
type Sides struct {
	Top, Right, Bottom, Left float64
}

// SidesAuto is Sides but any side may be unresolved ("auto"), used for
// margin per spec.md §3 ("margin sides additionally admit the sentinel
// auto").
type SidesAuto struct {
	Top, Right, Bottom, Left *float64
}

// Side returns the named side (0=Top,1=Right,2=Bottom,3=Left); nil means
// that side is auto.
func (s SidesAuto) Side(i int) *float64 {
	switch i {
	case 0:
		return s.Top
	case 1:
		return s.Right
	case 2:
		return s.Bottom
	default:
		return s.Left
	}
}

// expandShorthand applies the CSS 1/2/3/4-value expansion rule (spec.md
// §4.1) to a slice of already-split tokens, returning the four sides in
// top/right/bottom/left order. Fewer than 1 or more than 4 tokens is
// treated as "all zero" (malformed shorthand recovers to the default of
// zero on every side).
func expandShorthand(tokens []string) (top, right, bottom, left string) {
	switch len(tokens) {
	case 1:
		return tokens[0], tokens[0], tokens[0], tokens[0]
	case 2:
		return tokens[0], tokens[1], tokens[0], tokens[1]
	case 3:
		return tokens[0], tokens[1], tokens[2], tokens[1]
	case 4:
		return tokens[0], tokens[1], tokens[2], tokens[3]
	default:
		return "", "", "", ""
	}
}

// ResolveBoxShorthand resolves a padding- or border-width-style shorthand
// string into four sides. basis is the percentage basis (spec.md §4.3.1:
// percentage padding resolves against the containing block's width for
// both axes, so callers pass the content-box width here regardless of
// side). Unresolvable tokens (auto, malformed) recover to 0, since padding
// and border-width never admit auto.
func ResolveBoxShorthand(expr string, basis, fontSize float64) Sides {
	tokens := strings.Fields(expr)
	t, r, b, l := expandShorthand(tokens)
	return Sides{
		Top:    ResolveLengthOr(t, basis, fontSize, 0),
		Right:  ResolveLengthOr(r, basis, fontSize, 0),
		Bottom: ResolveLengthOr(b, basis, fontSize, 0),
		Left:   ResolveLengthOr(l, basis, fontSize, 0),
	}
}

// ResolveMarginShorthand resolves a margin shorthand string, preserving
// "auto" per side as an unresolved value rather than collapsing it to 0.
// Unset or malformed sides resolve to 0, not auto.
func ResolveMarginShorthand(expr string, basis, fontSize float64) SidesAuto {
	tokens := strings.Fields(expr)
	t, r, b, l := expandShorthand(tokens)
	resolve := func(s string) *float64 {
		if strings.TrimSpace(s) == "auto" {
			return nil
		}
		v := ResolveLengthOr(s, basis, fontSize, 0)
		return &v
	}
	return SidesAuto{Top: resolve(t), Right: resolve(r), Bottom: resolve(b), Left: resolve(l)}
}

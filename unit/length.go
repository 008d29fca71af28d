// Package unit implements the pure (string, context) -> float64 resolution
// functions spec.md §4.1 describes: plain lengths, percentages, em units,
// the auto sentinel, and the 1/2/3/4-value shorthand grammar shared by
// padding, margin, and border-width.
//
// Every function here is pure and total: a malformed unit string never
// panics or returns an error. auto resolves to (0, false); anything else
// unparseable resolves to the documented default for that caller
// (spec.md §7 — "malformed unit string" is a recovered error class).
package unit

import (
	"strconv"
	"strings"
)

// Context carries the values unit expressions resolve against: the basis
// for percentages (parent content-box width for horizontal properties,
// height for vertical ones — the caller picks which), and the inherited
// font size for em resolution.
type Context struct {
	Basis    float64
	FontSize float64
}

// ResolveLength evaluates a single unit expression against basis and
// fontSize. It returns (value, true) for a concrete length, or (0, false)
// when expr is empty or the literal "auto" — the caller decides what auto
// means (often "use intrinsic size").
//
// Grammar (spec.md §4.1):
//   - "" or "auto"   -> no value
//   - "Npx" or "N"   -> N pixels
//   - "N%"           -> N/100 * basis
//   - "Nem"          -> N * fontSize
func ResolveLength(expr string, basis, fontSize float64) (float64, bool) {
	s := strings.TrimSpace(expr)
	if s == "" || s == "auto" {
		return 0, false
	}

	if strings.HasSuffix(s, "%") {
		n, ok := parseFloat(strings.TrimSuffix(s, "%"))
		if !ok {
			return 0, false
		}
		return n / 100 * basis, true
	}
	if strings.HasSuffix(s, "em") {
		n, ok := parseFloat(strings.TrimSuffix(s, "em"))
		if !ok {
			return 0, false
		}
		return n * fontSize, true
	}
	if strings.HasSuffix(s, "px") {
		n, ok := parseFloat(strings.TrimSuffix(s, "px"))
		if !ok {
			return 0, false
		}
		return n, true
	}
	// Bare number: plain pixels.
	if n, ok := parseFloat(s); ok {
		return n, true
	}
	// Unrecognized unit string: recovered as "no value" per spec.md §7.
	return 0, false
}

// ResolveLengthOr is ResolveLength with a fallback applied when the
// expression has no value (auto, empty, or malformed).
func ResolveLengthOr(expr string, basis, fontSize, fallback float64) float64 {
	if v, ok := ResolveLength(expr, basis, fontSize); ok {
		return v
	}
	return fallback
}

// ResolveFontSize evaluates a font-size expression. em/% resolve against
// the inherited base font size; a bare/px value is absolute pixels.
// Invalid, empty, or "auto" input inherits the parent's font size
// (spec.md §4.1).
func ResolveFontSize(expr string, inherited float64) float64 {
	s := strings.TrimSpace(expr)
	if s == "" || s == "auto" {
		return inherited
	}
	if strings.HasSuffix(s, "%") {
		n, ok := parseFloat(strings.TrimSuffix(s, "%"))
		if !ok {
			return inherited
		}
		return n / 100 * inherited
	}
	if strings.HasSuffix(s, "em") {
		n, ok := parseFloat(strings.TrimSuffix(s, "em"))
		if !ok {
			return inherited
		}
		return n * inherited
	}
	v, ok := ResolveLength(s, 0, inherited)
	if !ok {
		return inherited
	}
	return v
}

// ResolveLineHeight evaluates a line-height expression. A bare number is a
// multiplier of fontSize; otherwise it is a length resolved with fontSize
// as both the em size and the percentage basis ("150%" is 1.5 * fontSize).
// Negative results clamp to 0.
func ResolveLineHeight(expr string, fontSize float64) float64 {
	s := strings.TrimSpace(expr)
	if s == "" {
		return fontSize * 1.2 // deterministic default multiplier
	}
	if n, ok := parseFloat(s); ok && !strings.ContainsAny(s, "%pxem") {
		v := n * fontSize
		if v < 0 {
			return 0
		}
		return v
	}
	v, ok := ResolveLength(s, fontSize, fontSize)
	if !ok {
		return fontSize * 1.2
	}
	if v < 0 {
		return 0
	}
	return v
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

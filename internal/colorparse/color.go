// Package colorparse resolves the CSS-like color strings that appear on
// border.color and canvas.background into an RGBA value. Layout never
// paints pixels, but it carries these colors through to the output tree so
// the (out-of-scope) rasterizer can consume them without reparsing.
package colorparse

import (
	"fmt"
	"strings"
)

// Color is a simple 8-bit per channel RGBA color, adapted from the
// teacher's patterns.Color — trimmed to the hex parsing this module needs
// and shorn of the gradient/blend-mode machinery that only the (out of
// scope) rasterizer cares about.
type Color struct {
	R, G, B, A uint8
}

// Black is the default border color per spec.md §4.1 ("omitted color
// defaults to #000000").
var Black = Color{A: 255}

// FromHex parses a hexadecimal color string (#RGB, #RRGGBB, or #RRGGBBAA)
// and returns a corresponding Color value. Per spec.md §7, a malformed
// color string is a recovered error: callers fall back to a documented
// default (Black for borders) rather than propagating.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("colorparse: invalid hex color %q: %w", hex, err)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("colorparse: invalid hex color %q: %w", hex, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("colorparse: invalid hex color %q: %w", hex, err)
		}
	default:
		return Color{}, fmt.Errorf("colorparse: invalid hex color format: %q", hex)
	}
	return Color{R: r, G: g, B: b, A: a}, nil
}

// Resolve parses expr, falling back to def on any parse failure or an
// empty string. It never returns an error — color resolution is always a
// recovered operation per spec.md §7.
func Resolve(expr string, def Color) Color {
	if strings.TrimSpace(expr) == "" {
		return def
	}
	c, err := FromHex(expr)
	if err != nil {
		return def
	}
	return c
}

// ToHex returns the color as a hexadecimal string in #RRGGBB or #RRGGBBAA
// format, matching the teacher's patterns.Color.ToHex.
func (c Color) ToHex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

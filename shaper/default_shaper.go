package shaper

import (
	"strings"

	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/unit"
)

// DefaultShaper is the deterministic approximate model spec.md §4.4
// requires when no shaper is injected: mono-width fontSize*0.6 per
// character, line height from the resolved line_height expression,
// word-break at spaces (or grapheme-cluster break in symbol-wrap mode),
// honoring max_lines and ellipsis overflow. Word/grapheme segmentation is
// grapheme-cluster aware via uniseg, ported from the teacher's
// instructions/text_wrap.go.
type DefaultShaper struct {
	// WidthPerEm is the mono-width multiplier applied to fontSize per
	// grapheme cluster. Defaults to 0.6 (spec.md §4.4) when zero.
	WidthPerEm float64
}

// NewDefaultShaper returns a DefaultShaper using spec.md's documented
// 0.6 mono-width ratio.
func NewDefaultShaper() *DefaultShaper {
	return &DefaultShaper{WidthPerEm: 0.6}
}

func (d *DefaultShaper) charWidth(fontSize float64) float64 {
	r := d.WidthPerEm
	if r <= 0 {
		r = 0.6
	}
	return fontSize * r
}

// measure returns the mono-width pixel width of s: one charWidth per
// grapheme cluster, so multi-byte emoji/combining sequences count once.
func (d *DefaultShaper) measure(s string, fontSize float64) float64 {
	if s == "" {
		return 0
	}
	clusters, _ := splitGraphemes(s)
	return float64(len(clusters)) * d.charWidth(fontSize)
}

// Shape implements TextShaper.
func (d *DefaultShaper) Shape(content string, fontSize, maxWidth float64, opts Options) (Shaped, error) {
	lineHeight := unit.ResolveLineHeight(opts.LineHeightExpr, fontSize)

	measure := func(s string) float64 { return d.measure(s, fontSize) }

	var lines []string
	if !opts.Wrap || maxWidth <= 0 || maxWidth >= Unbounded {
		lines = strings.Split(normalizeNewlines(content), "\n")
	} else {
		lines = d.wrapAll(content, maxWidth, opts, measure)
	}

	if opts.MaxLines > 0 && len(lines) > opts.MaxLines {
		lines = lines[:opts.MaxLines]
		if opts.OverflowMode == element.TextOverflowEllipsis {
			lines = appendEllipsis(lines, maxWidth, measure)
		}
	}

	width := 0.0
	lineWidths := make([]float64, len(lines))
	for i, l := range lines {
		w := measure(l)
		lineWidths[i] = w
		if w > width {
			width = w
		}
	}
	height := float64(len(lines)) * lineHeight

	return Shaped{Lines: lines, LineWidths: lineWidths, Width: width, Height: height, LineHeight: lineHeight}, nil
}

// wrapAll wraps every paragraph (newline-separated run) of content,
// preserving blank paragraph breaks, honoring max_lines with an ellipsis
// truncation once the limit is reached while content remains. This
// orchestration mirrors the teacher's wrapTextScaled, minus the per-line
// progressive font scaling this engine does not model (one font size per
// text node).
func (d *DefaultShaper) wrapAll(content string, maxWidth float64, opts Options, measure measureFunc) []string {
	text := normalizeNewlines(content)
	paras := strings.Split(text, "\n")

	wrapSymbol := opts.WrapSymbol
	if opts.WrapMode == element.WrapBySymbol && wrapSymbol == "" {
		wrapSymbol = "-"
	}

	var out []string
	truncated := false
	appendAndMaybeTruncate := func(s string, hasMore bool) {
		if truncated {
			return
		}
		out = append(out, s)
		if opts.MaxLines > 0 && len(out) == opts.MaxLines && hasMore {
			if opts.OverflowMode == element.TextOverflowEllipsis {
				out = appendEllipsis(out, maxWidth, measure)
			}
			truncated = true
		}
	}

	for pi, p := range paras {
		if truncated {
			break
		}
		if p == "" {
			appendAndMaybeTruncate("", pi < len(paras)-1)
			continue
		}

		var sub []string
		if opts.WrapMode == element.WrapBySymbol {
			sub = wrapParagraphBySymbols(p, maxWidth, wrapSymbol, measure)
		} else {
			sub = wrapParagraphByWords(p, maxWidth, wrapSymbol, measure)
		}

		for si, s := range sub {
			if truncated {
				break
			}
			hasMore := si < len(sub)-1 || pi < len(paras)-1
			appendAndMaybeTruncate(s, hasMore)
		}
	}
	return out
}

package shaper

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// measureFunc measures the pixel width of s under whatever font model the
// caller is using. DefaultShaper passes a mono-width model; TrueTypeShaper
// passes real glyph advances — the wrap algorithm itself is agnostic.
// Callers are expected to supply their own memoized measureFunc per call
// (see newMemo) so layout stays reentrant across concurrent invocations.
type measureFunc func(s string) float64

// newMemo wraps a measureFunc with a per-call cache, matching the local
// "cache" map the teacher's wrapParaByWordsScaled builds per invocation.
func newMemo(m measureFunc) measureFunc {
	cache := make(map[string]float64)
	return func(s string) float64 {
		if s == "" {
			return 0
		}
		if w, ok := cache[s]; ok {
			return w
		}
		w := m(s)
		if w < 0 {
			w = 0
		}
		cache[s] = w
		return w
	}
}

// wrapParagraphByWords wraps a single paragraph (no embedded newlines) at
// word boundaries, splitting any overlong single word progressively by
// grapheme cluster. Ported from the teacher's wrapParaByWordsScaled,
// generalized from a per-line *render.Font to a plain measureFunc and
// shorn of per-line font-scaling (this engine has one font size per text
// node, not per-line scaling).
func wrapParagraphByWords(p string, maxWidth float64, wrapSymbol string, measure measureFunc) []string {
	measure = newMemo(measure)
	words := splitWordsPreserveNBSP(p)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	i := 0
	for i < len(words) {
		if measure(words[i]) > maxWidth {
			lines = append(lines, splitLongTokenProgressive(words[i], maxWidth, wrapSymbol, measure)...)
			i++
			continue
		}

		spaceW := measure(" ")
		rem := words[i:]
		wW := make([]float64, len(rem))
		for k := range rem {
			wW[k] = measure(rem[k])
		}
		pref := make([]float64, len(rem)+1)
		for k := 1; k <= len(rem); k++ {
			pref[k] = pref[k-1] + wW[k-1]
			if k > 1 {
				pref[k] += spaceW
			}
		}
		widthOf := func(a, b int) float64 {
			if a >= b {
				return 0
			}
			return pref[b] - pref[a]
		}

		lo, hi := 1, len(rem)
		for lo <= hi {
			mid := (lo + hi) >> 1
			if widthOf(0, mid) <= maxWidth {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		count := hi
		if count < 1 {
			count = 1
		}
		lines = append(lines, strings.Join(rem[:count], " "))
		i += count
	}
	return lines
}

// wrapParagraphBySymbols wraps a single paragraph by grapheme cluster,
// optionally inserting wrapSymbol at a break that falls inside a word.
// Ported from wrapParaBySymbolsScaled.
func wrapParagraphBySymbols(p string, maxWidth float64, wrapSymbol string, measure measureFunc) []string {
	measure = newMemo(measure)
	var lines []string

	clusters, offs := splitGraphemes(p)
	if len(clusters) == 0 {
		return []string{""}
	}

	start := 0
	for start < len(clusters) {
		lo, hi := start+1, len(clusters)
		best := start
		for lo <= hi {
			mid := (lo + hi) >> 1
			cand := p[offs[start]:offs[mid]]
			if measure(cand) <= maxWidth {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		end := best
		if end == start {
			end = start + 1
		}

		line := p[offs[start]:offs[end]]
		if end < len(clusters) && wrapSymbol != "" {
			prevLast := lastBaseRune(line)
			nextFirst := firstBaseRune(clusters[end])
			if isWordBaseRune(prevLast) && isWordBaseRune(nextFirst) {
				if measure(line+wrapSymbol) > maxWidth && end > start+1 {
					end--
					line = p[offs[start]:offs[end]]
				}
				if measure(line+wrapSymbol) <= maxWidth {
					line += wrapSymbol
				}
			}
		}
		lines = append(lines, trimRightSpacesNBSP(line))
		start = end
	}
	return lines
}

// splitLongTokenProgressive splits a single overlong token by grapheme
// cluster so each produced line fits maxWidth, inserting wrapSymbol at
// internal word-boundary breaks. Ported from splitLongTokenProgressive.
func splitLongTokenProgressive(token string, maxWidth float64, wrapSymbol string, measure measureFunc) []string {
	var out []string
	if token == "" {
		return out
	}
	clusters, offs := splitGraphemes(token)
	start := 0
	for start < len(clusters) {
		if measure(token[offs[start]:offs[start+1]]) > maxWidth {
			out = append(out, token[offs[start]:offs[start+1]])
			start++
			continue
		}
		lo, hi := start+1, len(clusters)
		best := start + 1
		for lo <= hi {
			mid := (lo + hi) >> 1
			cand := token[offs[start]:offs[mid]]
			needSuffix := mid < len(clusters)
			if needSuffix && wrapSymbol != "" {
				prevLast := lastBaseRune(cand)
				nextFirst := firstBaseRune(clusters[mid])
				if isWordBaseRune(prevLast) && isWordBaseRune(nextFirst) {
					cand += wrapSymbol
				}
			}
			if measure(cand) <= maxWidth {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		end := best
		line := token[offs[start]:offs[end]]
		if end < len(clusters) && wrapSymbol != "" {
			prevLast := lastBaseRune(line)
			nextFirst := firstBaseRune(clusters[end])
			if isWordBaseRune(prevLast) && isWordBaseRune(nextFirst) && measure(line+wrapSymbol) <= maxWidth {
				line += wrapSymbol
			}
		}
		out = append(out, line)
		start = end
	}
	return out
}

// appendEllipsis trims the final line so an ellipsis fits, removing text
// by grapheme cluster to avoid breaking composite glyphs. Ported from
// appendEllipsisGraphemes.
func appendEllipsis(lines []string, maxWidth float64, measure measureFunc) []string {
	const ellipsis = "…"
	if len(lines) == 0 {
		return lines
	}
	measure = newMemo(measure)
	lastIdx := len(lines) - 1
	last := trimRightSpacesNBSP(lines[lastIdx])

	if measure(last+ellipsis) <= maxWidth {
		lines[lastIdx] = last + ellipsis
		return lines
	}

	grs, offs := splitGraphemes(last)
	for len(grs) > 0 {
		grs = grs[:len(grs)-1]
		cut := last[:offs[len(grs)]]
		if measure(cut+ellipsis) <= maxWidth {
			lines[lastIdx] = cut + ellipsis
			return lines
		}
	}
	if measure(ellipsis) <= maxWidth {
		lines[lastIdx] = ellipsis
	}
	return lines
}

// normalizeNewlines converts CRLF and CR to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// splitGraphemes returns grapheme clusters and their string offsets.
func splitGraphemes(s string) (clusters []string, offsets []int) {
	g := uniseg.NewGraphemes(s)
	offsets = append(offsets, 0)
	for g.Next() {
		cl := g.Str()
		clusters = append(clusters, cl)
		offsets = append(offsets, offsets[len(offsets)-1]+len(cl))
	}
	return clusters, offsets
}

// splitWordsPreserveNBSP splits by ASCII space and TAB, preserving NBSP
// (U+00A0) inside tokens and collapsing runs of separators.
func splitWordsPreserveNBSP(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := -1
	for i, r := range s {
		sep := r == ' ' || r == '\t'
		if sep {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func isWordBaseRune(r rune) bool {
	if r <= 0 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func lastBaseRune(s string) rune {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[:len(s)-1]
			continue
		}
		if !(unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r)) {
			return r
		}
		s = s[:len(s)-size]
	}
	return -1
}

func firstBaseRune(s string) rune {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[size:]
			continue
		}
		if !(unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r)) {
			return r
		}
		s = s[size:]
	}
	return -1
}

func trimRightSpacesNBSP(s string) string {
	s = strings.TrimRight(s, " ")
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r == ' ' {
			s = s[:len(s)-size]
			continue
		}
		break
	}
	return s
}

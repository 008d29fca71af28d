package shaper

import (
	"strings"
	"sync"

	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/unit"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// TrueTypeShaper is an optional, real-font-backed TextShaper a caller can
// pass as Config.TextMeasurer for pixel-accurate measurement against an
// actual .ttf file, instead of DefaultShaper's mono-width approximation.
// It is the domain-stack wiring for golang/freetype + golang.org/x/image
// (SPEC_FULL.md §3), adapted from the teacher's internal/render.Font:
// same DPI/point-size model, same face-cache-by-size reuse, same
// ascent/descent-derived line height — generalized from a drawing
// primitive into a pure measurement capability (TrueTypeShaper never
// touches an image.Image).
type TrueTypeShaper struct {
	tt  *truetype.Font
	dpi float64

	mu    sync.Mutex
	faces map[float64]font.Face
}

const defaultDPI = 72

// NewTrueTypeShaper parses a TrueType font from bytes (e.g. loaded via
// go:embed by the caller — the engine itself does no file I/O, per
// spec.md §1's "CLI, configuration loading, ... file I/O" non-goal).
func NewTrueTypeShaper(fontBytes []byte) (*TrueTypeShaper, error) {
	tt, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	return &TrueTypeShaper{tt: tt, dpi: defaultDPI, faces: make(map[float64]font.Face)}, nil
}

// faceFor returns a cached font.Face for the given pixel font size,
// matching Font.Face's cache-by-size behavior.
func (s *TrueTypeShaper) faceFor(sizePt float64) font.Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[sizePt]; ok {
		return f
	}
	f := truetype.NewFace(s.tt, &truetype.Options{
		Size:    sizePt,
		DPI:     s.dpi,
		Hinting: font.HintingNone,
	})
	s.faces[sizePt] = f
	return f
}

func (s *TrueTypeShaper) lineHeightPx(fontSize float64) float64 {
	m := s.faceFor(fontSize).Metrics()
	return float64(m.Height >> 6)
}

func (s *TrueTypeShaper) measureString(fontSize float64, str string) float64 {
	if str == "" {
		return 0
	}
	adv := font.MeasureString(s.faceFor(fontSize), str)
	return float64(adv >> 6)
}

// Shape implements TextShaper using real glyph advances instead of the
// mono-width model, but otherwise follows the exact same wrap/ellipsis/
// max-lines pipeline as DefaultShaper (same wrap.go helpers), so swapping
// shapers never changes wrapping *policy*, only measurement fidelity.
func (s *TrueTypeShaper) Shape(content string, fontSize, maxWidth float64, opts Options) (Shaped, error) {
	lineHeight := unit.ResolveLineHeight(opts.LineHeightExpr, fontSize)
	if strings.TrimSpace(opts.LineHeightExpr) == "" {
		lineHeight = s.lineHeightPx(fontSize)
	}

	measure := func(str string) float64 { return s.measureString(fontSize, str) }

	var lines []string
	if !opts.Wrap || maxWidth <= 0 || maxWidth >= Unbounded {
		lines = strings.Split(normalizeNewlines(content), "\n")
	} else {
		lines = (&DefaultShaper{}).wrapAll(content, maxWidth, opts, measure)
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

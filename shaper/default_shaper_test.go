package shaper_test

import (
	"testing"

	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/shaper"
	"github.com/stretchr/testify/require"
)

func TestDefaultShaperNoWrap(t *testing.T) {
	s := shaper.NewDefaultShaper()
	out, err := s.Shape("hello world", 16, shaper.Unbounded, shaper.Options{Wrap: false})
	require.NoError(t, err)
	require.Equal(t, []string{"hello world"}, out.Lines)
	require.InDelta(t, float64(len("hello world"))*16*0.6, out.Width, 1e-6)
}

func TestDefaultShaperWrapsAtWidth(t *testing.T) {
	s := shaper.NewDefaultShaper()
	charW := 16 * 0.6
	// "aa bb cc" with a width that fits exactly two words per line.
	maxWidth := charW*5 + 1 // "aa bb" = 5 chars wide
	out, err := s.Shape("aa bb cc", 16, maxWidth, shaper.Options{Wrap: true})
	require.NoError(t, err)
	require.Equal(t, []string{"aa bb", "cc"}, out.Lines)
}

func TestDefaultShaperMaxLinesEllipsis(t *testing.T) {
	s := shaper.NewDefaultShaper()
	charW := 16 * 0.6
	out, err := s.Shape("one two three four", 16, charW*4, shaper.Options{
		Wrap:         true,
		MaxLines:     1,
		OverflowMode: element.TextOverflowEllipsis,
	})
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	require.True(t, len(out.Lines[0]) > 0)
}

func TestDefaultShaperSymbolWrap(t *testing.T) {
	s := shaper.NewDefaultShaper()
	charW := 16 * 0.6
	out, err := s.Shape("abcdefgh", 16, charW*4, shaper.Options{
		Wrap:       true,
		WrapMode:   element.WrapBySymbol,
		WrapSymbol: "-",
	})
	require.NoError(t, err)
	require.True(t, len(out.Lines) >= 2)
}

func TestDefaultShaperCrossPassConsistency(t *testing.T) {
	// Same shaper, same inputs, unconstrained width twice: must be
	// bit-identical (spec.md §5 "Ordering guarantees").
	s := shaper.NewDefaultShaper()
	a, err := s.Shape("a deterministic sentence", 18, shaper.Unbounded, shaper.Options{Wrap: true})
	require.NoError(t, err)
	b, err := s.Shape("a deterministic sentence", 18, shaper.Unbounded, shaper.Options{Wrap: true})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

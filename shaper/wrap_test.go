package shaper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func monoMeasure(charW float64) measureFunc {
	return func(s string) float64 {
		n, _ := splitGraphemes(s)
		return float64(len(n)) * charW
	}
}

func TestWrapParagraphByWordsFitsExactly(t *testing.T) {
	lines := wrapParagraphByWords("aa bb cc", 5*1+1, "", monoMeasure(1))
	require.Equal(t, []string{"aa bb", "cc"}, lines)
}

func TestWrapParagraphByWordsSingleOverlongWord(t *testing.T) {
	lines := wrapParagraphByWords("abcdefgh", 3, "", monoMeasure(1))
	require.True(t, len(lines) >= 3)
	joined := ""
	for _, l := range lines {
		joined += l
	}
	require.Equal(t, "abcdefgh", joined)
}

func TestWrapParagraphBySymbolsInsertsHyphen(t *testing.T) {
	lines := wrapParagraphBySymbols("abcdefgh", 4, "-", monoMeasure(1))
	require.True(t, len(lines) >= 2)
	require.Equal(t, []string{"abc-", "def-", "gh"}, lines)
}

func TestAppendEllipsisTrimsLastLine(t *testing.T) {
	lines := []string{"hello world"}
	out := appendEllipsis(lines, 5, monoMeasure(1))
	require.Equal(t, "hell…", out[0])
}

func TestAppendEllipsisEmptyInput(t *testing.T) {
	require.Nil(t, appendEllipsis(nil, 5, monoMeasure(1)))
}

func TestNewMemoCachesRepeatedCalls(t *testing.T) {
	calls := 0
	m := newMemo(func(s string) float64 {
		calls++
		return float64(len(s))
	})
	m("abc")
	m("abc")
	require.Equal(t, 1, calls)
}

func TestSplitWordsPreserveNBSP(t *testing.T) {
	words := splitWordsPreserveNBSP("a b c")
	require.Equal(t, []string{"a b", "c"}, words)
}

func TestNormalizeNewlines(t *testing.T) {
	require.Equal(t, "a\nb\nc", normalizeNewlines("a\r\nb\rc"))
}

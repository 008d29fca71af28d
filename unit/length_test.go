package unit_test

import (
	"testing"

	"github.com/brambleworks/flexlayout/unit"
	"github.com/stretchr/testify/require"
)

func TestResolveLength(t *testing.T) {
	cases := []struct {
		name     string
		expr     string
		basis    float64
		fontSize float64
		wantOK   bool
		want     float64
	}{
		{"px_suffix", "24px", 200, 16, true, 24},
		{"bare_number", "24", 200, 16, true, 24},
		{"percent", "50%", 200, 16, true, 100},
		{"em", "2em", 200, 16, true, 32},
		{"auto", "auto", 200, 16, false, 0},
		{"empty", "", 200, 16, false, 0},
		{"malformed", "abc", 200, 16, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := unit.ResolveLength(tc.expr, tc.basis, tc.fontSize)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

func TestResolveLengthOr(t *testing.T) {
	require.Equal(t, 10.0, unit.ResolveLengthOr("auto", 100, 16, 10))
	require.Equal(t, 50.0, unit.ResolveLengthOr("50px", 100, 16, 10))
}

func TestResolveFontSize(t *testing.T) {
	require.Equal(t, 16.0, unit.ResolveFontSize("", 16))
	require.Equal(t, 16.0, unit.ResolveFontSize("abc", 16))
	require.Equal(t, 32.0, unit.ResolveFontSize("2em", 16))
	require.Equal(t, 8.0, unit.ResolveFontSize("50%", 16))
	require.Equal(t, 20.0, unit.ResolveFontSize("20px", 16))
}

func TestResolveLineHeight(t *testing.T) {
	require.InDelta(t, 32.0, unit.ResolveLineHeight("2", 16), 1e-9)
	require.InDelta(t, 24.0, unit.ResolveLineHeight("24px", 16), 1e-9)
	require.Equal(t, 0.0, unit.ResolveLineHeight("-5px", 16))
}

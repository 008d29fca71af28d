package unit_test

import (
	"testing"

	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/colorparse"
	"github.com/brambleworks/flexlayout/unit"
	"github.com/stretchr/testify/require"
)

func TestResolveBorderShorthandDefaults(t *testing.T) {
	b := unit.ResolveBorder("2px", "", "", "", "", "", "", 100, 16)
	require.Equal(t, 2.0, b.Top.Width)
	require.Equal(t, element.BorderSolid, b.Top.Style)
	require.Equal(t, colorparse.Black, b.Top.Color)
	// applies uniformly absent per-side overrides
	require.Equal(t, b.Top, b.Right)
	require.Equal(t, b.Top, b.Bottom)
	require.Equal(t, b.Top, b.Left)
}

func TestResolveBorderPerSideOverride(t *testing.T) {
	b := unit.ResolveBorder("2px solid #ff0000", "4px dashed #00ff00", "", "", "", "", "", 100, 16)
	require.Equal(t, 4.0, b.Top.Width)
	require.Equal(t, element.BorderDashed, b.Top.Style)
	require.Equal(t, 2.0, b.Right.Width)
	require.Equal(t, element.BorderSolid, b.Right.Style)
}

func TestResolveBorderPerPropertyOverrideAppliesLast(t *testing.T) {
	b := unit.ResolveBorder("2px solid #ff0000", "4px dashed #00ff00", "", "", "", "9px", "#0000ff", 100, 16)
	require.Equal(t, 9.0, b.Top.Width)
	require.Equal(t, 9.0, b.Right.Width)
	expectedBlue := colorparse.Color{B: 255, A: 255}
	require.Equal(t, expectedBlue, b.Top.Color)
	require.Equal(t, expectedBlue, b.Left.Color)
}

package unit_test

import (
	"testing"

	"github.com/brambleworks/flexlayout/unit"
	"github.com/stretchr/testify/require"
)

func TestResolveBoxShorthand(t *testing.T) {
	t.Run("one_value", func(t *testing.T) {
		s := unit.ResolveBoxShorthand("10px", 100, 16)
		require.Equal(t, unit.Sides{Top: 10, Right: 10, Bottom: 10, Left: 10}, s)
	})
	t.Run("two_values", func(t *testing.T) {
		s := unit.ResolveBoxShorthand("10px 20px", 100, 16)
		require.Equal(t, unit.Sides{Top: 10, Right: 20, Bottom: 10, Left: 20}, s)
	})
	t.Run("three_values", func(t *testing.T) {
		s := unit.ResolveBoxShorthand("10px 20px 30px", 100, 16)
		require.Equal(t, unit.Sides{Top: 10, Right: 20, Bottom: 30, Left: 20}, s)
	})
	t.Run("four_values", func(t *testing.T) {
		s := unit.ResolveBoxShorthand("1px 2px 3px 4px", 100, 16)
		require.Equal(t, unit.Sides{Top: 1, Right: 2, Bottom: 3, Left: 4}, s)
	})
}

func TestResolveMarginShorthandAuto(t *testing.T) {
	s := unit.ResolveMarginShorthand("auto 10px", 100, 16)
	require.Nil(t, s.Top)
	require.NotNil(t, s.Right)
	require.Equal(t, 10.0, *s.Right)
	require.Nil(t, s.Bottom)
	require.NotNil(t, s.Left)
}

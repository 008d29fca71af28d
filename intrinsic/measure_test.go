package intrinsic_test

import (
	"testing"

	"github.com/brambleworks/flexlayout/content"
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/intrinsic"
	"github.com/brambleworks/flexlayout/shaper"
	"github.com/stretchr/testify/require"
)

func cfg() intrinsic.Config {
	return intrinsic.Config{
		BaseFontSize: 16,
		Shaper:       shaper.NewDefaultShaper(),
		Provider:     content.NewDefaultProvider(),
	}
}

func TestMeasureLeafExplicitSize(t *testing.T) {
	n := &element.Node{Kind: element.KindImage, Attrs: element.Attrs{Width: "100px", Height: "50px"}}
	element.AssignIDs(n, 1)
	m := intrinsic.MeasureAll(n, cfg())
	sz := m[n.ID]
	require.Equal(t, 100.0, sz.MinWidth)
	require.Equal(t, 100.0, sz.MaxWidth)
	require.Equal(t, 50.0, sz.MinHeight)
}

func TestMeasureQRDefaultSize(t *testing.T) {
	n := &element.Node{Kind: element.KindQr}
	element.AssignIDs(n, 1)
	m := intrinsic.MeasureAll(n, cfg())
	sz := m[n.ID]
	require.Equal(t, 128.0, sz.MaxWidth)
	require.Equal(t, 128.0, sz.MaxHeight)
}

func TestMeasureDisplayNoneIsZero(t *testing.T) {
	n := &element.Node{Kind: element.KindQr, Attrs: element.Attrs{Display: element.DisplayNone}}
	element.AssignIDs(n, 1)
	m := intrinsic.MeasureAll(n, cfg())
	require.Equal(t, intrinsic.Size{}, m[n.ID])
}

func TestMeasureFlexRowSumsMainAxis(t *testing.T) {
	child1 := &element.Node{Kind: element.KindQr}
	child2 := &element.Node{Kind: element.KindQr}
	root := &element.Node{
		Kind:      element.KindFlex,
		Container: element.ContainerAttrs{Direction: element.Row, Gap: "10px"},
		Children:  []*element.Node{child1, child2},
	}
	element.AssignIDs(root, 1)
	m := intrinsic.MeasureAll(root, cfg())
	sz := m[root.ID]
	require.Equal(t, 128.0+128.0+10.0, sz.MaxWidth)
	require.Equal(t, 128.0, sz.MaxHeight)
}

func TestMeasureFlexExcludesAbsoluteChildFromAggregationButStillMeasuresIt(t *testing.T) {
	flowChild := &element.Node{Kind: element.KindQr}
	absChild := &element.Node{Kind: element.KindQr, Attrs: element.Attrs{Position: element.PosAbsolute}}
	root := &element.Node{
		Kind:      element.KindFlex,
		Container: element.ContainerAttrs{Direction: element.Row},
		Children:  []*element.Node{flowChild, absChild},
	}
	element.AssignIDs(root, 1)
	m := intrinsic.MeasureAll(root, cfg())
	sz := m[root.ID]
	require.Equal(t, 128.0, sz.MaxWidth)
	// The absolute child is excluded from the container's own content
	// size, but its own intrinsic size must still be recorded so
	// resolveAbsoluteChild's intrinsic-fallback path (§4.3.11) has
	// something other than a zero Size to read.
	absSz := m[absChild.ID]
	require.Equal(t, 128.0, absSz.MaxWidth)
	require.Equal(t, 128.0, absSz.MaxHeight)
}

func TestMeasureTextUsesShaper(t *testing.T) {
	n := &element.Node{Kind: element.KindText, Text: element.TextAttrs{Content: "hi", Size: "16px"}}
	element.AssignIDs(n, 1)
	m := intrinsic.MeasureAll(n, cfg())
	sz := m[n.ID]
	require.InDelta(t, 2*16*0.6, sz.MaxWidth, 1e-6)
}

func TestMeasureAspectRatioDerivesHeight(t *testing.T) {
	ratio := 2.0
	n := &element.Node{Kind: element.KindImage, Attrs: element.Attrs{Width: "100px", AspectRatio: &ratio}}
	element.AssignIDs(n, 1)
	m := intrinsic.MeasureAll(n, cfg())
	sz := m[n.ID]
	require.Equal(t, 50.0, sz.MaxHeight)
}

func TestMeasurePaddingAddsToFinalSize(t *testing.T) {
	n := &element.Node{Kind: element.KindImage, Attrs: element.Attrs{Width: "100px", Height: "50px", Padding: "10px"}}
	element.AssignIDs(n, 1)
	m := intrinsic.MeasureAll(n, cfg())
	sz := m[n.ID]
	require.Equal(t, 120.0, sz.MaxWidth)
	require.Equal(t, 70.0, sz.MaxHeight)
}

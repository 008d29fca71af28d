package flexlayout_test

import (
	"testing"

	flexlayout "github.com/brambleworks/flexlayout"
	"github.com/brambleworks/flexlayout/element"
	"github.com/stretchr/testify/require"
)

func textNode(content string) *element.Node {
	return &element.Node{
		Kind: element.KindText,
		Text: element.TextAttrs{Content: content, Size: "16px", Wrap: false},
	}
}

func TestComputeLayoutFixedBothCanvas(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "300px", Height: "200px", Fixed: element.FixedBoth},
		Elements: []*element.Node{
			{Kind: element.KindImage, Attrs: element.Attrs{Width: "50px", Height: "50px"}},
		},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 300.0, out.Width)
	require.Equal(t, 200.0, out.Height)
	require.Len(t, out.Children, 1)
	require.Equal(t, 50.0, out.Children[0].Width)
}

func TestComputeLayoutFixedBothRequiresBothDimensions(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "300px", Fixed: element.FixedBoth},
	}
	_, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.Error(t, err)
	var layoutErr *flexlayout.LayoutError
	require.ErrorAs(t, err, &layoutErr)
	require.Equal(t, flexlayout.KindInvalidInput, layoutErr.Kind)
}

func TestComputeLayoutNegativeGrowIsFatal(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "100px", Height: "100px", Fixed: element.FixedBoth},
		Elements: []*element.Node{
			{Kind: element.KindImage, Attrs: element.Attrs{Grow: -1}},
		},
	}
	_, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.Error(t, err)
}

func TestComputeLayoutFixedNoneSizesFromContent(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Fixed: element.FixedNone},
		Elements: []*element.Node{
			{Kind: element.KindImage, Attrs: element.Attrs{Width: "40px", Height: "40px"}},
			{Kind: element.KindImage, Attrs: element.Attrs{Width: "40px", Height: "40px"}},
		},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	// Canvas's implicit container is a column, so content height sums.
	require.Equal(t, 80.0, out.Height)
	require.Equal(t, 40.0, out.Width)
}

func TestComputeLayoutCrossPassConsistency(t *testing.T) {
	// spec.md §8: intrinsic height of a single-line non-wrap text element
	// must equal the height the flex solver allocates under identical
	// inputs.
	tpl := element.Template{
		Canvas: element.Canvas{Width: "300px", Fixed: element.FixedWidth},
		Elements: []*element.Node{
			textNode("a single line of text"),
		},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	textLayout := out.Children[0]

	// Re-measure the identical node standalone for its intrinsic height.
	standalone, err := flexlayout.MeasureAllIntrinsics(textNode("a single line of text"), nil)
	require.NoError(t, err)
	var sz flexlayout.IntrinsicSize
	for _, v := range standalone {
		sz = v
	}
	require.InDelta(t, sz.MaxHeight, textLayout.Height, 1e-6)
}

func TestComputeLayoutRTLMirroring(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "300px", Height: "10px", Fixed: element.FixedBoth, TextDirection: element.RTL},
		Elements: []*element.Node{
			{
				Kind:      element.KindFlex,
				Attrs:     element.Attrs{Width: "300px", Height: "10px"},
				Container: element.ContainerAttrs{Direction: element.Row},
				Children: []*element.Node{
					{Kind: element.KindImage, Attrs: element.Attrs{Width: "60px", Height: "10px"}},
					{Kind: element.KindImage, Attrs: element.Attrs{Width: "80px", Height: "10px"}},
				},
			},
		},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	row := out.Children[0]
	// LTR positions would be 0 and 60; under RTL, child i's X equals
	// container_width - (LTR-child-X(i) + child-width(i)).
	require.InDelta(t, 300.0-(0+60.0), row.Children[0].X, 1e-6)
	require.InDelta(t, 300.0-(60.0+80.0), row.Children[1].X, 1e-6)
}

func TestComputeLayoutWrapReverseMirrorsFullContainer(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "100px", Height: "100px", Fixed: element.FixedBoth},
		Elements: []*element.Node{
			{
				Kind:      element.KindFlex,
				Attrs:     element.Attrs{Width: "100px", Height: "100px", Padding: "10px"},
				Container: element.ContainerAttrs{Direction: element.Row, Wrap: element.WrapReverse},
				Children: []*element.Node{
					{Kind: element.KindImage, Attrs: element.Attrs{Width: "60px", Height: "20px"}},
					{Kind: element.KindImage, Attrs: element.Attrs{Width: "60px", Height: "20px"}},
				},
			},
		},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	row := out.Children[0]
	require.Len(t, row.Children, 2)
	// Two lines of height 20 each wrap inside a 100px-tall, 10px-padded
	// box (80px content height); wrap_reverse mirrors against the full
	// 100px container box, so neither line may land outside [0, 100].
	for _, c := range row.Children {
		require.GreaterOrEqual(t, c.Y, 0.0)
		require.LessOrEqual(t, c.Y+c.Height, 100.0+1e-6)
	}
	// The line that would be first under normal wrap (y=10, the padding
	// edge) is now the bottommost: its bottom edge sits at the padding
	// edge from the far side (100-10=90).
	require.InDelta(t, 90.0, row.Children[0].Y+row.Children[0].Height, 1e-6)
}

func TestComputeLayoutTextAlignCenterOffsetsLine(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "200px", Height: "20px", Fixed: element.FixedBoth},
		Elements: []*element.Node{
			{
				Kind: element.KindText,
				Attrs: element.Attrs{Width: "200px", Height: "20px"},
				Text: element.TextAttrs{Content: "hi", Size: "16px", TextAlign: element.TextAlignCenter},
			},
		},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	text := out.Children[0]
	require.Len(t, text.LineOffsets, 1)
	// DefaultShaper's mono-width model: "hi" is 2 graphemes * 16*0.6 = 19.2px
	// wide, centered in a 200px box.
	require.InDelta(t, (200.0-19.2)/2, text.LineOffsets[0], 1e-6)
}

func TestComputeLayoutCanvasBackgroundResolved(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "10px", Height: "10px", Fixed: element.FixedBoth, Background: "#336699"},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, out.Background)
	require.Equal(t, "#336699", out.Background.ToHex())
}

func TestComputeLayoutCanvasBackgroundUnsetLeavesNilPointer(t *testing.T) {
	tpl := element.Template{
		Canvas: element.Canvas{Width: "10px", Height: "10px", Fixed: element.FixedBoth},
	}
	out, err := flexlayout.ComputeLayout(tpl, nil, nil)
	require.NoError(t, err)
	require.Nil(t, out.Background)
}

func TestMeasureAllIntrinsicsSecondaryEntryPoint(t *testing.T) {
	root := &element.Node{
		Kind:      element.KindFlex,
		Container: element.ContainerAttrs{Direction: element.Row, Gap: "5px"},
		Children: []*element.Node{
			{Kind: element.KindImage, Attrs: element.Attrs{Width: "20px", Height: "20px"}},
			{Kind: element.KindImage, Attrs: element.Attrs{Width: "30px", Height: "20px"}},
		},
	}
	m, err := flexlayout.MeasureAllIntrinsics(root, nil)
	require.NoError(t, err)
	require.Equal(t, 55.0, m[root.ID].MaxWidth)
}

package content_test

import (
	"testing"

	"github.com/brambleworks/flexlayout/content"
	"github.com/brambleworks/flexlayout/element"
	"github.com/stretchr/testify/require"
)

func TestDefaultProviderQR(t *testing.T) {
	p := content.NewDefaultProvider()
	w, h, ok := p.Intrinsic(&element.Node{Kind: element.KindQr})
	require.True(t, ok)
	require.Equal(t, 128.0, w)
	require.Equal(t, 128.0, h)
}

func TestDefaultProviderSeparator(t *testing.T) {
	p := content.NewDefaultProvider()

	w, h, ok := p.Intrinsic(&element.Node{Kind: element.KindSeparator, Leaf: element.LeafAttrs{Orientation: element.Horizontal}})
	require.True(t, ok)
	require.Equal(t, 0.0, w)
	require.Equal(t, 1.0, h)

	w, h, ok = p.Intrinsic(&element.Node{Kind: element.KindSeparator, Leaf: element.LeafAttrs{Orientation: element.Vertical}})
	require.True(t, ok)
	require.Equal(t, 1.0, w)
	require.Equal(t, 0.0, h)
}

func TestDefaultProviderImageNoOpinion(t *testing.T) {
	p := content.NewDefaultProvider()
	_, _, ok := p.Intrinsic(&element.Node{Kind: element.KindImage})
	require.False(t, ok)
}

// Package content abstracts the QR/barcode/image generators spec.md
// places out of scope ("Content providers ... invoked via abstract
// capabilities; their implementations are outside scope"). The engine
// only needs one thing from them: an intrinsic size to fall back on when
// an element has no explicit width/height (spec.md §4.2).
package content

import "github.com/brambleworks/flexlayout/element"

// Provider supplies the provider-declared intrinsic size for a leaf
// primitive (Image, Qr, Barcode, Separator) when the element itself has
// no explicit width/height attribute. ok=false means "no opinion"; the
// caller then falls back to 0x0.
type Provider interface {
	Intrinsic(n *element.Node) (width, height float64, ok bool)
}

// DefaultProvider implements the deterministic fallbacks spec.md §4.2
// names explicitly: a QR code is size×size, a horizontal separator is
// (0, thickness), a vertical one is (thickness, 0). Barcode and Image
// have no such rule in the spec, so DefaultProvider declares no opinion
// for them (ok=false) — a real implementation is expected to be injected.
type DefaultProvider struct {
	// DefaultQRSize is used when a Qr element has no explicit dimensions
	// and no size attribute of its own to derive one from.
	DefaultQRSize float64
	// DefaultThickness is used for Separator elements with no explicit
	// thickness.
	DefaultThickness float64
}

// NewDefaultProvider returns a DefaultProvider with the engine's
// documented defaults (a 128px square QR code, 1px separator thickness).
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{DefaultQRSize: 128, DefaultThickness: 1}
}

func (p *DefaultProvider) Intrinsic(n *element.Node) (float64, float64, bool) {
	switch n.Kind {
	case element.KindQr:
		size := p.DefaultQRSize
		if size <= 0 {
			size = 128
		}
		return size, size, true
	case element.KindSeparator:
		th := p.DefaultThickness
		if th <= 0 {
			th = 1
		}
		if n.Leaf.Orientation == element.Vertical {
			return th, 0, true
		}
		return 0, th, true
	default:
		return 0, 0, false
	}
}

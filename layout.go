// Package flexlayout is a declarative 2D layout engine: given a tree of
// box-model elements described by CSS-like attributes, it computes a final
// rectangle for every node in a single unscaled coordinate space. The two
// entry points are ComputeLayout and MeasureAllIntrinsics (spec.md §6);
// everything else (template parsing, rasterization, QR/barcode/image
// generation) is an external collaborator invoked through the abstract
// capabilities in package shaper and package content.
package flexlayout

import (
	"github.com/brambleworks/flexlayout/content"
	"github.com/brambleworks/flexlayout/element"
	"github.com/brambleworks/flexlayout/internal/colorparse"
	"github.com/brambleworks/flexlayout/internal/solver"
	"github.com/brambleworks/flexlayout/intrinsic"
	"github.com/brambleworks/flexlayout/layouttree"
	"github.com/brambleworks/flexlayout/shaper"
	"github.com/brambleworks/flexlayout/unit"
)

// Config bundles the optional tuning knobs of compute_layout (spec.md §6).
type Config struct {
	// BaseFontSize is the root inherited font size; em/% text sizing
	// resolves against it. Defaults to 16.
	BaseFontSize float64
	// MaxDepth bounds recursion; exceeding it is a fatal input error
	// (spec.md §5, §7). Defaults to 100.
	MaxDepth int
	// TextMeasurer is used when ComputeLayout's own shaper argument is
	// nil, letting callers configure it once on a reusable Config.
	TextMeasurer shaper.TextShaper
	// ContentProvider supplies intrinsic sizes for Qr/Barcode/Image/
	// Separator leaves with no explicit dimensions (package content).
	// Supplemented beyond spec.md's literal Config surface, since §4.2's
	// "provider-declared intrinsic" rule needs some injection point;
	// defaults to content.NewDefaultProvider() when nil.
	ContentProvider content.Provider
}

// DefaultConfig returns the documented defaults: base_font_size=16,
// max_depth=100, DefaultProvider, no text measurer (DefaultShaper used).
func DefaultConfig() *Config {
	return &Config{BaseFontSize: 16, MaxDepth: 100}
}

func (c *Config) orDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	if out.BaseFontSize <= 0 {
		out.BaseFontSize = 16
	}
	if out.MaxDepth <= 0 {
		out.MaxDepth = 100
	}
	return &out
}

// ComputeLayout is the engine's primary entry point (spec.md §6). sh, if
// non-nil, takes precedence over config.TextMeasurer; when both are nil the
// deterministic DefaultShaper is used. The returned tree is freshly
// allocated and owned by the caller.
func ComputeLayout(template element.Template, sh shaper.TextShaper, config *Config) (*layouttree.Node, error) {
	cfg := config.orDefaults()
	if sh == nil {
		sh = cfg.TextMeasurer
	}
	sh = effectiveShaper(sh)
	provider := cfg.ContentProvider
	if provider == nil {
		provider = content.NewDefaultProvider()
	}

	if err := validateTree(template.Elements); err != nil {
		return nil, err
	}

	root := &element.Node{
		Kind: element.KindFlex,
		Attrs: element.Attrs{
			Width:  template.Canvas.Width,
			Height: template.Canvas.Height,
		},
		Container: element.ContainerAttrs{Direction: element.Column},
		Children:  template.Elements,
	}
	element.AssignIDs(root, 1)

	dir := template.Canvas.TextDirection
	if dir == element.DirInherit {
		dir = element.LTR
	}

	im := intrinsic.MeasureAll(root, intrinsic.Config{BaseFontSize: cfg.BaseFontSize, Shaper: sh, Provider: provider})

	rect, err := resolveRootRect(template.Canvas, root, im, cfg.BaseFontSize)
	if err != nil {
		return nil, err
	}

	solverCfg := solver.Config{
		BaseFontSize: cfg.BaseFontSize,
		MaxDepth:     cfg.MaxDepth,
		Shaper:       sh,
		Provider:     provider,
		Intrinsics:   im,
	}

	out, err := solver.Layout(root, rect, cfg.BaseFontSize, dir, solverCfg)
	if err != nil {
		return nil, translateSolverError(err)
	}
	if template.Canvas.Background != "" {
		bg := colorparse.Resolve(template.Canvas.Background, colorparse.Black)
		out.Background = &bg
	}
	return out, nil
}

// MeasureAllIntrinsics is the engine's secondary entry point (spec.md §6):
// a bottom-up content-size pass usable without running a full layout.
func MeasureAllIntrinsics(root *element.Node, config *Config) (intrinsic.Map, error) {
	cfg := config.orDefaults()
	if err := validateTree([]*element.Node{root}); err != nil {
		return nil, err
	}
	element.AssignIDs(root, 1)
	provider := cfg.ContentProvider
	if provider == nil {
		provider = content.NewDefaultProvider()
	}
	return intrinsic.MeasureAll(root, intrinsic.Config{
		BaseFontSize: cfg.BaseFontSize,
		Shaper:       effectiveShaper(cfg.TextMeasurer),
		Provider:     provider,
	}), nil
}

func effectiveShaper(sh shaper.TextShaper) shaper.TextShaper {
	if sh != nil {
		return sh
	}
	return shaper.NewDefaultShaper()
}

// resolveRootRect resolves the canvas's own border-box rectangle per
// spec.md §6's fixed-mode rules: fixed=both requires both dimensions;
// fixed=width/height takes the named dimension explicitly and the other
// from content; fixed=none takes both from content.
func resolveRootRect(canvas element.Canvas, root *element.Node, im intrinsic.Map, fontSize float64) (solver.Rect, error) {
	w, hasW := unit.ResolveLength(canvas.Width, 0, fontSize)
	h, hasH := unit.ResolveLength(canvas.Height, 0, fontSize)
	sz := im[root.ID]

	switch canvas.Fixed {
	case element.FixedBoth:
		if !hasW || !hasH {
			return solver.Rect{}, invalidInputError("canvas.fixed=both requires both width and height", nil)
		}
	case element.FixedWidth:
		if !hasW {
			return solver.Rect{}, invalidInputError("canvas.fixed=width requires an explicit width", nil)
		}
		h = sz.MaxHeight
	case element.FixedHeight:
		if !hasH {
			return solver.Rect{}, invalidInputError("canvas.fixed=height requires an explicit height", nil)
		}
		w = sz.MaxWidth
	default: // FixedNone
		w, h = sz.MaxWidth, sz.MaxHeight
	}

	return solver.Rect{X: 0, Y: 0, Width: w, Height: h}, nil
}

// validateTree walks the forest checking the fatal input errors spec.md
// §7 names: negative grow or shrink on any element.
func validateTree(roots []*element.Node) error {
	var walkErr error
	for _, r := range roots {
		element.Walk(r, func(n *element.Node) {
			if walkErr != nil {
				return
			}
			if n.Attrs.Grow < 0 {
				e := invalidInputError("grow must be >= 0", n)
				e.Attribute = "grow"
				walkErr = e
				return
			}
			if n.Attrs.Shrink != nil && *n.Attrs.Shrink < 0 {
				e := invalidInputError("shrink must be >= 0", n)
				e.Attribute = "shrink"
				walkErr = e
			}
		})
		if walkErr != nil {
			break
		}
	}
	return walkErr
}

func translateSolverError(err error) error {
	if _, ok := err.(*solver.DepthExceededError); ok {
		return invalidInputError(err.Error(), nil)
	}
	return providerFailureError(err)
}

// Package element defines the input tree the layout engine consumes: a
// tagged union of box-model elements (Flex, Text, Image, Qr, Barcode,
// Separator) sharing a common CSS-like attribute bag. The tree is produced
// by an external template parser and is read-only once layout begins.
package element

// Kind tags the variant an element represents. Implementations switch on
// Kind rather than using virtual dispatch, following the teacher's
// tagged-union style for its own Shape variants (Text, Circle, Rectangle,
// Image, Line, Group).
type Kind int

const (
	KindFlex Kind = iota
	KindText
	KindImage
	KindQr
	KindBarcode
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindFlex:
		return "flex"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindQr:
		return "qr"
	case KindBarcode:
		return "barcode"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Display controls whether an element participates in layout at all.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Direction is the main-axis orientation of a flex container.
type Direction int

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

// IsRow reports whether d places its main axis horizontally.
func (d Direction) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether d reverses the natural source order along the
// main axis (Row/Column are forward; RowReverse/ColumnReverse are not).
func (d Direction) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// Wrap controls line wrapping in a flex container.
type Wrap int

const (
	NoWrap Wrap = iota
	WrapOn
	WrapReverse
)

// Justify controls distribution of free space along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align controls cross-axis alignment, both per-item (align-self/align-
// items) and, restricted to Start/Center/End/Stretch, line placement.
type Align int

const (
	AlignAuto Align = iota // only meaningful as AlignSelf: "inherit from container"
	AlignStart
	AlignCenter
	AlignEnd
	AlignStretch
	AlignBaseline
)

// AlignContent controls cross-axis distribution of multiple lines. It
// reuses Justify's space-* vocabulary (spec.md §3) in addition to
// start/center/end/stretch.
type AlignContent int

const (
	AlignContentStart AlignContent = iota
	AlignContentCenter
	AlignContentEnd
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// PositionType controls whether an element participates in normal flow.
type PositionType int

const (
	PosStatic PositionType = iota
	PosRelative
	PosAbsolute
)

// OverflowMode is purely a rendering hint; it never affects layout
// geometry (spec.md §3).
type OverflowMode int

const (
	OverflowVisible OverflowMode = iota
	OverflowHidden
)

// TextDirection is the block-level writing direction. DirInherit means
// "take the parent's resolved direction" (spec.md §4.3.1).
type TextDirection int

const (
	DirInherit TextDirection = iota
	LTR
	RTL
)

// BorderStyle is a rendering hint carried through geometry untouched.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDashed
	BorderDotted
)

// TextAlign controls horizontal alignment of shaped text lines within
// their allocated box. Left/Right are writing-direction-independent
// aliases; Start/End resolve against the node's resolved TextDirection.
type TextAlign int

const (
	TextAlignStart TextAlign = iota
	TextAlignCenter
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
)

// TextOverflowMode controls what happens to text that exceeds max_lines.
type TextOverflowMode int

const (
	TextOverflowVisible TextOverflowMode = iota
	TextOverflowEllipsis
)

// WrapMode selects how DefaultShaper breaks an overlong line. WrapByWord
// is what spec.md's boolean `wrap` attribute maps to; WrapBySymbol is a
// supplemented extension (SPEC_FULL.md §4) grounded in the teacher's
// instructions/text_wrap.go, opt-in via TextAttrs.WrapMode.
type WrapMode int

const (
	WrapByWord WrapMode = iota
	WrapBySymbol
)

// Orientation distinguishes a horizontal separator (a thin line spanning
// width, thickness-tall) from a vertical one (thickness-wide, spanning
// height) per spec.md §4.2.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Attrs is the attribute bag shared by every element variant (spec.md §3).
// Dimension and box-model fields are unit-expression strings ("12px",
// "50%", "2em", "auto", ""); the unit resolver (package unit) evaluates
// them lazily against a LayoutContext. An empty string means "not set".
type Attrs struct {
	Width, Height       string
	MinWidth, MinHeight string
	MaxWidth, MaxHeight string

	Padding string // 1/2/3/4-value shorthand
	Margin  string // 1/2/3/4-value shorthand; any side may be "auto"

	Border        string   // "<width> <style> <color>" shorthand
	BorderTop     string   // per-side override, same shorthand grammar
	BorderRight   string
	BorderBottom  string
	BorderLeft    string
	BorderWidth   string // per-property override, applies to all sides last
	BorderColor   string // per-property override, applies to all sides last

	Grow  float64 // >= 0, default 0; negative is a fatal input error
	Shrink *float64 // nil => default 1
	Basis string    // unit expression or "auto" ("" behaves as "auto")

	AlignSelf Align // AlignAuto inherits the container's Align
	Order     int

	Position PositionType
	Top      string
	Right    string
	Bottom   string
	Left     string

	Display      Display
	Overflow     OverflowMode
	AspectRatio  *float64 // width/height, > 0

	TextDirection *TextDirection // nil inherits from parent
}

// ResolvedShrink returns the item's flex-shrink factor, applying the
// spec.md §3 default of 1 when unset.
func (a Attrs) ResolvedShrink() float64 {
	if a.Shrink == nil {
		return 1
	}
	return *a.Shrink
}

// ContainerAttrs holds the flex-container-only attributes (spec.md §3).
type ContainerAttrs struct {
	Direction    Direction
	Wrap         Wrap
	Gap          string // unit expression; resolves against main-axis basis
	Justify      Justify
	Align        Align
	AlignContent AlignContent
}

// TextAttrs holds the text-only attributes (spec.md §3).
type TextAttrs struct {
	Content      string
	Size         string // font-size unit expression
	LineHeight   string // bare number = multiplier, else a length
	Wrap         bool
	MaxLines     int
	OverflowMode TextOverflowMode
	TextAlign    TextAlign

	// Supplemented beyond spec.md (SPEC_FULL.md §4): symbol-wrap with
	// hyphenation, grounded in the teacher's Text/WrapMode model.
	WrapMode   WrapMode
	WrapSymbol string // defaults to "-" when WrapMode == WrapBySymbol and unset
}

// LeafAttrs holds the kind-specific attributes of the non-text, non-flex
// leaf primitives (Image, Qr, Barcode, Separator). Only the fields
// relevant to the element's Kind are meaningful.
type LeafAttrs struct {
	Source      string      // Image: source reference, opaque to the engine
	Value       string      // Qr/Barcode: encoded payload, opaque to the engine
	Orientation Orientation // Separator only
}

// Node is one element in the input tree. The tree is immutable during
// layout; ID is assigned once by AssignIDs and used to key the intrinsic
// size map, since Go gives us stable pointer identity but the spec wants a
// host-independent contract (spec.md §9).
type Node struct {
	ID       int
	Kind     Kind
	Attrs    Attrs
	Container ContainerAttrs // meaningful when Kind == KindFlex
	Text      TextAttrs      // meaningful when Kind == KindText
	Leaf      LeafAttrs      // meaningful for Image/Qr/Barcode/Separator
	Children  []*Node
}

// IsFlowChild reports whether n participates in normal flex flow under its
// parent, per the partition rule in spec.md §4.3.2.
func (n *Node) IsFlowChild() bool {
	return n.Attrs.Display != DisplayNone && n.Attrs.Position != PosAbsolute
}

// IsHidden reports whether n is display:none.
func (n *Node) IsHidden() bool {
	return n.Attrs.Display == DisplayNone
}

// IsAbsolute reports whether n is removed from flow via position:absolute.
func (n *Node) IsAbsolute() bool {
	return n.Attrs.Display != DisplayNone && n.Attrs.Position == PosAbsolute
}

package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Arrange selects how a container positions its children.
type Arrange uint8

const (
	ArrangeFlex  Arrange = iota // Children share the main axis (flexbox)
	ArrangeLayer                // Children share the content rect, back to front
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Placement positions layer-arranged children on each axis independently.
type Placement struct {
	X, Y Align
}

// Fit shrinks a node's border box to its intrinsic size on the selected axes.
type Fit uint8

const (
	FitNone   Fit = 0
	FitWidth  Fit = 1 << 0
	FitHeight Fit = 1 << 1
	FitBoth       = FitWidth | FitHeight
)

// Has reports whether f includes every axis in other.
func (f Fit) Has(other Fit) bool {
	return f&other == other
}

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// AspectRatio constrains height to width*AspectRatio when positive.
	AspectRatio float64
	Fit         Fit

	// Container properties
	Arrange        Arrange
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int       // Space between children (main axis only)
	Place          Placement // Layer arrangement only

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
		Place:      Placement{X: AlignStretch, Y: AlignStretch},
		FlexShrink: 1.0,
	}
}

// String returns the direction name.
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// String returns the arrangement name.
func (a Arrange) String() string {
	if a == ArrangeLayer {
		return "layer"
	}
	return "flex"
}

// String returns the kebab-case justify name.
func (j Justify) String() string {
	switch j {
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return "start"
	}
}

// String returns the align name.
func (a Align) String() string {
	switch a {
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}

package describe

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/flexkit/internal/debug"
)

var (
	// ErrFormat reports an unreadable or unsupported description file.
	ErrFormat = errors.New("invalid description format")
	// ErrInvalidNode reports a node that does not describe exactly one kind
	// or carries an invalid parameter.
	ErrInvalidNode = errors.New("invalid node")
	// ErrUnknownVar reports a conditional that names an undefined variable.
	ErrUnknownVar = errors.New("unknown variable")
)

// Format is a description file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: unsupported extension %q: %w", path, filepath.Ext(path), ErrFormat)
	}
}

// Document is a decoded description file.
type Document struct {
	// Vars holds default values for conditional variables.
	Vars map[string]bool `yaml:"vars,omitempty" toml:"vars,omitempty"`
	// Root is the top-level node.
	Root NodeDesc `yaml:"root" toml:"root"`
}

// NodeDesc describes one node. Exactly one kind field is set.
type NodeDesc struct {
	Style `yaml:",inline"`

	Text       *string         `yaml:"text,omitempty" toml:"text,omitempty"`
	Box        *LeafDesc       `yaml:"box,omitempty" toml:"box,omitempty"`
	Empty      *LeafDesc       `yaml:"empty,omitempty" toml:"empty,omitempty"`
	VStack     *StackDesc      `yaml:"vstack,omitempty" toml:"vstack,omitempty"`
	HStack     *StackDesc      `yaml:"hstack,omitempty" toml:"hstack,omitempty"`
	ZStack     *GroupDesc      `yaml:"zstack,omitempty" toml:"zstack,omitempty"`
	Wrap       *GroupDesc      `yaml:"wrap,omitempty" toml:"wrap,omitempty"`
	Center     *CenterDesc     `yaml:"center,omitempty" toml:"center,omitempty"`
	Relative   *RelativeDesc   `yaml:"relative,omitempty" toml:"relative,omitempty"`
	Inset      *InsetDesc      `yaml:"inset,omitempty" toml:"inset,omitempty"`
	Overlay    *OverlayDesc    `yaml:"overlay,omitempty" toml:"overlay,omitempty"`
	Background *BackgroundDesc `yaml:"background,omitempty" toml:"background,omitempty"`
	Ratio      *RatioDesc      `yaml:"ratio,omitempty" toml:"ratio,omitempty"`
	Spacer     *SpacerDesc     `yaml:"spacer,omitempty" toml:"spacer,omitempty"`
	If         *IfDesc         `yaml:"if,omitempty" toml:"if,omitempty"`
	Each       *EachDesc       `yaml:"each,omitempty" toml:"each,omitempty"`
}

// Style holds the element options a node may carry.
type Style struct {
	Name      string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Width     Dim      `yaml:"width,omitempty" toml:"width,omitempty"`
	Height    Dim      `yaml:"height,omitempty" toml:"height,omitempty"`
	MinWidth  Dim      `yaml:"min-width,omitempty" toml:"min-width,omitempty"`
	MinHeight Dim      `yaml:"min-height,omitempty" toml:"min-height,omitempty"`
	MaxWidth  Dim      `yaml:"max-width,omitempty" toml:"max-width,omitempty"`
	MaxHeight Dim      `yaml:"max-height,omitempty" toml:"max-height,omitempty"`
	Grow      *float64 `yaml:"grow,omitempty" toml:"grow,omitempty"`
	Shrink    *float64 `yaml:"shrink,omitempty" toml:"shrink,omitempty"`
	AlignSelf string   `yaml:"align-self,omitempty" toml:"align-self,omitempty"`
	Padding   Spacing  `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Margin    Spacing  `yaml:"margin,omitempty" toml:"margin,omitempty"`
	Border    string   `yaml:"border,omitempty" toml:"border,omitempty"`
}

// LeafDesc is the (empty) body of box and empty nodes.
type LeafDesc struct{}

// StackDesc describes vstack and hstack nodes.
type StackDesc struct {
	Spacing  int        `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Justify  string     `yaml:"justify,omitempty" toml:"justify,omitempty"`
	Align    string     `yaml:"align,omitempty" toml:"align,omitempty"`
	Children []NodeDesc `yaml:"children,omitempty" toml:"children,omitempty"`
}

// GroupDesc describes zstack and wrap nodes.
type GroupDesc struct {
	Children []NodeDesc `yaml:"children,omitempty" toml:"children,omitempty"`
}

// CenterDesc describes a center node.
type CenterDesc struct {
	Axes   string    `yaml:"axes,omitempty" toml:"axes,omitempty"`
	Sizing string    `yaml:"sizing,omitempty" toml:"sizing,omitempty"`
	Child  *NodeDesc `yaml:"child,omitempty" toml:"child,omitempty"`
}

// RelativeDesc describes a relative node.
type RelativeDesc struct {
	X      string    `yaml:"x,omitempty" toml:"x,omitempty"`
	Y      string    `yaml:"y,omitempty" toml:"y,omitempty"`
	Sizing string    `yaml:"sizing,omitempty" toml:"sizing,omitempty"`
	Child  *NodeDesc `yaml:"child,omitempty" toml:"child,omitempty"`
}

// InsetDesc describes an inset node.
type InsetDesc struct {
	Edges Spacing   `yaml:"edges,omitempty" toml:"edges,omitempty"`
	Child *NodeDesc `yaml:"child,omitempty" toml:"child,omitempty"`
}

// OverlayDesc describes an overlay node.
type OverlayDesc struct {
	Content *NodeDesc `yaml:"content,omitempty" toml:"content,omitempty"`
	Overlay *NodeDesc `yaml:"overlay,omitempty" toml:"overlay,omitempty"`
}

// BackgroundDesc describes a background node.
type BackgroundDesc struct {
	Content    *NodeDesc `yaml:"content,omitempty" toml:"content,omitempty"`
	Background *NodeDesc `yaml:"background,omitempty" toml:"background,omitempty"`
}

// RatioDesc describes a ratio node. Value is height divided by width;
// alternatively Width and Height give the proportions directly.
type RatioDesc struct {
	Value  float64   `yaml:"value,omitempty" toml:"value,omitempty"`
	Width  float64   `yaml:"width,omitempty" toml:"width,omitempty"`
	Height float64   `yaml:"height,omitempty" toml:"height,omitempty"`
	Child  *NodeDesc `yaml:"child,omitempty" toml:"child,omitempty"`
}

// SpacerDesc describes a spacer node. Axis is "horizontal" (default) or
// "vertical".
type SpacerDesc struct {
	Axis string `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Min  int    `yaml:"min,omitempty" toml:"min,omitempty"`
}

// IfDesc picks Then or Else from a variable. A missing Else leaves nothing
// in place of the node.
type IfDesc struct {
	Var  string    `yaml:"var" toml:"var"`
	Then *NodeDesc `yaml:"then,omitempty" toml:"then,omitempty"`
	Else *NodeDesc `yaml:"else,omitempty" toml:"else,omitempty"`
}

// EachDesc repeats Node once per item, replacing {item} in text and names.
type EachDesc struct {
	Items []string  `yaml:"items" toml:"items"`
	Node  *NodeDesc `yaml:"node" toml:"node"`
}

// Decode parses a description in the given format. Unknown keys are errors.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrFormat, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrFormat, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: toml: unknown key %q", ErrFormat, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrFormat, format)
	}
	return &doc, nil
}

// Load reads the description at path and builds its root node. Entries in
// vars override the document's own variable defaults.
func Load(path string, vars map[string]bool) (*Description, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading description: %w", err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	desc, err := doc.Build(vars)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	debug.Logger().Debug("loaded description", "path", path, "format", string(format), "vars", len(desc.Vars))
	return desc, nil
}

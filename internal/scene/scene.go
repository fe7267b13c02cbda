package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	rbox "github.com/grindlemire/go-rbox"
)

// Node kinds.
const (
	KindFixed       = "fixed"
	KindFill        = "fill"
	KindText        = "text"
	KindConstrained = "constrained"
	KindPadding     = "padding"
	KindAlign       = "align"
	KindFlex        = "flex"
	KindOverlay     = "overlay"
	// KindEmpty has no renderer and uses the engine's default steps.
	KindEmpty = "empty"
)

// Scene is a parsed scene document.
type Scene struct {
	Constraints Bounds `yaml:"constraints"`
	Root        *Node  `yaml:"root"`
}

// Bounds is the YAML form of rbox.Constraints. Nil maxima are unbounded.
type Bounds struct {
	MinWidth  float64  `yaml:"min_width"`
	MaxWidth  *float64 `yaml:"max_width"`
	MinHeight float64  `yaml:"min_height"`
	MaxHeight *float64 `yaml:"max_height"`
}

// Constraints converts b.
func (b Bounds) Constraints() rbox.Constraints {
	maxW, maxH := math.Inf(1), math.Inf(1)
	if b.MaxWidth != nil {
		maxW = *b.MaxWidth
	}
	if b.MaxHeight != nil {
		maxH = *b.MaxHeight
	}
	return rbox.NewConstraints(b.MinWidth, maxW, b.MinHeight, maxH)
}

// Insets is the YAML form of rbox.Edges. All, Vertical and Horizontal are
// applied first; explicit sides override them.
type Insets struct {
	All        float64  `yaml:"all"`
	Vertical   *float64 `yaml:"vertical"`
	Horizontal *float64 `yaml:"horizontal"`
	Top        *float64 `yaml:"top"`
	Right      *float64 `yaml:"right"`
	Bottom     *float64 `yaml:"bottom"`
	Left       *float64 `yaml:"left"`
}

// Edges converts i.
func (i Insets) Edges() rbox.Edges {
	e := rbox.EdgeAll(i.All)
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&e.Top, i.Vertical)
	set(&e.Bottom, i.Vertical)
	set(&e.Left, i.Horizontal)
	set(&e.Right, i.Horizontal)
	set(&e.Top, i.Top)
	set(&e.Right, i.Right)
	set(&e.Bottom, i.Bottom)
	set(&e.Left, i.Left)
	return e
}

// Node is one box in the scene. Fields apply per kind.
type Node struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`

	// fixed
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// text
	Text string `yaml:"text"`

	// constrained
	Constraints *Bounds `yaml:"constraints"`

	// padding
	Padding Insets `yaml:"padding"`

	// align
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// flex
	Direction string  `yaml:"direction"`
	Gap       float64 `yaml:"gap"`
	Cross     string  `yaml:"cross"`

	// empty
	SizedByParent bool `yaml:"sized_by_parent"`

	// Parent data, read by the enclosing node.
	Flex float64 `yaml:"flex"`
	Slot string  `yaml:"slot"`

	Children []*Node `yaml:"children"`
}

// Load parses a scene document. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("scene is empty")
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if s.Root == nil {
		return nil, errors.New("scene has no root")
	}
	return &s, nil
}

// Parse is Load over a string.
func Parse(doc string) (*Scene, error) {
	return Load(strings.NewReader(doc))
}

// Build creates a tree for the scene and returns it with the root
// constraints. Boxes are labelled with their label, or with their path in
// the document when unlabelled.
func (s *Scene) Build() (*rbox.Tree, rbox.Constraints, error) {
	c := s.Constraints.Constraints()
	if err := c.Validate(); err != nil {
		return nil, rbox.Constraints{}, fmt.Errorf("scene constraints: %w", err)
	}

	tree := rbox.NewTree()
	root, err := build(tree, s.Root, "root")
	if err != nil {
		return nil, rbox.Constraints{}, err
	}
	if err := tree.SetRoot(root); err != nil {
		return nil, rbox.Constraints{}, err
	}
	return tree, c, nil
}

func build(t *rbox.Tree, n *Node, path string) (*rbox.Box, error) {
	if n == nil {
		return nil, fmt.Errorf("%s: empty node", path)
	}
	r, err := n.renderer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	label := n.Label
	if label == "" {
		label = path
	}
	opts := []rbox.BoxOption{rbox.WithLabel(label)}
	if n.Kind == KindEmpty {
		opts = append(opts, rbox.WithSizedByParent(n.SizedByParent))
	}
	b := t.NewBox(r, opts...)

	for i, cn := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, err := build(t, cn, childPath)
		if err != nil {
			return nil, err
		}
		switch b.ChildModel() {
		case rbox.ChildCustom:
			if cn.Slot == "" {
				return nil, fmt.Errorf("%s: a child of %s needs a slot", childPath, n.Kind)
			}
			err = b.SetSlot(cn.Slot, child)
		case rbox.ChildOrdered:
			err = b.AppendFlexChild(child, cn.Flex)
		default:
			err = b.AppendChild(child)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", childPath, err)
		}
	}
	return b, nil
}

func (n *Node) renderer() (rbox.Renderer, error) {
	fill, err := ParseColor(n.Color)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case KindFixed:
		return &rbox.FixedBox{Width: n.Width, Height: n.Height, Color: fill}, nil
	case KindFill:
		return &rbox.FillBox{Color: fill}, nil
	case KindText:
		return &rbox.TextBox{Text: n.Text}, nil
	case KindConstrained:
		if n.Constraints == nil {
			return nil, errors.New("constrained node needs constraints")
		}
		return &rbox.ConstrainedBox{Additional: n.Constraints.Constraints()}, nil
	case KindPadding:
		return &rbox.PaddingBox{Padding: n.Padding.Edges()}, nil
	case KindAlign:
		return &rbox.AlignBox{X: n.X, Y: n.Y}, nil
	case KindFlex:
		dir, err := parseDirection(n.Direction)
		if err != nil {
			return nil, err
		}
		cross, err := parseCross(n.Cross)
		if err != nil {
			return nil, err
		}
		return &rbox.FlexBox{Direction: dir, Gap: n.Gap, CrossAlign: cross}, nil
	case KindOverlay:
		return &rbox.OverlayBox{}, nil
	case KindEmpty:
		return nil, nil
	case "":
		return nil, errors.New("node has no kind")
	default:
		return nil, fmt.Errorf("unknown kind %q", n.Kind)
	}
}

func parseDirection(s string) (rbox.Direction, error) {
	switch s {
	case "", "row":
		return rbox.Row, nil
	case "column":
		return rbox.Column, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseCross(s string) (rbox.CrossAlign, error) {
	switch s {
	case "", "start":
		return rbox.CrossStart, nil
	case "center":
		return rbox.CrossCenter, nil
	case "end":
		return rbox.CrossEnd, nil
	case "stretch":
		return rbox.CrossStretch, nil
	}
	return 0, fmt.Errorf("unknown cross alignment %q", s)
}

// ParseColor reads "#rgb", "#rrggbb" or "#rrggbbaa". The empty string is
// transparent.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("color %q must start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q has the wrong length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

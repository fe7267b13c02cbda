package rbox

import (
	"fmt"
	"strings"
)

// Renderer supplies the full layout step of a box. PerformLayout must lay
// out every child the box depends on, position them through their parent
// data and, unless the box is sizedByParent, call [Box.SetSize].
type Renderer interface {
	PerformLayout(lc *LayoutContext, b *Box) error
}

// Resizer is implemented by renderers of sizedByParent boxes. The returned
// size must depend on the constraints alone.
type Resizer interface {
	PerformResize(c Constraints) Size
}

// SizedByParenter declares the renderer's sizedByParent policy.
type SizedByParenter interface {
	SizedByParent() bool
}

// ChildModeler declares the renderer's child model.
type ChildModeler interface {
	ChildModel() ChildModel
}

// SlotOrderer gives the paint order of a custom box's named slots.
type SlotOrderer interface {
	SlotOrder() []string
}

// IntrinsicSizer computes content-driven measurements. Results must be
// finite and non-negative, and min must not exceed max for the same input.
// Renderers that do not implement it measure zero on every query.
type IntrinsicSizer interface {
	ComputeMinIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error)
	ComputeMaxIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error)
	ComputeMinIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error)
	ComputeMaxIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error)
}

// Box is a node of the render tree. Boxes are created by [Tree.NewBox]
// and mutated only by the engine and their own renderer.
type Box struct {
	tree     *Tree
	id       NodeID
	label    string
	renderer Renderer
	model    ChildModel

	parent     NodeID
	children   []NodeID
	parentData ParentData

	size           Size
	hasSize        bool
	constraints    Constraints
	hasConstraints bool
	parentUsesSize bool
	sizedByParent  bool
	needsLayout    bool

	intrinsics map[intrinsicKey]float64

	activePointers int
}

// ID returns the box's arena handle.
func (b *Box) ID() NodeID {
	return b.id
}

// Tree returns the owning tree, or nil once released.
func (b *Box) Tree() *Tree {
	return b.tree
}

// Label returns the diagnostic label.
func (b *Box) Label() string {
	return b.label
}

// Renderer returns the box's layout behaviour.
func (b *Box) Renderer() Renderer {
	return b.renderer
}

// ChildModel returns how the box stores children.
func (b *Box) ChildModel() ChildModel {
	return b.model
}

// Kind returns the renderer's type name, used in diagnostics and metrics.
func (b *Box) Kind() string {
	if b.renderer == nil {
		return "Box"
	}
	name := fmt.Sprintf("%T", b.renderer)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Parent returns the parent box, or nil for the root and detached boxes.
func (b *Box) Parent() *Box {
	if b.parent == NoNode || b.tree == nil {
		return nil
	}
	return b.tree.nodes[b.parent]
}

// Depth returns the number of ancestors.
func (b *Box) Depth() int {
	d := 0
	for n := b.Parent(); n != nil; n = n.Parent() {
		d++
	}
	return d
}

// ParentData returns the data the parent keeps on this box, or nil when
// detached.
func (b *Box) ParentData() ParentData {
	return b.parentData
}

// BoxData returns the positioning data common to every child model, or
// nil when detached.
func (b *Box) BoxData() *BoxParentData {
	if b.parentData == nil {
		return nil
	}
	return b.parentData.box()
}

// FlexData returns the parent data of a child of an ordered box, or nil.
func (b *Box) FlexData() *FlexParentData {
	d, _ := b.parentData.(*FlexParentData)
	return d
}

// SlotData returns the parent data of a child of a custom box, or nil.
func (b *Box) SlotData() *SlotParentData {
	d, _ := b.parentData.(*SlotParentData)
	return d
}

// Offset returns the box's position in its parent's coordinates.
func (b *Box) Offset() Offset {
	if d := b.BoxData(); d != nil {
		return d.Offset
	}
	return Offset{}
}

// SetOffset positions a child; parents call it from PerformLayout.
func (b *Box) SetOffset(o Offset) {
	if d := b.BoxData(); d != nil {
		d.Offset = o
	}
}

// SizedByParent reports whether the box takes the resize fast path.
func (b *Box) SizedByParent() bool {
	return b.sizedByParent
}

// NeedsLayout reports whether the box is dirty.
func (b *Box) NeedsLayout() bool {
	return b.needsLayout
}

// HasSize reports whether a completed layout has set the size.
func (b *Box) HasSize() bool {
	return b.hasSize
}

// Size returns the size computed by the last layout. It is the zero size
// until the first layout completes. Parents reading a child's size during
// their own layout should use [LayoutContext.ChildSize], which enforces
// the ownership ledger.
func (b *Box) Size() Size {
	return b.size
}

// Constraints returns the constraints of the most recent layout.
func (b *Box) Constraints() (Constraints, bool) {
	return b.constraints, b.hasConstraints
}

// Bounds returns the box's rectangle in its own coordinates.
func (b *Box) Bounds() Rect {
	return rectOf(Offset{}, b.size)
}

// MarkNeedsLayout marks this box and all ancestors dirty and drops their
// intrinsic caches: an ancestor's measurements depend on this box.
func (b *Box) MarkNeedsLayout() {
	for n := b; n != nil; n = n.Parent() {
		n.needsLayout = true
		n.intrinsics = nil
	}
}

// SetActivePointers records how many pointers are down on the box, for
// the pointer debug overlay.
func (b *Box) SetActivePointers(n int) {
	b.activePointers = max(0, n)
}

// ActivePointers returns the count set by SetActivePointers.
func (b *Box) ActivePointers() int {
	return b.activePointers
}

func (b *Box) String() string {
	if b == nil {
		return "<nil>"
	}
	if b.label != "" {
		return fmt.Sprintf("%s#%d(%s)", b.Kind(), b.id, b.label)
	}
	return fmt.Sprintf("%s#%d", b.Kind(), b.id)
}

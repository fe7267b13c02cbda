package rbox

// NodeID is a handle into a [Tree]'s arena.
type NodeID int32

// NoNode is the handle of an absent box.
const NoNode NodeID = -1

// ChildModel fixes how a box stores its children. It is chosen when the
// box is created and decides the type of its children's parent data.
type ChildModel uint8

const (
	ChildNone    ChildModel = iota // Leaf: no children
	ChildSingle                    // At most one child, BoxParentData
	ChildOrdered                   // Any number in insertion order, FlexParentData
	ChildCustom                    // Named slots, SlotParentData
)

func (m ChildModel) String() string {
	switch m {
	case ChildSingle:
		return "single"
	case ChildOrdered:
		return "ordered"
	case ChildCustom:
		return "custom"
	default:
		return "none"
	}
}

// Tree is an arena of boxes addressed by [NodeID].
type Tree struct {
	nodes []*Box
	free  []NodeID
	root  NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{root: NoNode}
}

// BoxOption configures a box at creation.
type BoxOption func(*Box)

// WithLabel names the box in diagnostics.
func WithLabel(label string) BoxOption {
	return func(b *Box) {
		b.label = label
	}
}

// WithSizedByParent overrides the renderer's sizedByParent policy.
func WithSizedByParent(v bool) BoxOption {
	return func(b *Box) {
		b.sizedByParent = v
	}
}

// WithChildModel overrides the renderer's child model.
func WithChildModel(m ChildModel) BoxOption {
	return func(b *Box) {
		b.model = m
	}
}

// NewBox allocates a detached box. A nil renderer gives the default
// policies: resize to the smallest size when sizedByParent, and a protocol
// error from the layout step otherwise.
func (t *Tree) NewBox(r Renderer, opts ...BoxOption) *Box {
	b := &Box{
		tree:        t,
		renderer:    r,
		parent:      NoNode,
		needsLayout: true,
	}
	if s, ok := r.(SizedByParenter); ok {
		b.sizedByParent = s.SizedByParent()
	}
	if m, ok := r.(ChildModeler); ok {
		b.model = m.ChildModel()
	}
	for _, opt := range opts {
		opt(b)
	}

	if n := len(t.free); n > 0 {
		b.id = t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[b.id] = b
	} else {
		b.id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, b)
	}
	return b
}

// Node returns the box for id, or nil if the handle is stale.
func (t *Tree) Node(id NodeID) *Box {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of live boxes.
func (t *Tree) Len() int {
	return len(t.nodes) - len(t.free)
}

// SetRoot makes b the root. The box must be detached.
func (t *Tree) SetRoot(b *Box) error {
	if b.tree != t {
		return newError(ErrCodeProtocol, b, "root belongs to a different tree")
	}
	if b.parent != NoNode {
		return newError(ErrCodeProtocol, b, "root must not have a parent")
	}
	t.root = b.id
	b.MarkNeedsLayout()
	return nil
}

// Root returns the root box, or nil.
func (t *Tree) Root() *Box {
	return t.Node(t.root)
}

// Release frees a detached box and its whole subtree. Handles to released
// boxes may be reused by later allocations.
func (t *Tree) Release(b *Box) error {
	if b.tree != t || t.Node(b.id) != b {
		return newError(ErrCodeProtocol, b, "cannot release a box that is not live in this tree")
	}
	if b.parent != NoNode {
		return newError(ErrCodeProtocol, b, "cannot release an attached box; remove it from its parent first")
	}
	if t.root == b.id {
		t.root = NoNode
	}
	t.release(b)
	return nil
}

func (t *Tree) release(b *Box) {
	for _, id := range b.children {
		t.release(t.nodes[id])
	}
	t.nodes[b.id] = nil
	t.free = append(t.free, b.id)
	b.children = nil
	b.tree = nil
}

// AppendChild attaches child at the end of b's children. Leaves reject
// children; single-child boxes accept one; custom boxes require [Box.SetSlot].
func (b *Box) AppendChild(child *Box) error {
	return b.InsertChild(len(b.children), child)
}

// AppendFlexChild attaches child to an ordered box with the given flex factor.
func (b *Box) AppendFlexChild(child *Box, flex float64) error {
	if err := b.AppendChild(child); err != nil {
		return err
	}
	child.FlexData().Flex = flex
	return nil
}

// InsertChild attaches child at index at.
func (b *Box) InsertChild(at int, child *Box) error {
	if err := b.checkAdopt(child); err != nil {
		return err
	}
	switch b.model {
	case ChildNone:
		return newError(ErrCodeProtocol, b, "a leaf box cannot have children")
	case ChildSingle:
		if len(b.children) > 0 {
			return newError(ErrCodeProtocol, b, "a single-child box already has a child")
		}
	case ChildCustom:
		return newError(ErrCodeProtocol, b, "custom child model: use SetSlot")
	}
	if at < 0 || at > len(b.children) {
		return newError(ErrCodePrecondition, b, "child index %d out of range [0, %d]", at, len(b.children))
	}
	b.children = append(b.children, NoNode)
	copy(b.children[at+1:], b.children[at:])
	b.children[at] = child.id
	b.attach(child)
	return nil
}

// SetSlot places child in the named slot of a custom box, replacing and
// detaching any previous occupant. A nil child empties the slot.
func (b *Box) SetSlot(name string, child *Box) error {
	if b.model != ChildCustom {
		return newError(ErrCodeProtocol, b, "SetSlot requires the custom child model, box uses %s", b.model)
	}
	old := b.Slot(name)
	if child != nil && child == old {
		return nil
	}
	if child != nil {
		if err := b.checkAdopt(child); err != nil {
			return err
		}
	}
	if old != nil {
		b.RemoveChild(old)
	}
	if child == nil {
		return nil
	}
	b.children = append(b.children, child.id)
	b.attach(child)
	child.parentData.(*SlotParentData).Slot = name
	return nil
}

// Slot returns the child in the named slot, or nil.
func (b *Box) Slot(name string) *Box {
	if b.model != ChildCustom {
		return nil
	}
	for _, id := range b.children {
		c := b.tree.nodes[id]
		if c.parentData.(*SlotParentData).Slot == name {
			return c
		}
	}
	return nil
}

// RemoveChild detaches child from b. Returns true if the child was found
// and removed. The child stays allocated until released.
func (b *Box) RemoveChild(child *Box) bool {
	for i, id := range b.children {
		if id == child.id {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.parent = NoNode
			child.parentData = nil
			child.MarkNeedsLayout()
			b.MarkNeedsLayout()
			return true
		}
	}
	return false
}

func (b *Box) checkAdopt(child *Box) error {
	if child == nil || child.tree != b.tree {
		return newError(ErrCodeProtocol, b, "child must be a live box of the same tree")
	}
	if child.parent != NoNode {
		return newError(ErrCodeProtocol, child, "box already has a parent")
	}
	if child == b || child.isAncestorOf(b) {
		return newError(ErrCodeProtocol, child, "attaching would create a cycle")
	}
	if b.tree.root == child.id {
		return newError(ErrCodeProtocol, child, "the root cannot become a child")
	}
	return nil
}

func (b *Box) attach(child *Box) {
	child.parent = b.id
	child.parentData = newParentData(b.model)
	child.MarkNeedsLayout()
}

func (b *Box) isAncestorOf(other *Box) bool {
	for n := other.Parent(); n != nil; n = n.Parent() {
		if n == b {
			return true
		}
	}
	return false
}

// VisitChildren calls fn for each child in paint order: insertion order
// for ordered boxes, the renderer's [SlotOrderer] order for custom boxes.
// Iteration stops early when fn returns false.
func (b *Box) VisitChildren(fn func(*Box) bool) {
	if b.model == ChildCustom {
		if o, ok := b.renderer.(SlotOrderer); ok {
			for _, name := range o.SlotOrder() {
				if c := b.Slot(name); c != nil && !fn(c) {
					return
				}
			}
			return
		}
	}
	for _, id := range b.children {
		if !fn(b.tree.nodes[id]) {
			return
		}
	}
}

// Children returns the children in paint order.
func (b *Box) Children() []*Box {
	out := make([]*Box, 0, len(b.children))
	b.VisitChildren(func(c *Box) bool {
		out = append(out, c)
		return true
	})
	return out
}

// ChildCount returns the number of attached children.
func (b *Box) ChildCount() int {
	return len(b.children)
}

// Child returns the only child of a single-child box, or nil.
func (b *Box) Child() *Box {
	if b.model != ChildSingle || len(b.children) == 0 {
		return nil
	}
	return b.tree.nodes[b.children[0]]
}

package rbox

import (
	"time"

	"github.com/google/uuid"
)

// Owner drives layout passes over a tree: it holds the root constraints,
// the layout context, and re-lays the root whenever something below it was
// marked dirty. Clean subtrees are skipped by the memoization in [Box.Layout].
type Owner struct {
	tree        *Tree
	lc          *LayoutContext
	constraints Constraints
	passes      int
	lastPass    string
}

// NewOwner creates an owner for tree with the given root constraints.
func NewOwner(tree *Tree, c Constraints, opts ...ContextOption) *Owner {
	return &Owner{
		tree:        tree,
		lc:          NewLayoutContext(opts...),
		constraints: c,
	}
}

// Context returns the owner's layout context.
func (o *Owner) Context() *LayoutContext {
	return o.lc
}

// Tree returns the owned tree.
func (o *Owner) Tree() *Tree {
	return o.tree
}

// Constraints returns the root constraints.
func (o *Owner) Constraints() Constraints {
	return o.constraints
}

// SetConstraints changes the root constraints. The next flush re-lays the
// root if they differ.
func (o *Owner) SetConstraints(c Constraints) {
	o.constraints = c
}

// Passes returns how many flushes ran a layout.
func (o *Owner) Passes() int {
	return o.passes
}

// LastPass returns the identifier of the most recent layout pass.
func (o *Owner) LastPass() string {
	return o.lastPass
}

// NeedsLayout reports whether a flush would do any work.
func (o *Owner) NeedsLayout() bool {
	root := o.tree.Root()
	if root == nil {
		return false
	}
	c, ok := root.Constraints()
	return root.NeedsLayout() || !ok || !c.Equal(o.constraints)
}

// FlushLayout lays out the root if needed. A structural error aborts the
// pass and is returned unchanged; the affected boxes stay dirty.
func (o *Owner) FlushLayout() error {
	root := o.tree.Root()
	if root == nil {
		return newError(ErrCodeProtocol, nil, "tree has no root")
	}
	if !o.NeedsLayout() {
		return nil
	}

	pass := uuid.NewString()
	o.lastPass = pass
	o.passes++

	base := o.lc.logger
	o.lc.logger = base.With("pass", pass)
	defer func() { o.lc.logger = base }()

	start := time.Now()
	o.lc.stack = o.lc.stack[:0]
	err := root.Layout(o.lc, o.constraints, false)
	elapsed := time.Since(start)

	o.lc.hooks.OnFlush(pass, elapsed, err)
	if err != nil {
		o.lc.logger.Error("layout pass failed", "err", err)
		return err
	}
	o.lc.logger.Debug("layout pass complete", "root", root, "size", root.Size(), "elapsed", elapsed)
	return nil
}

// Paint paints the laid-out tree into pc.
func (o *Owner) Paint(pc PaintContext) {
	if root := o.tree.Root(); root != nil && root.HasSize() {
		root.Paint(o.lc, pc, Offset{})
	}
}

// HitTest collects the boxes under position, deepest first.
func (o *Owner) HitTest(position Offset) *HitTestResult {
	result := &HitTestResult{}
	if root := o.tree.Root(); root != nil && root.HasSize() {
		root.HitTest(result, position)
	}
	return result
}

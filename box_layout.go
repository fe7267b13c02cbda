package rbox

// Layout computes the box's size under c. Parents call it through
// [LayoutContext.LayoutChild]; the [Owner] calls it on the root.
//
// A clean box receiving the constraints it was last laid out with returns
// immediately and keeps its size. Otherwise the constraints are stored,
// sizedByParent boxes run the resize step, and every box runs the layout
// step. In diagnostic mode the result is validated before the dirty flag
// is cleared; a structural error leaves the box dirty.
func (b *Box) Layout(lc *LayoutContext, c Constraints, parentUsesSize bool) error {
	if err := c.Validate(); err != nil {
		err.(*Error).Node = b.String()
		return err
	}

	if !b.needsLayout && b.hasConstraints && b.hasSize && c.Equal(b.constraints) {
		b.parentUsesSize = parentUsesSize
		b.size.usableByParent = parentUsesSize
		lc.stats.MemoHits++
		lc.hooks.OnMemoHit(b)
		lc.logger.Debug("layout memo hit", "node", b, "constraints", c)
		return nil
	}

	if b.hasConstraints && !c.Equal(b.constraints) {
		b.intrinsics = nil
	}
	b.constraints = c
	b.hasConstraints = true
	b.parentUsesSize = parentUsesSize
	b.hasSize = false

	if b.sizedByParent {
		if err := b.resize(lc, c); err != nil {
			return err
		}
	}

	lc.push(b, PhaseLayout)
	err := b.performLayout(lc)
	lc.pop()
	if err != nil {
		return err
	}

	if lc.diagnosing() {
		if err := lc.validate(b); err != nil {
			return err
		}
	}

	b.needsLayout = false
	lc.stats.Layouts++
	lc.hooks.OnLayout(b, c, b.size)
	lc.logger.Debug("layout", "node", b, "constraints", c, "size", b.size)
	return nil
}

func (b *Box) resize(lc *LayoutContext, c Constraints) error {
	lc.push(b, PhaseResize)
	var s Size
	if r, ok := b.renderer.(Resizer); ok {
		s = r.PerformResize(c)
	} else {
		s = c.Smallest()
	}
	lc.pop()

	if err := b.storeSize(lc, s); err != nil {
		return err
	}
	lc.stats.Resizes++
	if lc.diagnosing() {
		return lc.validateSize(b)
	}
	return nil
}

func (b *Box) performLayout(lc *LayoutContext) error {
	if b.renderer != nil {
		return b.renderer.PerformLayout(lc, b)
	}
	if b.sizedByParent {
		return nil
	}
	if lc.diagnosing() {
		return newError(ErrCodeProtocol, b,
			"%s did not implement PerformLayout: a box must either supply a renderer that "+
				"sets a size and lays out any children, or be sizedByParent so that the resize step sizes it",
			b.Kind())
	}
	return b.storeSize(lc, b.constraints.Smallest())
}

// SetSize records the box's size. Only the box's own PerformLayout may call
// it, and only when the box is not sizedByParent. A size obtained from a
// child is adopted only if the child is still attached and was laid out
// with parentUsesSize.
func (b *Box) SetSize(lc *LayoutContext, s Size) error {
	if lc.diagnosing() {
		if err := lc.checkSizeSetter(b); err != nil {
			return err
		}
	}
	return b.storeSize(lc, s)
}

func (b *Box) storeSize(lc *LayoutContext, s Size) error {
	if lc.diagnosing() {
		if err := b.adoptSize(s); err != nil {
			return err
		}
	}
	b.size = Size{
		Width:          s.Width,
		Height:         s.Height,
		owner:          b,
		usableByParent: b.parentUsesSize,
	}
	b.hasSize = true
	return nil
}

// LayoutChild lays out a direct child of the active box and returns its
// size. The size is stamped with parentUsesSize; if that is false the
// returned size must not be read or adopted by the caller.
func (lc *LayoutContext) LayoutChild(child *Box, c Constraints, parentUsesSize bool) (Size, error) {
	if lc.diagnosing() {
		active := lc.Active()
		if active == nil || child.Parent() != active || lc.Phase() != PhaseLayout {
			e := newError(ErrCodeProtocol, child,
				"a box may only be laid out by its parent's PerformLayout")
			e.Reader = active.String()
			return Size{}, e
		}
	}
	if err := child.Layout(lc, c, parentUsesSize); err != nil {
		return Size{}, err
	}
	return child.size, nil
}

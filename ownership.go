package rbox

// ChildSize returns child's size on behalf of the active box, enforcing
// the ownership ledger in diagnostic mode: the reader must be the child
// itself, or the child's parent after laying it out with parentUsesSize.
// Outside a layout pass anyone may read.
func (lc *LayoutContext) ChildSize(child *Box) (Size, error) {
	if !lc.diagnosing() {
		return child.size, nil
	}
	if !child.hasSize {
		return Size{}, newError(ErrCodeProtocol, child, "box was not laid out")
	}
	reader := lc.Active()
	if reader == nil || reader == child {
		return child.size, nil
	}
	if child.Parent() != reader {
		e := newError(ErrCodeOwnership, child,
			"size read by a box that is not its owner or the owner's parent")
		e.Reader = reader.String()
		return Size{}, e
	}
	if !child.size.usableByParent {
		e := newError(ErrCodeOwnership, child,
			"a child's size was used without setting parentUsesSize; "+
				"tell the framework when the size will be used by passing parentUsesSize=true to LayoutChild")
		e.Reader = reader.String()
		return Size{}, e
	}
	return child.size, nil
}

// adoptSize checks that b may take s as its own size.
func (b *Box) adoptSize(s Size) error {
	owner := s.owner
	if owner == nil || owner == b {
		return nil
	}
	if owner.Parent() != b {
		e := newError(ErrCodeOwnership, owner,
			"size assigned inappropriately: its owner is not, or is no longer, a child of the box using it")
		e.Reader = b.String()
		return e
	}
	if !s.usableByParent {
		e := newError(ErrCodeOwnership, owner,
			"a child's size was used without setting parentUsesSize")
		e.Reader = b.String()
		return e
	}
	return nil
}

// checkSizeSetter enforces that b sets its size from its own step.
func (lc *LayoutContext) checkSizeSetter(b *Box) error {
	contract := "because this box has sizedByParent set to false, it must set its size in PerformLayout"
	if b.sizedByParent {
		contract = "because this box has sizedByParent set to true, its size comes from the resize step"
	}
	if lc.Active() != b {
		e := newError(ErrCodeProtocol, b,
			"SetSize called from outside layout: only the box itself can set its size; %s", contract)
		if a := lc.Active(); a != nil {
			e.Reader = a.String()
		}
		return e
	}
	if b.sizedByParent {
		return newError(ErrCodeProtocol, b, "SetSize called from PerformLayout; %s", contract)
	}
	return nil
}

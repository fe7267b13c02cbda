package rbox

// singleChild gives a renderer the single-child model.
type singleChild struct{}

func (singleChild) ChildModel() ChildModel { return ChildSingle }

// childIntrinsic queries the only child, or measures zero without one.
func childIntrinsic(lc *LayoutContext, b *Box, dim IntrinsicDimension, arg float64) (float64, error) {
	c := b.Child()
	if c == nil {
		return 0, nil
	}
	return c.Intrinsic(lc, dim, arg)
}

// layoutOnlyChild lays out the child under c and returns its size, or
// reports false when there is no child.
func layoutOnlyChild(lc *LayoutContext, b *Box, c Constraints) (Size, bool, error) {
	child := b.Child()
	if child == nil {
		return Size{}, false, nil
	}
	if _, err := lc.LayoutChild(child, c, true); err != nil {
		return Size{}, true, err
	}
	s, err := lc.ChildSize(child)
	return s, true, err
}

// ConstrainedBox imposes additional constraints on its child.
type ConstrainedBox struct {
	singleChild
	Additional Constraints
}

// PerformLayout lays the child out under the additional constraints
// enforced into the incoming ones and adopts its size.
func (cb *ConstrainedBox) PerformLayout(lc *LayoutContext, b *Box) error {
	inner := cb.Additional.Enforce(b.constraints)
	s, ok, err := layoutOnlyChild(lc, b, inner)
	if err != nil {
		return err
	}
	if !ok {
		return b.SetSize(lc, inner.Constrain(ZeroSize))
	}
	b.Child().SetOffset(Offset{})
	return b.SetSize(lc, s)
}

func (cb *ConstrainedBox) width(lc *LayoutContext, b *Box, dim IntrinsicDimension, height float64) (float64, error) {
	a := cb.Additional
	if a.HasBoundedWidth() && a.HasTightWidth() {
		return a.MinWidth, nil
	}
	w, err := childIntrinsic(lc, b, dim, height)
	if err != nil {
		return 0, err
	}
	if !a.HasTightWidth() {
		w = a.ConstrainWidth(w)
	}
	return w, nil
}

func (cb *ConstrainedBox) height(lc *LayoutContext, b *Box, dim IntrinsicDimension, width float64) (float64, error) {
	a := cb.Additional
	if a.HasBoundedHeight() && a.HasTightHeight() {
		return a.MinHeight, nil
	}
	h, err := childIntrinsic(lc, b, dim, width)
	if err != nil {
		return 0, err
	}
	if !a.HasTightHeight() {
		h = a.ConstrainHeight(h)
	}
	return h, nil
}

// ComputeMinIntrinsicWidth is a tight additional width, or the child's
// measurement clamped into the additional constraints.
func (cb *ConstrainedBox) ComputeMinIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return cb.width(lc, b, MinIntrinsicWidth, height)
}

// ComputeMaxIntrinsicWidth mirrors ComputeMinIntrinsicWidth.
func (cb *ConstrainedBox) ComputeMaxIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return cb.width(lc, b, MaxIntrinsicWidth, height)
}

// ComputeMinIntrinsicHeight is a tight additional height, or the child's
// measurement clamped into the additional constraints.
func (cb *ConstrainedBox) ComputeMinIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return cb.height(lc, b, MinIntrinsicHeight, width)
}

// ComputeMaxIntrinsicHeight mirrors ComputeMinIntrinsicHeight.
func (cb *ConstrainedBox) ComputeMaxIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return cb.height(lc, b, MaxIntrinsicHeight, width)
}

// PaddingBox insets its child.
type PaddingBox struct {
	singleChild
	Padding Edges
}

// PerformLayout lays the child out inside the deflated constraints and
// grows its size by the padding.
func (p *PaddingBox) PerformLayout(lc *LayoutContext, b *Box) error {
	c := b.constraints
	pad := p.Padding
	s, ok, err := layoutOnlyChild(lc, b, c.Deflate(pad))
	if err != nil {
		return err
	}
	if !ok {
		return b.SetSize(lc, c.Constrain(NewSize(pad.Horizontal(), pad.Vertical())))
	}
	b.Child().SetOffset(pad.TopLeft())
	return b.SetSize(lc, c.Constrain(NewSize(s.Width+pad.Horizontal(), s.Height+pad.Vertical())))
}

func (p *PaddingBox) padded(lc *LayoutContext, b *Box, dim IntrinsicDimension, arg float64) (float64, error) {
	along, across := p.Padding.Horizontal(), p.Padding.Vertical()
	if dim == MinIntrinsicHeight || dim == MaxIntrinsicHeight {
		along, across = across, along
	}
	v, err := childIntrinsic(lc, b, dim, max(0, arg-across))
	if err != nil {
		return 0, err
	}
	return v + along, nil
}

// ComputeMinIntrinsicWidth measures the child at the height left after
// vertical padding and adds the horizontal padding.
func (p *PaddingBox) ComputeMinIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return p.padded(lc, b, MinIntrinsicWidth, height)
}

// ComputeMaxIntrinsicWidth is like ComputeMinIntrinsicWidth.
func (p *PaddingBox) ComputeMaxIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return p.padded(lc, b, MaxIntrinsicWidth, height)
}

// ComputeMinIntrinsicHeight measures the child at the width left after
// horizontal padding and adds the vertical padding.
func (p *PaddingBox) ComputeMinIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return p.padded(lc, b, MinIntrinsicHeight, width)
}

// ComputeMaxIntrinsicHeight is like ComputeMinIntrinsicHeight.
func (p *PaddingBox) ComputeMaxIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return p.padded(lc, b, MaxIntrinsicHeight, width)
}

// AlignBox positions its child inside itself. X and Y are fractions in
// [0, 1]: 0 is the start edge, 0.5 centers, 1 is the end edge. On bounded
// axes the box expands to the maximum; on unbounded axes it shrink-wraps
// the child.
type AlignBox struct {
	singleChild
	X, Y float64
}

// PerformLayout lays the child out under loosened constraints and places
// it by the X and Y fractions.
func (a *AlignBox) PerformLayout(lc *LayoutContext, b *Box) error {
	c := b.constraints
	s, ok, err := layoutOnlyChild(lc, b, c.Loosen())
	if err != nil {
		return err
	}
	w, h := s.Width, s.Height
	if c.HasBoundedWidth() {
		w = c.MaxWidth
	}
	if c.HasBoundedHeight() {
		h = c.MaxHeight
	}
	size := c.Constrain(NewSize(w, h))
	if ok {
		b.Child().SetOffset(Offset{
			X: (size.Width - s.Width) * clamp(a.X, 0, 1),
			Y: (size.Height - s.Height) * clamp(a.Y, 0, 1),
		})
	}
	return b.SetSize(lc, size)
}

// ComputeMinIntrinsicWidth defers to the child, as do the other intrinsics.
func (a *AlignBox) ComputeMinIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return childIntrinsic(lc, b, MinIntrinsicWidth, height)
}

func (a *AlignBox) ComputeMaxIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return childIntrinsic(lc, b, MaxIntrinsicWidth, height)
}

func (a *AlignBox) ComputeMinIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return childIntrinsic(lc, b, MinIntrinsicHeight, width)
}

func (a *AlignBox) ComputeMaxIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return childIntrinsic(lc, b, MaxIntrinsicHeight, width)
}

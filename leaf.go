package rbox

import "image/color"

// FixedBox is a leaf with a fixed natural size. It hugs that size, clamped
// into whatever constraints it receives.
type FixedBox struct {
	Width, Height float64
	Color         color.NRGBA // Fill color; transparent paints nothing
}

// PerformLayout takes the natural size clamped into the constraints.
func (f *FixedBox) PerformLayout(lc *LayoutContext, b *Box) error {
	return b.SetSize(lc, b.constraints.Constrain(NewSize(f.Width, f.Height)))
}

// ComputeMinIntrinsicWidth is the natural width at any height.
func (f *FixedBox) ComputeMinIntrinsicWidth(*LayoutContext, *Box, float64) (float64, error) {
	return f.Width, nil
}

// ComputeMaxIntrinsicWidth is the natural width at any height.
func (f *FixedBox) ComputeMaxIntrinsicWidth(*LayoutContext, *Box, float64) (float64, error) {
	return f.Width, nil
}

// ComputeMinIntrinsicHeight is the natural height at any width.
func (f *FixedBox) ComputeMinIntrinsicHeight(*LayoutContext, *Box, float64) (float64, error) {
	return f.Height, nil
}

// ComputeMaxIntrinsicHeight is the natural height at any width.
func (f *FixedBox) ComputeMaxIntrinsicHeight(*LayoutContext, *Box, float64) (float64, error) {
	return f.Height, nil
}

// Paint fills the box with Color.
func (f *FixedBox) Paint(pc PaintContext, b *Box, offset Offset) {
	paintFill(pc, b, offset, f.Color)
}

// FillBox is sized by its parent: it takes the biggest size the
// constraints allow, falling back to the minimum on unbounded axes.
type FillBox struct {
	Color color.NRGBA
}

// SizedByParent reports true: the size depends only on the constraints.
func (*FillBox) SizedByParent() bool { return true }

// PerformResize returns the maximum on bounded axes and the minimum elsewhere.
func (*FillBox) PerformResize(c Constraints) Size {
	w, h := c.MinWidth, c.MinHeight
	if c.HasBoundedWidth() {
		w = c.MaxWidth
	}
	if c.HasBoundedHeight() {
		h = c.MaxHeight
	}
	return NewSize(w, h)
}

// PerformLayout does nothing; the size was set by PerformResize.
func (*FillBox) PerformLayout(*LayoutContext, *Box) error { return nil }

// HitTestSelf claims every hit inside the box.
func (*FillBox) HitTestSelf(*Box, Offset) bool { return true }

// Paint fills the box with Color.
func (f *FillBox) Paint(pc PaintContext, b *Box, offset Offset) {
	paintFill(pc, b, offset, f.Color)
}

// MeasureFunc measures content for a maximum width, which may be Infinity.
type MeasureFunc func(maxWidth float64) Size

// MeasuredBox delegates sizing to an external measurement service such as
// a paragraph engine.
type MeasuredBox struct {
	Measure MeasureFunc
}

// PerformLayout measures at the maximum width and clamps the result into
// the constraints.
func (m *MeasuredBox) PerformLayout(lc *LayoutContext, b *Box) error {
	c := b.constraints
	return b.SetSize(lc, c.Constrain(m.Measure(c.MaxWidth)))
}

// ComputeMinIntrinsicWidth is the unwrapped width; the measure function
// gives no narrower breakpoint.
func (m *MeasuredBox) ComputeMinIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return m.ComputeMaxIntrinsicWidth(lc, b, height)
}

// ComputeMaxIntrinsicWidth is the width measured at Infinity.
func (m *MeasuredBox) ComputeMaxIntrinsicWidth(_ *LayoutContext, _ *Box, _ float64) (float64, error) {
	return m.Measure(Infinity).Width, nil
}

// ComputeMinIntrinsicHeight is the height measured at width.
func (m *MeasuredBox) ComputeMinIntrinsicHeight(_ *LayoutContext, _ *Box, width float64) (float64, error) {
	return m.Measure(width).Height, nil
}

// ComputeMaxIntrinsicHeight is the height measured at width.
func (m *MeasuredBox) ComputeMaxIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return m.ComputeMinIntrinsicHeight(lc, b, width)
}

func paintFill(pc PaintContext, b *Box, offset Offset, c color.NRGBA) {
	if c.A == 0 || b.size.IsEmpty() {
		return
	}
	pc.DrawRect(rectOf(offset, b.size), Paint{Color: c, Style: PaintFill})
}

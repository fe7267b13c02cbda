package rbox

// Overlay slot names.
const (
	SlotBackground = "background"
	SlotForeground = "foreground"
)

// OverlayBox holds two named slots. The foreground sizes the box; the
// background is then stretched to exactly that size and painted beneath.
type OverlayBox struct{}

func (*OverlayBox) ChildModel() ChildModel { return ChildCustom }

func (*OverlayBox) SlotOrder() []string { return []string{SlotBackground, SlotForeground} }

// PerformLayout sizes to the foreground, then lays the background out
// tightly at that size.
func (*OverlayBox) PerformLayout(lc *LayoutContext, b *Box) error {
	c := b.constraints
	size := c.Smallest()
	if fg := b.Slot(SlotForeground); fg != nil {
		if _, err := lc.LayoutChild(fg, c.Loosen(), true); err != nil {
			return err
		}
		s, err := lc.ChildSize(fg)
		if err != nil {
			return err
		}
		size = c.Constrain(s)
		fg.SetOffset(Offset{})
	}
	if bg := b.Slot(SlotBackground); bg != nil {
		// The background never influences our size.
		if _, err := lc.LayoutChild(bg, Tight(size), false); err != nil {
			return err
		}
		bg.SetOffset(Offset{})
	}
	return b.SetSize(lc, size)
}

func (*OverlayBox) foreground(lc *LayoutContext, b *Box, dim IntrinsicDimension, arg float64) (float64, error) {
	fg := b.Slot(SlotForeground)
	if fg == nil {
		return 0, nil
	}
	return fg.Intrinsic(lc, dim, arg)
}

// ComputeMinIntrinsicWidth and the other intrinsics measure the foreground only.
func (o *OverlayBox) ComputeMinIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return o.foreground(lc, b, MinIntrinsicWidth, height)
}

func (o *OverlayBox) ComputeMaxIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	return o.foreground(lc, b, MaxIntrinsicWidth, height)
}

func (o *OverlayBox) ComputeMinIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return o.foreground(lc, b, MinIntrinsicHeight, width)
}

func (o *OverlayBox) ComputeMaxIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	return o.foreground(lc, b, MaxIntrinsicHeight, width)
}

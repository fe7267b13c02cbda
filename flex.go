package rbox

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// CrossAlign specifies how children are positioned on the cross axis.
type CrossAlign uint8

const (
	CrossStart   CrossAlign = iota // Align to start of cross axis
	CrossCenter                    // Center on cross axis
	CrossEnd                       // Align to end of cross axis
	CrossStretch                   // Force children to fill the cross axis
)

// FlexBox lays its ordered children out in a line. Children with a zero
// flex factor size themselves with an unbounded main axis; the remaining
// space is then split between flex children in proportion to their
// factors, each receiving a tight main-axis constraint.
type FlexBox struct {
	Direction  Direction
	Gap        float64
	CrossAlign CrossAlign
}

// ChildModel reports ChildOrdered.
func (*FlexBox) ChildModel() ChildModel { return ChildOrdered }

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on boxes.
type flexItem struct {
	box   *Box
	flex  float64
	main  float64
	cross float64
}

func (f *FlexBox) isRow() bool { return f.Direction == Row }

// axes splits constraints into main-axis and cross-axis (min, max) pairs.
func (f *FlexBox) axes(c Constraints) (minMain, maxMain, minCross, maxCross float64) {
	if f.isRow() {
		return c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight
	}
	return c.MinHeight, c.MaxHeight, c.MinWidth, c.MaxWidth
}

// childConstraints builds constraints from main/cross ranges.
func (f *FlexBox) childConstraints(minMain, maxMain, minCross, maxCross float64) Constraints {
	if f.isRow() {
		return NewConstraints(minMain, maxMain, minCross, maxCross)
	}
	return NewConstraints(minCross, maxCross, minMain, maxMain)
}

func (f *FlexBox) split(s Size) (main, cross float64) {
	if f.isRow() {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func (f *FlexBox) join(main, cross float64) Size {
	if f.isRow() {
		return NewSize(main, cross)
	}
	return NewSize(cross, main)
}

// PerformLayout lays out inflexible children first, shares the remaining
// main-axis space among flexible children by flex factor, then packs
// everything from the main-axis start and aligns it on the cross axis.
func (f *FlexBox) PerformLayout(lc *LayoutContext, b *Box) error {
	c := b.constraints
	_, maxMain, _, maxCross := f.axes(c)
	stretch := f.CrossAlign == CrossStretch && isFinite(maxCross)

	crossRange := func() (float64, float64) {
		if stretch {
			return maxCross, maxCross
		}
		return 0, maxCross
	}

	children := b.Children()
	items := make([]flexItem, len(children))
	totalGap := f.Gap * float64(max(0, len(children)-1))
	allocated := totalGap
	totalFlex := 0.0

	// Phase 1: inflexible children size themselves
	for i, child := range children {
		items[i].box = child
		items[i].flex = child.FlexData().Flex
		if items[i].flex > 0 {
			totalFlex += items[i].flex
			continue
		}
		lo, hi := crossRange()
		if err := f.layoutItem(lc, &items[i], f.childConstraints(0, Infinity, lo, hi)); err != nil {
			return err
		}
		allocated += items[i].main
	}

	// Phase 2: distribute the remaining space to flex children
	if totalFlex > 0 {
		if !isFinite(maxMain) {
			return newError(ErrCodeProtocol, b,
				"flex children were given an unbounded main axis; a flex factor needs a finite maximum to divide")
		}
		free := max(0, maxMain-allocated)
		for i := range items {
			if items[i].flex <= 0 {
				continue
			}
			share := free * items[i].flex / totalFlex
			lo, hi := crossRange()
			if err := f.layoutItem(lc, &items[i], f.childConstraints(share, share, lo, hi)); err != nil {
				return err
			}
			allocated += items[i].main
		}
	}

	// Phase 3: size the box
	cross := 0.0
	for i := range items {
		cross = max(cross, items[i].cross)
	}
	main := allocated
	if totalFlex > 0 {
		main = maxMain
	}
	size := c.Constrain(f.join(main, cross))
	_, boxCross := f.split(size)

	// Phase 4: pack children at the main-axis start
	pos := 0.0
	for i := range items {
		crossPos := calculateCrossOffset(f.CrossAlign, boxCross, items[i].cross)
		if f.isRow() {
			items[i].box.SetOffset(Offset{X: pos, Y: crossPos})
		} else {
			items[i].box.SetOffset(Offset{X: crossPos, Y: pos})
		}
		pos += items[i].main + f.Gap
	}

	return b.SetSize(lc, size)
}

func (f *FlexBox) layoutItem(lc *LayoutContext, item *flexItem, c Constraints) error {
	if _, err := lc.LayoutChild(item.box, c, true); err != nil {
		return err
	}
	s, err := lc.ChildSize(item.box)
	if err != nil {
		return err
	}
	item.main, item.cross = f.split(s)
	return nil
}

// calculateCrossOffset returns the offset for positioning a child on the cross axis.
func calculateCrossOffset(align CrossAlign, crossSize, itemSize float64) float64 {
	switch align {
	case CrossEnd:
		return crossSize - itemSize
	case CrossCenter:
		return (crossSize - itemSize) / 2
	default: // CrossStart, CrossStretch
		return 0
	}
}

// mainIntrinsic sums the children's measurements along the main axis.
func (f *FlexBox) mainIntrinsic(lc *LayoutContext, b *Box, dim IntrinsicDimension, arg float64) (float64, error) {
	children := b.Children()
	total := f.Gap * float64(max(0, len(children)-1))
	for _, c := range children {
		v, err := c.Intrinsic(lc, dim, arg)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// crossIntrinsic takes the largest child measurement across the main axis.
func (f *FlexBox) crossIntrinsic(lc *LayoutContext, b *Box, dim IntrinsicDimension) (float64, error) {
	best := 0.0
	for _, c := range b.Children() {
		v, err := c.Intrinsic(lc, dim, Infinity)
		if err != nil {
			return 0, err
		}
		best = max(best, v)
	}
	return best, nil
}

// ComputeMinIntrinsicWidth sums the children in a row and takes the widest
// child in a column.
func (f *FlexBox) ComputeMinIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	if f.isRow() {
		return f.mainIntrinsic(lc, b, MinIntrinsicWidth, height)
	}
	return f.crossIntrinsic(lc, b, MinIntrinsicWidth)
}

// ComputeMaxIntrinsicWidth sums the children in a row and takes the widest
// child in a column.
func (f *FlexBox) ComputeMaxIntrinsicWidth(lc *LayoutContext, b *Box, height float64) (float64, error) {
	if f.isRow() {
		return f.mainIntrinsic(lc, b, MaxIntrinsicWidth, height)
	}
	return f.crossIntrinsic(lc, b, MaxIntrinsicWidth)
}

// ComputeMinIntrinsicHeight sums the children in a column and takes the
// tallest child in a row.
func (f *FlexBox) ComputeMinIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	if f.isRow() {
		return f.crossIntrinsic(lc, b, MinIntrinsicHeight)
	}
	return f.mainIntrinsic(lc, b, MinIntrinsicHeight, width)
}

// ComputeMaxIntrinsicHeight sums the children in a column and takes the
// tallest child in a row.
func (f *FlexBox) ComputeMaxIntrinsicHeight(lc *LayoutContext, b *Box, width float64) (float64, error) {
	if f.isRow() {
		return f.crossIntrinsic(lc, b, MaxIntrinsicHeight)
	}
	return f.mainIntrinsic(lc, b, MaxIntrinsicHeight, width)
}

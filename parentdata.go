package rbox

// ParentData is the per-child data a parent keeps on each child. Its
// concrete type follows from the parent's [ChildModel] and is fixed when
// the child is attached.
type ParentData interface {
	box() *BoxParentData
}

// BoxParentData positions a child inside a single-child parent.
type BoxParentData struct {
	// Offset is the child's top-left corner in the parent's coordinates.
	Offset Offset
}

func (d *BoxParentData) box() *BoxParentData { return d }

// FlexParentData is the parent data of children in an ordered list.
type FlexParentData struct {
	BoxParentData
	// Flex is the child's share of free main-axis space; zero means the
	// child sizes itself.
	Flex float64
}

// SlotParentData is the parent data of children held in named slots.
type SlotParentData struct {
	BoxParentData
	Slot string
}

func newParentData(m ChildModel) ParentData {
	switch m {
	case ChildOrdered:
		return &FlexParentData{}
	case ChildCustom:
		return &SlotParentData{}
	default:
		return &BoxParentData{}
	}
}

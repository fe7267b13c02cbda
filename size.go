package rbox

import "fmt"

// Size is the layout result of a box.
//
// A Size handed out by the engine remembers which box produced it and
// whether that box's parent declared it would use the size. The ownership
// ledger uses this provenance in diagnostic mode; it is ignored by [Size.Equal].
type Size struct {
	Width, Height float64

	owner          *Box
	usableByParent bool
}

// NewSize returns a Size with no provenance.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// ZeroSize is the empty size.
var ZeroSize = Size{}

// Equal reports whether both sizes have the same dimensions.
func (s Size) Equal(other Size) bool {
	return s.Width == other.Width && s.Height == other.Height
}

// IsFinite reports whether neither dimension is infinite or NaN.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Owner returns the box that produced this size, or nil for a size built
// with [NewSize].
func (s Size) Owner() *Box {
	return s.owner
}

// UsableByParent reports whether the owner's parent declared parentUsesSize
// when it laid the owner out.
func (s Size) UsableByParent() bool {
	return s.usableByParent
}

// Bare strips provenance, leaving only the dimensions.
func (s Size) Bare() Size {
	return Size{Width: s.Width, Height: s.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("Size(%.1f, %.1f)", s.Width, s.Height)
}

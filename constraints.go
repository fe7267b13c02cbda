package rbox

import (
	"fmt"
	"math"
	"strconv"
)

// Constraints is the closed range [MinWidth, MaxWidth] x [MinHeight, MaxHeight]
// that a parent imposes on a child's size. A max of [Infinity] is unbounded.
//
// Constraints are values; every method returns a new Constraints.
type Constraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// NewConstraints creates Constraints from explicit bounds.
func NewConstraints(minWidth, maxWidth, minHeight, maxHeight float64) Constraints {
	return Constraints{MinWidth: minWidth, MaxWidth: maxWidth, MinHeight: minHeight, MaxHeight: maxHeight}
}

// Tight returns constraints satisfied only by s.
func Tight(s Size) Constraints {
	return Constraints{MinWidth: s.Width, MaxWidth: s.Width, MinHeight: s.Height, MaxHeight: s.Height}
}

// TightFor returns constraints that are tight on the given axes.
// A NaN argument leaves that axis unconstrained.
func TightFor(width, height float64) Constraints {
	c := Unbounded()
	if !math.IsNaN(width) {
		c.MinWidth, c.MaxWidth = width, width
	}
	if !math.IsNaN(height) {
		c.MinHeight, c.MaxHeight = height, height
	}
	return c
}

// Loose returns constraints that forbid sizes larger than s.
func Loose(s Size) Constraints {
	return Constraints{MaxWidth: s.Width, MaxHeight: s.Height}
}

// Unbounded returns constraints that accept any size.
func Unbounded() Constraints {
	return Constraints{MaxWidth: Infinity, MaxHeight: Infinity}
}

// Expand returns constraints that demand an infinite size, so that
// enforcing them against finite constraints yields the biggest size.
func Expand() Constraints {
	return Constraints{MinWidth: Infinity, MaxWidth: Infinity, MinHeight: Infinity, MaxHeight: Infinity}
}

// IsNormalized reports whether every bound is non-negative, min <= max on
// each axis and the minimums are finite.
func (c Constraints) IsNormalized() bool {
	return len(c.problems()) == 0
}

// Validate returns a precondition error listing every malformed bound.
func (c Constraints) Validate() error {
	problems := c.problems()
	if len(problems) == 0 {
		return nil
	}
	return &Error{
		Code:     ErrCodePrecondition,
		Message:  fmt.Sprintf("malformed constraints %s", c),
		Failures: problems,
	}
}

func (c Constraints) problems() []string {
	var out []string
	check := func(axis string, lo, hi float64) {
		switch {
		case math.IsNaN(lo) || math.IsNaN(hi):
			out = append(out, fmt.Sprintf("%s bound is NaN", axis))
			return
		case lo < 0:
			out = append(out, fmt.Sprintf("min%s %v is negative", axis, lo))
		case math.IsInf(lo, 1):
			out = append(out, fmt.Sprintf("min%s is infinite", axis))
		}
		if lo > hi {
			out = append(out, fmt.Sprintf("min%s %v exceeds max%s %v", axis, lo, axis, hi))
		}
	}
	check("Width", c.MinWidth, c.MaxWidth)
	check("Height", c.MinHeight, c.MaxHeight)
	return out
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool { return !math.IsInf(c.MaxWidth, 1) }

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool { return !math.IsInf(c.MaxHeight, 1) }

// HasTightWidth reports whether exactly one width is admissible.
func (c Constraints) HasTightWidth() bool { return c.MinWidth >= c.MaxWidth }

// HasTightHeight reports whether exactly one height is admissible.
func (c Constraints) HasTightHeight() bool { return c.MinHeight >= c.MaxHeight }

// IsTight reports whether exactly one size is admissible.
func (c Constraints) IsTight() bool { return c.HasTightWidth() && c.HasTightHeight() }

// IsSatisfiedBy reports whether s lies inside the constraints.
func (c Constraints) IsSatisfiedBy(s Size) bool {
	return c.MinWidth <= s.Width && s.Width <= c.MaxWidth &&
		c.MinHeight <= s.Height && s.Height <= c.MaxHeight
}

// ConstrainWidth clamps w into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(w float64) float64 {
	return clamp(w, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps h into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(h float64) float64 {
	return clamp(h, c.MinHeight, c.MaxHeight)
}

// Constrain returns the size closest to s that satisfies the constraints.
func (c Constraints) Constrain(s Size) Size {
	return NewSize(c.ConstrainWidth(s.Width), c.ConstrainHeight(s.Height))
}

// Smallest returns the smallest admissible size.
func (c Constraints) Smallest() Size {
	return NewSize(c.MinWidth, c.MinHeight)
}

// Biggest returns the largest admissible size; unbounded axes stay infinite.
func (c Constraints) Biggest() Size {
	return NewSize(c.MaxWidth, c.MaxHeight)
}

// Loosen drops the minimums to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Enforce returns c clamped so that it fits inside outer.
func (c Constraints) Enforce(outer Constraints) Constraints {
	return Constraints{
		MinWidth:  clamp(c.MinWidth, outer.MinWidth, outer.MaxWidth),
		MaxWidth:  clamp(c.MaxWidth, outer.MinWidth, outer.MaxWidth),
		MinHeight: clamp(c.MinHeight, outer.MinHeight, outer.MaxHeight),
		MaxHeight: clamp(c.MaxHeight, outer.MinHeight, outer.MaxHeight),
	}
}

// Deflate shrinks the constraints by the given insets, never below zero.
func (c Constraints) Deflate(e Edges) Constraints {
	h, v := e.Horizontal(), e.Vertical()
	minW := max(0, c.MinWidth-h)
	minH := max(0, c.MinHeight-v)
	return Constraints{
		MinWidth:  minW,
		MaxWidth:  max(minW, c.MaxWidth-h),
		MinHeight: minH,
		MaxHeight: max(minH, c.MaxHeight-v),
	}
}

// TightenWidth makes the width tight at w, clamped into the current range.
func (c Constraints) TightenWidth(w float64) Constraints {
	w = c.ConstrainWidth(w)
	c.MinWidth, c.MaxWidth = w, w
	return c
}

// TightenHeight makes the height tight at h, clamped into the current range.
func (c Constraints) TightenHeight(h float64) Constraints {
	h = c.ConstrainHeight(h)
	c.MinHeight, c.MaxHeight = h, h
	return c
}

// Equal reports whether both constraints admit the same sizes.
func (c Constraints) Equal(other Constraints) bool {
	return c == other
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(%s, %s)",
		axisString("w", c.MinWidth, c.MaxWidth),
		axisString("h", c.MinHeight, c.MaxHeight))
}

func axisString(name string, lo, hi float64) string {
	if lo == hi {
		return name + "=" + formatBound(lo)
	}
	return formatBound(lo) + "<=" + name + "<=" + formatBound(hi)
}

func formatBound(v float64) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// clamp restricts v to the range [lo, hi].
// If lo > hi, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

package rbox

import (
	"fmt"
	"strings"
)

// validateSize runs the checks that apply right after a resize step.
func (lc *LayoutContext) validateSize(b *Box) error {
	if !b.hasSize {
		return sizeNotSetError(b)
	}
	if failures := sizeFailures(b); len(failures) > 0 {
		return &Error{
			Code:     ErrCodePostcondition,
			Message:  fmt.Sprintf("%s violated its constraints during resize", b.Kind()),
			Node:     b.String(),
			Failures: failures,
		}
	}
	return nil
}

// validate runs after a box's layout step. Every failing check is collected
// into a single report rather than stopping at the first one.
func (lc *LayoutContext) validate(b *Box) error {
	if !b.hasSize {
		return sizeNotSetError(b)
	}
	failures := sizeFailures(b)
	if lc.Diagnostics.CheckIntrinsics && !lc.checkingIntrinsics {
		failures = append(failures, lc.intrinsicFailures(b)...)
	}
	if len(failures) == 0 {
		return nil
	}
	noun := "failure"
	if len(failures) > 1 {
		noun = "failures"
	}
	return &Error{
		Code:     ErrCodePostcondition,
		Message:  fmt.Sprintf("%s broke the layout protocol; %d %s detected", b.Kind(), len(failures), noun),
		Node:     b.String(),
		Failures: failures,
	}
}

func sizeNotSetError(b *Box) *Error {
	contract := "because this box has sizedByParent set to false, it must set its size in PerformLayout"
	if b.sizedByParent {
		contract = "because this box has sizedByParent set to true, it must return its size from PerformResize"
	}
	return newError(ErrCodePostcondition, b,
		"%s did not set its size during layout; %s", b.Kind(), contract)
}

func sizeFailures(b *Box) []string {
	var failures []string
	c := b.constraints
	s := b.size
	if !s.IsFinite() {
		var info strings.Builder
		if !c.HasBoundedWidth() {
			fmt.Fprintf(&info, "; the nearest ancestor providing an unbounded width constraint is %s",
				nearestUnbounded(b, Constraints.HasBoundedWidth))
		}
		if !c.HasBoundedHeight() {
			fmt.Fprintf(&info, "; the nearest ancestor providing an unbounded height constraint is %s",
				nearestUnbounded(b, Constraints.HasBoundedHeight))
		}
		failures = append(failures, fmt.Sprintf(
			"%s was given an infinite size %s under %s; it probably tries to be as big as possible "+
				"inside a parent that lets children pick their own size%s",
			b.Kind(), s, c, info.String()))
	}
	if !c.IsSatisfiedBy(s) {
		failures = append(failures, fmt.Sprintf("%s does not meet its constraints: %s, %s", b.Kind(), c, s))
	}
	return failures
}

// nearestUnbounded walks up while the axis stays unbounded and returns the
// first ancestor that has bounded constraints itself, or the root.
func nearestUnbounded(b *Box, bounded func(Constraints) bool) *Box {
	n := b
	for !bounded(n.constraints) && n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// intrinsicFailures probes all four intrinsic queries at Infinity and, when
// the input axis is bounded, at its current maximum. The probes bypass the
// cache.
func (lc *LayoutContext) intrinsicFailures(b *Box) []string {
	lc.checkingIntrinsics = true
	defer func() { lc.checkingIntrinsics = false }()

	var failures []string
	probe := func(dim IntrinsicDimension, arg float64) (float64, bool) {
		v, err := b.computeIntrinsic(lc, dim, arg)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s(%s) failed: %v", dim, formatBound(arg), err))
			return 0, false
		}
		ok := true
		if v < 0 {
			failures = append(failures, fmt.Sprintf("%s(%s) returned a negative value: %v", dim, formatBound(arg), v))
			ok = false
		}
		if !isFinite(v) {
			failures = append(failures, fmt.Sprintf("%s(%s) returned a non-finite value: %v", dim, formatBound(arg), v))
			ok = false
		}
		return v, ok
	}
	pair := func(minDim, maxDim IntrinsicDimension, arg float64) {
		lo, okLo := probe(minDim, arg)
		hi, okHi := probe(maxDim, arg)
		if okLo && okHi && lo > hi {
			failures = append(failures, fmt.Sprintf(
				"%s(%s) returned a larger value (%v) than %s(%s) (%v)",
				minDim, formatBound(arg), lo, maxDim, formatBound(arg), hi))
		}
	}

	pair(MinIntrinsicWidth, MaxIntrinsicWidth, Infinity)
	pair(MinIntrinsicHeight, MaxIntrinsicHeight, Infinity)
	if b.constraints.HasBoundedHeight() {
		pair(MinIntrinsicWidth, MaxIntrinsicWidth, b.constraints.MaxHeight)
	}
	if b.constraints.HasBoundedWidth() {
		pair(MinIntrinsicHeight, MaxIntrinsicHeight, b.constraints.MaxWidth)
	}
	return failures
}

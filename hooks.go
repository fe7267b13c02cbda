package rbox

import "time"

// Hooks receives events from the layout engine. Implementations must be
// cheap; they run inside the layout recursion.
type Hooks interface {
	// OnLayout fires after a box completes a non-memoized layout.
	OnLayout(b *Box, c Constraints, s Size)

	// OnMemoHit fires when Layout is skipped because the box is clean and
	// the constraints are unchanged.
	OnMemoHit(b *Box)

	// OnIntrinsic fires for every cached intrinsic query.
	OnIntrinsic(b *Box, dim IntrinsicDimension, cached bool)

	// OnFlush fires when an Owner finishes a layout pass.
	OnFlush(pass string, d time.Duration, err error)
}

// NoopHooks is the default Hooks implementation.
type NoopHooks struct{}

func (NoopHooks) OnLayout(*Box, Constraints, Size)           {}
func (NoopHooks) OnMemoHit(*Box)                             {}
func (NoopHooks) OnIntrinsic(*Box, IntrinsicDimension, bool) {}
func (NoopHooks) OnFlush(string, time.Duration, error)       {}

package rbox

import (
	"io"

	"github.com/charmbracelet/log"
)

// Phase is the step a box is currently running.
type Phase uint8

const (
	PhaseIdle   Phase = iota // No layout running
	PhaseResize              // Inside PerformResize of the active box
	PhaseLayout              // Inside PerformLayout of the active box
)

func (p Phase) String() string {
	switch p {
	case PhaseResize:
		return "resize"
	case PhaseLayout:
		return "layout"
	default:
		return "idle"
	}
}

// Diagnostics toggles the development-time checks. All of them are
// compiled out by the rbox_release build tag regardless of these values.
type Diagnostics struct {
	// Enabled turns on post-layout validation and the size ownership ledger.
	Enabled bool
	// CheckIntrinsics additionally queries all four intrinsic dimensions
	// after each layout and reports inconsistent results.
	CheckIntrinsics bool
	// PaintSize outlines every box when painting.
	PaintSize bool
	// PaintBaselines draws the baseline of boxes that report one.
	PaintBaselines bool
	// PaintPointers shades boxes that have active pointers.
	PaintPointers bool
}

// DefaultDiagnostics returns the development defaults: validation on,
// everything else off.
func DefaultDiagnostics() Diagnostics {
	return Diagnostics{Enabled: true}
}

// DiagnosticsCompiled reports whether this build includes the diagnostic
// layer. It is false under the rbox_release build tag.
func DiagnosticsCompiled() bool {
	return debugBuild
}

// Stats counts engine work since the context was created.
type Stats struct {
	Layouts         int // Non-memoized layouts
	Resizes         int // Resize fast-path invocations
	MemoHits        int // Layout calls skipped by constraint equality
	IntrinsicHits   int // Intrinsic queries answered from cache
	IntrinsicMisses int // Intrinsic queries computed
}

type frame struct {
	box   *Box
	phase Phase
}

// LayoutContext carries the state of a layout pass through the recursion:
// which box is running which step, the diagnostic toggles, the logger and
// the hooks. It replaces process-wide debug flags; a context belongs to one
// pass at a time and is not safe for concurrent use.
type LayoutContext struct {
	Diagnostics Diagnostics

	logger *log.Logger
	hooks  Hooks
	stack  []frame
	stats  Stats

	checkingIntrinsics bool
}

// ContextOption configures a LayoutContext.
type ContextOption func(*LayoutContext)

// WithDiagnostics sets the diagnostic toggles.
func WithDiagnostics(d Diagnostics) ContextOption {
	return func(lc *LayoutContext) {
		lc.Diagnostics = d
	}
}

// WithLogger sets the logger used for layout tracing at debug level.
func WithLogger(l *log.Logger) ContextOption {
	return func(lc *LayoutContext) {
		if l != nil {
			lc.logger = l
		}
	}
}

// WithHooks registers engine event hooks.
func WithHooks(h Hooks) ContextOption {
	return func(lc *LayoutContext) {
		if h != nil {
			lc.hooks = h
		}
	}
}

// NewLayoutContext creates a context with [DefaultDiagnostics], a discarding
// logger and no-op hooks.
func NewLayoutContext(opts ...ContextOption) *LayoutContext {
	lc := &LayoutContext{
		Diagnostics: DefaultDiagnostics(),
		logger:      log.New(io.Discard),
		hooks:       NoopHooks{},
	}
	for _, opt := range opts {
		opt(lc)
	}
	return lc
}

// Logger returns the context's logger.
func (lc *LayoutContext) Logger() *log.Logger {
	return lc.logger
}

// Stats returns a snapshot of the work counters.
func (lc *LayoutContext) Stats() Stats {
	return lc.stats
}

// Active returns the box whose resize or layout step is running, or nil.
func (lc *LayoutContext) Active() *Box {
	if len(lc.stack) == 0 {
		return nil
	}
	return lc.stack[len(lc.stack)-1].box
}

// Phase returns the step the active box is running.
func (lc *LayoutContext) Phase() Phase {
	if len(lc.stack) == 0 {
		return PhaseIdle
	}
	return lc.stack[len(lc.stack)-1].phase
}

// CheckingIntrinsics reports whether the validator is probing intrinsic
// dimensions. Intrinsic queries bypass the cache while this is set.
func (lc *LayoutContext) CheckingIntrinsics() bool {
	return lc.checkingIntrinsics
}

func (lc *LayoutContext) push(b *Box, p Phase) {
	lc.stack = append(lc.stack, frame{box: b, phase: p})
}

func (lc *LayoutContext) pop() {
	lc.stack = lc.stack[:len(lc.stack)-1]
}

// diagnosing reports whether validation and the ledger are active.
func (lc *LayoutContext) diagnosing() bool {
	return debugBuild && lc.Diagnostics.Enabled
}

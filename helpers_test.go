package rbox

import (
	"testing"
	"time"
)

// layoutFunc adapts a closure to Renderer.
type layoutFunc func(lc *LayoutContext, b *Box) error

func (f layoutFunc) PerformLayout(lc *LayoutContext, b *Box) error { return f(lc, b) }

// stubRenderer hugs a fixed size and reports configurable intrinsics,
// counting how often each step runs.
type stubRenderer struct {
	size                   Size
	minW, maxW, minH, maxH float64

	layouts    int
	intrinsics int
}

func (s *stubRenderer) PerformLayout(lc *LayoutContext, b *Box) error {
	s.layouts++
	c, _ := b.Constraints()
	return b.SetSize(lc, c.Constrain(s.size))
}

func (s *stubRenderer) ComputeMinIntrinsicWidth(*LayoutContext, *Box, float64) (float64, error) {
	s.intrinsics++
	return s.minW, nil
}

func (s *stubRenderer) ComputeMaxIntrinsicWidth(*LayoutContext, *Box, float64) (float64, error) {
	s.intrinsics++
	return s.maxW, nil
}

func (s *stubRenderer) ComputeMinIntrinsicHeight(*LayoutContext, *Box, float64) (float64, error) {
	s.intrinsics++
	return s.minH, nil
}

func (s *stubRenderer) ComputeMaxIntrinsicHeight(*LayoutContext, *Box, float64) (float64, error) {
	s.intrinsics++
	return s.maxH, nil
}

// sizedStub is a sizedByParent renderer whose resize returns a fixed size.
type sizedStub struct {
	size    Size
	resizes int
}

func (*sizedStub) SizedByParent() bool { return true }

func (s *sizedStub) PerformResize(Constraints) Size {
	s.resizes++
	return s.size
}

func (*sizedStub) PerformLayout(*LayoutContext, *Box) error { return nil }

// proxyStub lays out its only child with the incoming constraints and a
// configurable parentUsesSize, then runs after.
type proxyStub struct {
	singleChild
	usesSize bool
	after    func(lc *LayoutContext, b *Box, childSize Size) error
}

func (p *proxyStub) PerformLayout(lc *LayoutContext, b *Box) error {
	c, _ := b.Constraints()
	s, err := lc.LayoutChild(b.Child(), c, p.usesSize)
	if err != nil {
		return err
	}
	if p.after != nil {
		return p.after(lc, b, s)
	}
	return b.SetSize(lc, c.Smallest())
}

func loose(w, h float64) Constraints {
	return Loose(NewSize(w, h))
}

func newRoot(t *testing.T, tree *Tree, r Renderer, opts ...BoxOption) *Box {
	t.Helper()
	b := tree.NewBox(r, opts...)
	if err := tree.SetRoot(b); err != nil {
		t.Fatalf("SetRoot() error = %v", err)
	}
	return b
}

func mustAppend(t *testing.T, parent, child *Box) {
	t.Helper()
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild() error = %v", err)
	}
}

func wantCode(t *testing.T, err error, code Code) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !Is(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}
	return err.(*Error)
}

type drawnRect struct {
	rect  Rect
	paint Paint
}

// recordingCanvas captures draw calls in order.
type recordingCanvas struct {
	rects []drawnRect
	paths []Path
}

func (c *recordingCanvas) DrawRect(r Rect, p Paint) {
	c.rects = append(c.rects, drawnRect{rect: r, paint: p})
}

func (c *recordingCanvas) DrawPath(path Path, _ Paint) {
	c.paths = append(c.paths, path)
}

// countingHooks records engine events.
type countingHooks struct {
	layouts    int
	memoHits   int
	cacheHits  int
	cacheMiss  int
	flushes    int
	lastErr    error
	lastPassID string
}

func (h *countingHooks) OnLayout(*Box, Constraints, Size) { h.layouts++ }
func (h *countingHooks) OnMemoHit(*Box)                   { h.memoHits++ }

func (h *countingHooks) OnIntrinsic(_ *Box, _ IntrinsicDimension, cached bool) {
	if cached {
		h.cacheHits++
	} else {
		h.cacheMiss++
	}
}

func (h *countingHooks) OnFlush(pass string, _ time.Duration, err error) {
	h.flushes++
	h.lastPassID = pass
	h.lastErr = err
}

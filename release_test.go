//go:build rbox_release

package rbox

import "testing"

func TestRelease_DiagnosticsCompiledOut(t *testing.T) {
	if DiagnosticsCompiled() {
		t.Fatal("DiagnosticsCompiled() = true under rbox_release")
	}

	tree := NewTree()
	root := newRoot(t, tree, &proxyStub{usesSize: false, after: func(lc *LayoutContext, b *Box, s Size) error {
		return b.SetSize(lc, NewSize(s.Width*10, s.Height))
	}})
	mustAppend(t, root, tree.NewBox(&FixedBox{Width: 20, Height: 10}))

	lc := NewLayoutContext(WithDiagnostics(Diagnostics{Enabled: true, CheckIntrinsics: true, PaintSize: true}))
	if err := root.Layout(lc, loose(100, 100), false); err != nil {
		t.Fatalf("Layout() error = %v, want validation compiled out", err)
	}
	if !root.Size().Equal(NewSize(200, 10)) {
		t.Errorf("Size() = %v", root.Size())
	}

	canvas := &recordingCanvas{}
	root.Paint(lc, canvas, Offset{})
	if len(canvas.rects) != 0 {
		t.Errorf("debug overlays painted %d rects in a release build", len(canvas.rects))
	}
}

func TestRelease_PreconditionsStayOn(t *testing.T) {
	tree := NewTree()
	root := newRoot(t, tree, &FixedBox{})
	lc := NewLayoutContext()

	wantCode(t, root.Layout(lc, NewConstraints(10, 5, 0, 0), false), ErrCodePrecondition)
	_, err := root.MinIntrinsicWidth(lc, -1)
	wantCode(t, err, ErrCodePrecondition)
}

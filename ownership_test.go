//go:build !rbox_release

package rbox

import (
	"strings"
	"testing"
)

func TestOwnership_ParentUsesSize(t *testing.T) {
	type tc struct {
		usesSize bool
		after    func(lc *LayoutContext, b *Box, childSize Size) error
		wantCode Code
	}

	readChild := func(lc *LayoutContext, b *Box, _ Size) error {
		if _, err := lc.ChildSize(b.Child()); err != nil {
			return err
		}
		return b.SetSize(lc, ZeroSize)
	}
	adoptChild := func(lc *LayoutContext, b *Box, s Size) error {
		return b.SetSize(lc, s)
	}

	tests := map[string]tc{
		"read with parentUsesSize": {
			usesSize: true,
			after:    readChild,
		},
		"read without parentUsesSize": {
			usesSize: false,
			after:    readChild,
			wantCode: ErrCodeOwnership,
		},
		"adopt with parentUsesSize": {
			usesSize: true,
			after:    adoptChild,
		},
		"adopt without parentUsesSize": {
			usesSize: false,
			after:    adoptChild,
			wantCode: ErrCodeOwnership,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := newRoot(t, tree, &proxyStub{usesSize: tt.usesSize, after: tt.after}, WithLabel("parent"))
			child := tree.NewBox(&FixedBox{Width: 10, Height: 10}, WithLabel("child"))
			mustAppend(t, root, child)

			err := root.Layout(NewLayoutContext(), loose(100, 100), false)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Layout() error = %v", err)
				}
				if child.Size().UsableByParent() != tt.usesSize {
					t.Errorf("UsableByParent() = %v, want %v", child.Size().UsableByParent(), tt.usesSize)
				}
				return
			}
			e := wantCode(t, err, tt.wantCode)
			if e.Node != child.String() || e.Reader != root.String() {
				t.Errorf("Node/Reader = %q/%q, want %q/%q", e.Node, e.Reader, child.String(), root.String())
			}
			if !strings.Contains(e.Message, "parentUsesSize") {
				t.Errorf("Message = %q, want a hint about parentUsesSize", e.Message)
			}
		})
	}
}

func TestOwnership_ProvenanceStamps(t *testing.T) {
	tree := NewTree()
	root := newRoot(t, tree, &PaddingBox{})
	child := tree.NewBox(&FixedBox{Width: 10, Height: 10})
	mustAppend(t, root, child)

	lc := NewLayoutContext()
	if err := root.Layout(lc, loose(100, 100), false); err != nil {
		t.Fatal(err)
	}

	if child.Size().Owner() != child {
		t.Errorf("child Size().Owner() = %v, want %v", child.Size().Owner(), child)
	}
	if root.Size().Owner() != root {
		t.Errorf("adopted size was not re-stamped: Owner() = %v", root.Size().Owner())
	}
	if root.Size().UsableByParent() {
		t.Error("root size marked usable although laid out with parentUsesSize=false")
	}
	if NewSize(1, 1).Owner() != nil {
		t.Error("NewSize() carries an owner")
	}
	if bare := child.Size().Bare(); bare.Owner() != nil || !bare.Equal(child.Size()) {
		t.Errorf("Bare() = %#v", bare)
	}
}

func TestOwnership_MemoHitRestamps(t *testing.T) {
	tree := NewTree()
	proxy := &proxyStub{usesSize: true}
	root := newRoot(t, tree, proxy)
	child := tree.NewBox(&FixedBox{Width: 10, Height: 10})
	mustAppend(t, root, child)

	lc := NewLayoutContext()
	if err := root.Layout(lc, loose(100, 100), false); err != nil {
		t.Fatal(err)
	}

	// Same constraints, but the parent no longer declares it uses the size.
	proxy.usesSize = false
	proxy.after = func(lc *LayoutContext, b *Box, s Size) error {
		return b.SetSize(lc, s)
	}
	root.MarkNeedsLayout()
	err := root.Layout(lc, loose(100, 100), false)
	wantCode(t, err, ErrCodeOwnership)
	if lc.Stats().MemoHits != 1 {
		t.Errorf("Stats().MemoHits = %d, want the child to be memoized", lc.Stats().MemoHits)
	}
}

func TestOwnership_GrandparentRead(t *testing.T) {
	tree := NewTree()
	var leaf *Box
	root := newRoot(t, tree, &proxyStub{usesSize: true, after: func(lc *LayoutContext, b *Box, _ Size) error {
		if _, err := lc.ChildSize(leaf); err != nil {
			return err
		}
		return b.SetSize(lc, ZeroSize)
	}})
	mid := tree.NewBox(&proxyStub{usesSize: true})
	leaf = tree.NewBox(&FixedBox{Width: 5, Height: 5})
	mustAppend(t, root, mid)
	mustAppend(t, mid, leaf)

	e := wantCode(t, root.Layout(NewLayoutContext(), loose(10, 10), false), ErrCodeOwnership)
	if e.Reader != root.String() {
		t.Errorf("Reader = %q, want %q", e.Reader, root.String())
	}
}

func TestOwnership_RemovedChild(t *testing.T) {
	tree := NewTree()
	var child *Box
	root := newRoot(t, tree, layoutFunc(func(lc *LayoutContext, b *Box) error {
		s, err := lc.LayoutChild(child, loose(10, 10), true)
		if err != nil {
			return err
		}
		b.RemoveChild(child)
		return b.SetSize(lc, s)
	}), WithChildModel(ChildOrdered))
	child = tree.NewBox(&FixedBox{Width: 5, Height: 5})
	mustAppend(t, root, child)

	e := wantCode(t, root.Layout(NewLayoutContext(), loose(10, 10), false), ErrCodeOwnership)
	if !strings.Contains(e.Message, "no longer") {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestOwnership_ReadsOutsideLayout(t *testing.T) {
	tree := NewTree()
	root := newRoot(t, tree, &proxyStub{usesSize: false})
	child := tree.NewBox(&FixedBox{Width: 5, Height: 5})
	unlaid := tree.NewBox(&FixedBox{})
	mustAppend(t, root, child)

	lc := NewLayoutContext()
	if err := root.Layout(lc, loose(10, 10), false); err != nil {
		t.Fatal(err)
	}

	s, err := lc.ChildSize(child)
	if err != nil {
		t.Fatalf("ChildSize() outside a pass error = %v", err)
	}
	if !s.Equal(NewSize(5, 5)) {
		t.Errorf("ChildSize() = %v", s)
	}
	_, err = lc.ChildSize(unlaid)
	wantCode(t, err, ErrCodeProtocol)

	off := NewLayoutContext(WithDiagnostics(Diagnostics{}))
	if _, err := off.ChildSize(unlaid); err != nil {
		t.Errorf("ChildSize() with diagnostics off error = %v", err)
	}
}

// Package rbox implements a retained render tree whose boxes negotiate size
// with the box-constraints protocol: constraints flow down, sizes flow up.
//
// A parent lays out each child with a [Constraints] value and reads back a
// [Size] that lies inside it. Boxes whose size follows from the constraints
// alone set [Box.SizedByParent] and take the resize fast path. Parents can
// pre-measure children through the four intrinsic-dimension queries, which
// are memoized per box until the box is marked dirty.
//
// Layout state lives in an explicit [LayoutContext] threaded through the
// recursion. In diagnostic mode the context validates every layout result
// and enforces the size ownership ledger: a child's size may be read by its
// parent only when the parent declared parentUsesSize. Building with the
// rbox_release tag removes the validation layer entirely.
//
// Users import this single package for the complete public API: the tree,
// the built-in boxes, the pipeline [Owner], painting and hit testing.
package rbox

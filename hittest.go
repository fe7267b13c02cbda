package rbox

// HitTestEntry is one box under a hit position, with the position in the
// box's own coordinates.
type HitTestEntry struct {
	Box      *Box
	Position Offset
}

// HitTestResult accumulates hits deepest first.
type HitTestResult struct {
	Path []HitTestEntry
}

// Add records a hit.
func (r *HitTestResult) Add(b *Box, position Offset) {
	r.Path = append(r.Path, HitTestEntry{Box: b, Position: position})
}

// Boxes returns the hit boxes deepest first.
func (r *HitTestResult) Boxes() []*Box {
	out := make([]*Box, len(r.Path))
	for i, e := range r.Path {
		out[i] = e.Box
	}
	return out
}

// SelfHitTester lets a renderer claim hits that land on the box itself
// rather than on one of its children. The default is to claim none.
type SelfHitTester interface {
	HitTestSelf(b *Box, position Offset) bool
}

// HitTest reports whether position, in the box's coordinates, hits the box
// or one of its descendants, and records every hit box in result.
func (b *Box) HitTest(result *HitTestResult, position Offset) bool {
	if !b.hasSize || !b.Bounds().Contains(position) {
		return false
	}
	if b.hitTestChildren(result, position) || b.hitTestSelf(position) {
		result.Add(b, position)
		return true
	}
	return false
}

// hitTestChildren tries children topmost first, i.e. reverse paint order.
func (b *Box) hitTestChildren(result *HitTestResult, position Offset) bool {
	children := b.Children()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.HitTest(result, position.Sub(c.Offset())) {
			return true
		}
	}
	return false
}

func (b *Box) hitTestSelf(position Offset) bool {
	if h, ok := b.renderer.(SelfHitTester); ok {
		return h.HitTestSelf(b, position)
	}
	return false
}

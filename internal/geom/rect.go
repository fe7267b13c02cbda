package geom

// Rect is an axis-aligned rectangle in layout units. (X, Y) is the
// top-left corner; the right and bottom edges are exclusive.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectAt places a width x height rectangle with its corner at o.
func RectAt(o Offset, width, height float64) Rect {
	return Rect{X: o.X, Y: o.Y, Width: width, Height: height}
}

// ltrb builds a rectangle from its edges.
func ltrb(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Origin() Offset  { return Offset{X: r.X, Y: r.Y} }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. The top and left edges are
// inside, the bottom and right edges are not.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inset moves every edge inward by the matching inset. Negative insets grow
// the rectangle.
func (r Rect) Inset(e Edges) Rect {
	return ltrb(r.X+e.Left, r.Y+e.Top, r.Right()-e.Right, r.Bottom()-e.Bottom)
}

// Outset moves every edge outward by the matching inset.
func (r Rect) Outset(e Edges) Rect {
	return ltrb(r.X-e.Left, r.Y-e.Top, r.Right()+e.Right, r.Bottom()+e.Bottom)
}

// Deflate insets every edge by delta.
func (r Rect) Deflate(delta float64) Rect {
	return r.Inset(EdgeAll(delta))
}

// Translate moves the rectangle by o.
func (r Rect) Translate(o Offset) Rect {
	r.X += o.X
	r.Y += o.Y
	return r
}

// Intersect returns the overlap of r and other, or the zero Rect when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := ltrb(max(r.X, other.X), max(r.Y, other.Y), min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom()))
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Union returns the bounding box of r and other. Empty operands are
// ignored.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsEmpty():
		return other
	case other.IsEmpty():
		return r
	}
	return ltrb(min(r.X, other.X), min(r.Y, other.Y), max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom()))
}

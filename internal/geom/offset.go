package geom

// Offset is a point, or a displacement, in layout units.
type Offset struct {
	X, Y float64
}

func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale multiplies both coordinates by s.
func (o Offset) Scale(s float64) Offset {
	return Offset{X: o.X * s, Y: o.Y * s}
}

// In reports whether o lies inside r.
func (o Offset) In(r Rect) bool {
	return r.Contains(o)
}

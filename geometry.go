package rbox

import (
	"math"

	"github.com/grindlemire/go-rbox/internal/geom"
)

// Geometry types are defined in internal/geom and re-exported here.
type (
	Offset = geom.Offset
	Rect   = geom.Rect
	Edges  = geom.Edges
)

// Infinity is the unbounded sentinel for constraints and intrinsic queries.
var Infinity = math.Inf(1)

func NewRect(x, y, w, h float64) Rect   { return geom.NewRect(x, y, w, h) }
func EdgeAll(n float64) Edges           { return geom.EdgeAll(n) }
func EdgeSymmetric(v, h float64) Edges  { return geom.EdgeSymmetric(v, h) }
func EdgeTRBL(t, r, b, l float64) Edges { return geom.EdgeTRBL(t, r, b, l) }
func Pt(x, y float64) Offset            { return Offset{X: x, Y: y} }
func rectOf(o Offset, s Size) Rect      { return geom.RectAt(o, s.Width, s.Height) }
func isFinite(v float64) bool           { return !math.IsInf(v, 0) && !math.IsNaN(v) }

package canvas

import (
	"image/color"
	"math"
	"strings"

	rbox "github.com/grindlemire/go-rbox"
)

// Cell is one character position of a Grid.
type Cell struct {
	Rune  rune
	Color color.NRGBA
}

// Grid is a character cell canvas. Fills become block glyphs whose density
// follows the paint's alpha, stroked rectangles become box-drawing borders
// and paths become line glyphs. One cell covers Scale layout units.
type Grid struct {
	cells  []Cell
	width  int
	height int
	scale  float64
	border BorderStyle
}

// GridOption configures a Grid.
type GridOption func(*Grid)

// WithScale sets how many layout units one cell covers.
func WithScale(units float64) GridOption {
	return func(g *Grid) {
		if units > 0 {
			g.scale = units
		}
	}
}

// WithBorder sets the glyphs used for stroked rectangles.
func WithBorder(b BorderStyle) GridOption {
	return func(g *Grid) {
		g.border = b
	}
}

// NewGrid creates a grid of width x height cells cleared to spaces.
func NewGrid(width, height int, opts ...GridOption) *Grid {
	width, height = max(0, width), max(0, height)
	g := &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
		scale:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Clear()
	return g
}

// GridFor sizes a grid to hold s at the given scale.
func GridFor(s rbox.Size, opts ...GridOption) *Grid {
	g := NewGrid(0, 0, opts...)
	return NewGrid(int(math.Ceil(s.Width/g.scale)), int(math.Ceil(s.Height/g.scale)), opts...)
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	i := g.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return g.cells[i]
}

func (g *Grid) set(x, y int, r rune, c color.NRGBA) {
	if i := g.idx(x, y); i >= 0 {
		g.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Clear resets every cell to a space.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' '}
	}
}

// DrawRect fills or outlines r.
func (g *Grid) DrawRect(r rbox.Rect, p rbox.Paint) {
	if p.Style == rbox.PaintStroke {
		g.strokeRect(r, p.Color)
		return
	}
	x0, x1 := g.span(r.X, r.Right())
	y0, y1 := g.span(r.Y, r.Bottom())
	ch := shade(p.Color.A)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.set(x, y, ch, p.Color)
		}
	}
}

// span maps a half-open range of layout units to the cells whose centers
// it covers.
func (g *Grid) span(lo, hi float64) (int, int) {
	return int(math.Round(lo / g.scale)), int(math.Round(hi / g.scale))
}

// edge maps a stroke line to the cell it passes through.
func (g *Grid) edge(v float64) int {
	return int(math.Floor(v / g.scale))
}

// strokeRect draws a border through the cells the rectangle's edges pass
// through. Rectangles narrower than two cells degrade to a line.
func (g *Grid) strokeRect(r rbox.Rect, c color.NRGBA) {
	left, right := g.edge(r.X), g.edge(r.Right())
	top, bottom := g.edge(r.Y), g.edge(r.Bottom())
	chars := g.border.Chars()

	switch {
	case right <= left && bottom <= top:
		g.set(left, top, '·', c)
		return
	case right <= left:
		for y := top; y <= bottom; y++ {
			g.set(left, y, chars.Left, c)
		}
		return
	case bottom <= top:
		for x := left; x <= right; x++ {
			g.set(x, top, chars.Top, c)
		}
		return
	}

	for x := left + 1; x < right; x++ {
		g.set(x, top, chars.Top, c)
		g.set(x, bottom, chars.Bottom, c)
	}
	for y := top + 1; y < bottom; y++ {
		g.set(left, y, chars.Left, c)
		g.set(right, y, chars.Right, c)
	}
	g.set(left, top, chars.TopLeft, c)
	g.set(right, top, chars.TopRight, c)
	g.set(left, bottom, chars.BottomLeft, c)
	g.set(right, bottom, chars.BottomRight, c)
}

// DrawPath draws each segment of path. Horizontal and vertical segments
// use line glyphs; any other segment marks its endpoints.
func (g *Grid) DrawPath(path rbox.Path, p rbox.Paint) {
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		x0, y0 := g.edge(a.X), g.edge(a.Y)
		x1, y1 := g.edge(b.X), g.edge(b.Y)
		switch {
		case y0 == y1:
			for x := min(x0, x1); x < max(x0, x1); x++ {
				g.set(x, y0, '┄', p.Color)
			}
		case x0 == x1:
			for y := min(y0, y1); y < max(y0, y1); y++ {
				g.set(x0, y, '┆', p.Color)
			}
		default:
			g.set(x0, y0, '·', p.Color)
			g.set(x1, y1, '·', p.Color)
		}
	}
}

// String renders the grid, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].Rune)
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the grid content with trailing spaces removed from
// each line.
func (g *Grid) StringTrimmed() string {
	lines := strings.Split(g.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

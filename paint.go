package rbox

import "image/color"

// PaintStyle selects whether a shape is filled or stroked.
type PaintStyle uint8

const (
	PaintFill PaintStyle = iota
	PaintStroke
)

// Paint describes how to draw a shape.
type Paint struct {
	Color       color.NRGBA
	Style       PaintStyle
	StrokeWidth float64
}

// Path is an open polyline.
type Path []Offset

// PaintContext is the drawing surface supplied by the host.
type PaintContext interface {
	DrawRect(r Rect, p Paint)
	DrawPath(path Path, p Paint)
}

// Painter is implemented by renderers that draw content of their own.
// Children are painted by the engine after Paint returns.
type Painter interface {
	Paint(pc PaintContext, b *Box, offset Offset)
}

// Baseliner is implemented by renderers that know the distance from their
// top edge to their first text baseline.
type Baseliner interface {
	Baseline(b *Box) (float64, bool)
}

// Debug overlay colors.
var (
	debugSizeColor     = color.NRGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF}
	debugBaselineColor = color.NRGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
)

// Paint draws the box at offset, then its children at their parent-data
// offsets, then the debug overlays.
func (b *Box) Paint(lc *LayoutContext, pc PaintContext, offset Offset) {
	if p, ok := b.renderer.(Painter); ok {
		p.Paint(pc, b, offset)
	}
	b.VisitChildren(func(c *Box) bool {
		if c.hasSize {
			c.Paint(lc, pc, offset.Add(c.Offset()))
		}
		return true
	})
	b.DebugPaint(lc, pc, offset)
}

// DebugPaint draws the diagnostic overlays enabled in lc.Diagnostics.
func (b *Box) DebugPaint(lc *LayoutContext, pc PaintContext, offset Offset) {
	if !debugBuild {
		return
	}
	d := lc.Diagnostics
	if d.PaintSize {
		b.debugPaintSize(pc, offset)
	}
	if d.PaintBaselines {
		b.debugPaintBaselines(pc, offset)
	}
	if d.PaintPointers {
		b.debugPaintPointers(pc, offset)
	}
}

// debugPaintSize outlines the box with a one unit cyan stroke.
func (b *Box) debugPaintSize(pc PaintContext, offset Offset) {
	pc.DrawRect(rectOf(offset, b.size).Deflate(0.5), Paint{
		Color:       debugSizeColor,
		Style:       PaintStroke,
		StrokeWidth: 1,
	})
}

func (b *Box) debugPaintBaselines(pc PaintContext, offset Offset) {
	bl, ok := b.renderer.(Baseliner)
	if !ok {
		return
	}
	y, ok := bl.Baseline(b)
	if !ok {
		return
	}
	pc.DrawPath(Path{
		{X: offset.X, Y: offset.Y + y},
		{X: offset.X + b.size.Width, Y: offset.Y + y},
	}, Paint{Color: debugBaselineColor, Style: PaintStroke, StrokeWidth: 0.25})
}

// debugPaintPointers shades a box with active pointers. Deeper boxes get
// a more opaque fill so nested hits stay distinguishable.
func (b *Box) debugPaintPointers(pc PaintContext, offset Offset) {
	if b.activePointers <= 0 {
		return
	}
	pc.DrawRect(rectOf(offset, b.size), Paint{
		Color: color.NRGBA{R: 0x00, G: 0xBB, B: 0xBB, A: uint8((4 * b.Depth()) & 0xFF)},
		Style: PaintFill,
	})
}

package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	rbox "github.com/grindlemire/go-rbox"
)

// Raster paints into an RGBA image through gg.
type Raster struct {
	context *gg.Context
	scale   float64
}

// RasterOption configures a Raster.
type RasterOption func(*rasterConfig)

type rasterConfig struct {
	scale      float64
	background color.Color
}

// WithPixelScale sets how many pixels one layout unit covers.
func WithPixelScale(pixels float64) RasterOption {
	return func(c *rasterConfig) {
		if pixels > 0 {
			c.scale = pixels
		}
	}
}

// WithBackground clears the image to c before painting.
func WithBackground(c color.Color) RasterOption {
	return func(cfg *rasterConfig) {
		cfg.background = c
	}
}

// NewRaster creates a raster large enough to hold s.
func NewRaster(s rbox.Size, opts ...RasterOption) *Raster {
	cfg := rasterConfig{scale: 1, background: color.White}
	for _, opt := range opts {
		opt(&cfg)
	}
	w := max(1, int(math.Ceil(s.Width*cfg.scale)))
	h := max(1, int(math.Ceil(s.Height*cfg.scale)))
	dc := gg.NewContext(w, h)
	if cfg.background != nil {
		dc.SetColor(cfg.background)
		dc.Clear()
	}
	return &Raster{context: dc, scale: cfg.scale}
}

// DrawRect fills or strokes r.
func (r *Raster) DrawRect(rect rbox.Rect, p rbox.Paint) {
	s := r.scale
	r.context.DrawRectangle(rect.X*s, rect.Y*s, rect.Width*s, rect.Height*s)
	r.finish(p)
}

// DrawPath strokes the polyline.
func (r *Raster) DrawPath(path rbox.Path, p rbox.Paint) {
	if len(path) < 2 {
		return
	}
	s := r.scale
	r.context.MoveTo(path[0].X*s, path[0].Y*s)
	for _, pt := range path[1:] {
		r.context.LineTo(pt.X*s, pt.Y*s)
	}
	p.Style = rbox.PaintStroke
	r.finish(p)
}

func (r *Raster) finish(p rbox.Paint) {
	r.context.SetColor(p.Color)
	if p.Style == rbox.PaintFill {
		r.context.Fill()
		return
	}
	r.context.SetLineWidth(max(1, p.StrokeWidth*r.scale))
	r.context.Stroke()
}

// Image returns the painted image.
func (r *Raster) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the image to path.
func (r *Raster) SavePNG(path string) error {
	return r.context.SavePNG(path)
}

// EncodePNG writes the image to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}

package rbox

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextBox is a leaf that measures a run of text with a font face and
// wraps it greedily at word boundaries. It measures only; glyph
// rasterization belongs to the host canvas.
type TextBox struct {
	Text string
	Face font.Face // nil uses basicfont.Face7x13
}

func (t *TextBox) face() font.Face {
	if t.Face != nil {
		return t.Face
	}
	return basicfont.Face7x13
}

func (t *TextBox) lineHeight() float64 {
	return float64(t.face().Metrics().Height.Ceil())
}

func (t *TextBox) advance(s string) float64 {
	return float64(font.MeasureString(t.face(), s).Ceil())
}

// lines wraps the text into lines no wider than maxWidth, except that a
// word wider than maxWidth gets a line of its own.
func (t *TextBox) lines(maxWidth float64) []float64 {
	words := strings.Fields(t.Text)
	if len(words) == 0 {
		return nil
	}
	space := t.advance(" ")
	var widths []float64
	line := -1.0
	for _, w := range words {
		ww := t.advance(w)
		switch {
		case line < 0:
			line = ww
		case line+space+ww <= maxWidth:
			line += space + ww
		default:
			widths = append(widths, line)
			line = ww
		}
	}
	return append(widths, line)
}

func (t *TextBox) measure(maxWidth float64) Size {
	lines := t.lines(maxWidth)
	w := 0.0
	for _, lw := range lines {
		w = max(w, lw)
	}
	return NewSize(w, float64(len(lines))*t.lineHeight())
}

// PerformLayout wraps at the maximum width.
func (t *TextBox) PerformLayout(lc *LayoutContext, b *Box) error {
	c := b.constraints
	return b.SetSize(lc, c.Constrain(t.measure(c.MaxWidth)))
}

// ComputeMinIntrinsicWidth is the widest single word.
func (t *TextBox) ComputeMinIntrinsicWidth(*LayoutContext, *Box, float64) (float64, error) {
	w := 0.0
	for _, word := range strings.Fields(t.Text) {
		w = max(w, t.advance(word))
	}
	return w, nil
}

// ComputeMaxIntrinsicWidth is the width of the text on one line.
func (t *TextBox) ComputeMaxIntrinsicWidth(*LayoutContext, *Box, float64) (float64, error) {
	return t.measure(Infinity).Width, nil
}

func (t *TextBox) ComputeMinIntrinsicHeight(_ *LayoutContext, _ *Box, width float64) (float64, error) {
	return t.measure(width).Height, nil
}

func (t *TextBox) ComputeMaxIntrinsicHeight(_ *LayoutContext, _ *Box, width float64) (float64, error) {
	return t.measure(width).Height, nil
}

// Baseline is the ascent of the first line.
func (t *TextBox) Baseline(*Box) (float64, bool) {
	if strings.TrimSpace(t.Text) == "" {
		return 0, false
	}
	return float64(t.face().Metrics().Ascent.Ceil()), true
}

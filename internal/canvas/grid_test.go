package canvas

import (
	"image/color"
	"testing"

	rbox "github.com/grindlemire/go-rbox"
)

var opaque = color.NRGBA{R: 0xFF, A: 0xFF}

func TestGrid_DrawRect(t *testing.T) {
	type tc struct {
		width, height int
		opts          []GridOption
		rect          rbox.Rect
		paint         rbox.Paint
		want          string
	}

	tests := map[string]tc{
		"fill": {
			width: 5, height: 4,
			rect:  rbox.NewRect(1, 1, 3, 2),
			paint: rbox.Paint{Color: opaque},
			want:  "\n ███\n ███\n",
		},
		"translucent fill": {
			width: 3, height: 1,
			rect:  rbox.NewRect(0, 0, 3, 1),
			paint: rbox.Paint{Color: color.NRGBA{A: 0x50}},
			want:  "▒▒▒",
		},
		"stroke": {
			width: 5, height: 3,
			rect:  rbox.NewRect(0.5, 0.5, 4, 2),
			paint: rbox.Paint{Color: opaque, Style: rbox.PaintStroke, StrokeWidth: 1},
			want:  "┌───┐\n│   │\n└───┘",
		},
		"rounded stroke": {
			width: 3, height: 2,
			opts:  []GridOption{WithBorder(BorderRounded)},
			rect:  rbox.NewRect(0.5, 0.5, 2, 1),
			paint: rbox.Paint{Color: opaque, Style: rbox.PaintStroke},
			want:  "╭─╮\n╰─╯",
		},
		"flat stroke degrades to a line": {
			width: 4, height: 1,
			rect:  rbox.NewRect(0.5, 0.5, 3, 0),
			paint: rbox.Paint{Color: opaque, Style: rbox.PaintStroke},
			want:  "────",
		},
		"scaled fill": {
			width: 3, height: 2,
			opts:  []GridOption{WithScale(10)},
			rect:  rbox.NewRect(0, 0, 20, 10),
			paint: rbox.Paint{Color: opaque},
			want:  "██\n",
		},
		"clipped to the grid": {
			width: 2, height: 2,
			rect:  rbox.NewRect(-5, 1, 50, 50),
			paint: rbox.Paint{Color: opaque},
			want:  "\n██",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height, tt.opts...)
			g.DrawRect(tt.rect, tt.paint)
			if got := g.StringTrimmed(); got != tt.want {
				t.Errorf("StringTrimmed() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGrid_DrawPath(t *testing.T) {
	g := NewGrid(5, 3)
	g.DrawPath(rbox.Path{rbox.Pt(0, 1), rbox.Pt(4, 1), rbox.Pt(4, 3)}, rbox.Paint{Color: opaque})
	want := "\n┄┄┄┄┆\n    ┆"
	if got := g.StringTrimmed(); got != want {
		t.Errorf("StringTrimmed() = %q, want %q", got, want)
	}
	if c := g.Cell(0, 1); c.Color != opaque {
		t.Errorf("Cell(0, 1).Color = %v, want %v", c.Color, opaque)
	}
	if c := g.Cell(99, 99); c.Rune != 0 {
		t.Errorf("Cell(out of bounds) = %q, want zero", c.Rune)
	}
}

func TestGrid_PaintsLaidOutTree(t *testing.T) {
	type tc struct {
		diag     rbox.Diagnostics
		overlays bool
		want     string
	}

	tests := map[string]tc{
		"content only": {
			diag: rbox.DefaultDiagnostics(),
			want: "\n ███\n ███\n",
		},
		"size outlines": {
			diag:     rbox.Diagnostics{Enabled: true, PaintSize: true},
			overlays: true,
			want:     "┌───┐\n│┌─┐│\n│└─┘│\n└───┘",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.overlays && !rbox.DiagnosticsCompiled() {
				t.Skip("debug overlays are compiled out")
			}
			tree := rbox.NewTree()
			root := tree.NewBox(&rbox.PaddingBox{Padding: rbox.EdgeAll(1)})
			if err := tree.SetRoot(root); err != nil {
				t.Fatal(err)
			}
			if err := root.AppendChild(tree.NewBox(&rbox.FixedBox{Width: 3, Height: 2, Color: opaque})); err != nil {
				t.Fatal(err)
			}

			owner := rbox.NewOwner(tree, rbox.Loose(rbox.NewSize(80, 24)), rbox.WithDiagnostics(tt.diag))
			if err := owner.FlushLayout(); err != nil {
				t.Fatal(err)
			}
			g := GridFor(root.Size())
			if g.Width() != 5 || g.Height() != 4 {
				t.Fatalf("GridFor() = %dx%d, want 5x4", g.Width(), g.Height())
			}
			owner.Paint(g)
			if got := g.StringTrimmed(); got != tt.want {
				t.Errorf("painted grid = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShade(t *testing.T) {
	tests := map[string]struct {
		alpha uint8
		want  rune
	}{
		"opaque": {alpha: 0xFF, want: '█'},
		"dark":   {alpha: 0x80, want: '▓'},
		"medium": {alpha: 0x40, want: '▒'},
		"light":  {alpha: 0x04, want: '░'},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := shade(tt.alpha); got != tt.want {
				t.Errorf("shade(%#x) = %q, want %q", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestParseBorderStyle(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    BorderStyle
		wantErr bool
	}{
		"default": {name: "", want: BorderSingle},
		"double":  {name: "double", want: BorderDouble},
		"rounded": {name: "rounded", want: BorderRounded},
		"thick":   {name: "thick", want: BorderThick},
		"unknown": {name: "dotted", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBorderStyle(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBorderStyle(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBorderStyle(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

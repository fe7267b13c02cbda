package scene

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	rbox "github.com/grindlemire/go-rbox"
)

const rowScene = `
constraints:
  max_width: 40
  max_height: 10
root:
  kind: flex
  label: row
  direction: row
  children:
    - kind: fixed
      width: 10
      height: 5
      color: "#f00"
    - kind: fill
      flex: 1
      color: "#0000ff80"
`

func layout(t *testing.T, doc string) *rbox.Tree {
	t.Helper()
	s, err := Parse(doc)
	require.NoError(t, err)
	tree, c, err := s.Build()
	require.NoError(t, err)
	require.NoError(t, rbox.NewOwner(tree, c).FlushLayout())
	return tree
}

func TestBuild_Row(t *testing.T) {
	tree := layout(t, rowScene)
	root := tree.Root()

	require.Equal(t, "row", root.Label())
	require.True(t, root.Size().Equal(rbox.NewSize(40, 10)), "root size %v", root.Size())

	kids := root.Children()
	require.Len(t, kids, 2)
	require.Equal(t, "root.children[0]", kids[0].Label())
	require.True(t, kids[0].Size().Equal(rbox.NewSize(10, 5)))
	require.True(t, kids[1].Size().Equal(rbox.NewSize(30, 10)))
	require.Equal(t, rbox.Pt(10, 0), kids[1].Offset())
	require.Equal(t, 1.0, kids[1].FlexData().Flex)

	fixed := kids[0].Renderer().(*rbox.FixedBox)
	require.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, fixed.Color)
	fill := kids[1].Renderer().(*rbox.FillBox)
	require.Equal(t, color.NRGBA{B: 0xff, A: 0x80}, fill.Color)
}

func TestBuild_Kinds(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want rbox.Size
	}{
		"padding around fixed": {
			doc: `
constraints: {max_width: 80, max_height: 24}
root:
  kind: padding
  padding: {all: 1, left: 3}
  children: [{kind: fixed, width: 3, height: 2}]
`,
			want: rbox.NewSize(7, 4),
		},
		"align expands on bounded axes": {
			doc: `
constraints: {max_width: 20, max_height: .inf}
root:
  kind: align
  x: 0.5
  children: [{kind: fixed, width: 4, height: 3}]
`,
			want: rbox.NewSize(20, 3),
		},
		"constrained clamps child": {
			doc: `
constraints: {max_width: 80, max_height: 24}
root:
  kind: constrained
  constraints: {min_width: 12, max_width: 12, max_height: 24}
  children: [{kind: fixed, width: 3, height: 2}]
`,
			want: rbox.NewSize(12, 2),
		},
		"overlay sized by foreground": {
			doc: `
constraints: {max_width: 80, max_height: 24}
root:
  kind: overlay
  children:
    - {kind: fill, slot: background}
    - {kind: fixed, slot: foreground, width: 6, height: 1}
`,
			want: rbox.NewSize(6, 1),
		},
		"text measures with the default face": {
			doc: `
constraints: {max_width: 80, max_height: 24}
root: {kind: text, text: hello}
`,
			want: rbox.NewSize(35, 13),
		},
		"empty sized by parent takes the smallest size": {
			doc: `
constraints: {min_width: 2, max_width: 80, min_height: 1, max_height: 24}
root: {kind: empty, sized_by_parent: true}
`,
			want: rbox.NewSize(2, 1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := layout(t, tt.doc).Root()
			require.True(t, root.Size().Equal(tt.want), "size = %v, want %v", root.Size(), tt.want)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := map[string]struct {
		doc     string
		wantErr string
	}{
		"empty document": {
			doc:     "",
			wantErr: "scene is empty",
		},
		"no root": {
			doc:     "constraints: {max_width: 10}\n",
			wantErr: "no root",
		},
		"unknown field": {
			doc:     "root: {kind: fixed, depth: 3}\n",
			wantErr: "depth",
		},
		"unknown kind": {
			doc:     "root: {kind: grid}\n",
			wantErr: `root: unknown kind "grid"`,
		},
		"missing kind": {
			doc:     "root: {label: x}\n",
			wantErr: "root: node has no kind",
		},
		"bad color": {
			doc:     "root: {kind: fill, color: red}\n",
			wantErr: "must start with #",
		},
		"bad direction": {
			doc:     "root: {kind: flex, direction: diagonal}\n",
			wantErr: `unknown direction "diagonal"`,
		},
		"leaf with children": {
			doc:     "root: {kind: fixed, children: [{kind: fill}]}\n",
			wantErr: "root.children[0]: PROTOCOL",
		},
		"overlay child without slot": {
			doc:     "root: {kind: overlay, children: [{kind: fill}]}\n",
			wantErr: "needs a slot",
		},
		"constrained without constraints": {
			doc:     "root: {kind: constrained}\n",
			wantErr: "needs constraints",
		},
		"malformed root constraints": {
			doc:     "constraints: {min_width: 10, max_width: 5}\nroot: {kind: fill}\n",
			wantErr: "scene constraints",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(tt.doc)
			if err == nil {
				_, _, err = s.Build()
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBounds_Constraints(t *testing.T) {
	ten := 10.0
	tests := map[string]struct {
		b    Bounds
		want rbox.Constraints
	}{
		"unbounded":  {b: Bounds{}, want: rbox.Unbounded()},
		"width only": {b: Bounds{MinWidth: 2, MaxWidth: &ten}, want: rbox.NewConstraints(2, 10, 0, math.Inf(1))},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.True(t, tt.b.Constraints().Equal(tt.want), "got %v, want %v", tt.b.Constraints(), tt.want)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		"empty is transparent": {in: "", want: color.NRGBA{}},
		"short":                {in: "#0f0", want: color.NRGBA{G: 0xff, A: 0xff}},
		"long":                 {in: "#102030", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		"with alpha":           {in: "#10203040", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		"bad length":           {in: "#12345", wantErr: true},
		"not hex":              {in: "#zzzzzz", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExampleScenes(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "scenes", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			s, err := Load(f)
			require.NoError(t, err)
			tree, c, err := s.Build()
			require.NoError(t, err)

			owner := rbox.NewOwner(tree, c, rbox.WithDiagnostics(rbox.Diagnostics{Enabled: true, CheckIntrinsics: true}))
			err = owner.FlushLayout()
			if filepath.Base(path) == "broken.yaml" {
				if !rbox.DiagnosticsCompiled() {
					t.Skip("the default layout step only fails when diagnosing")
				}
				require.True(t, rbox.Is(err, rbox.ErrCodeProtocol), "err = %v", err)
				return
			}
			require.NoError(t, err)
			require.True(t, c.IsSatisfiedBy(tree.Root().Size()))
		})
	}
}

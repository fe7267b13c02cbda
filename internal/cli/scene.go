package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rbox "github.com/grindlemire/go-rbox"
	"github.com/grindlemire/go-rbox/internal/scene"
)

// sceneFlags override the scene's root constraints.
type sceneFlags struct {
	width  float64
	height float64
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "override the root's maximum width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "override the root's maximum height")
}

// apply replaces the maxima that were set on the command line, lowering
// the minima with them so the constraints stay normalized.
func (f sceneFlags) apply(c rbox.Constraints) rbox.Constraints {
	if f.width > 0 {
		c.MaxWidth = f.width
		c.MinWidth = min(c.MinWidth, f.width)
	}
	if f.height > 0 {
		c.MaxHeight = f.height
		c.MinHeight = min(c.MinHeight, f.height)
	}
	return c
}

// loadScene reads and builds the scene at path.
func loadScene(path string, flags sceneFlags) (*rbox.Tree, rbox.Constraints, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rbox.Constraints{}, err
	}
	defer f.Close()

	s, err := scene.Load(f)
	if err != nil {
		return nil, rbox.Constraints{}, fmt.Errorf("%s: %w", path, err)
	}
	tree, c, err := s.Build()
	if err != nil {
		return nil, rbox.Constraints{}, fmt.Errorf("%s: %w", path, err)
	}
	return tree, flags.apply(c), nil
}

// newOwner creates a pipeline owner wired to the context's engine logger.
func newOwner(ctx context.Context, tree *rbox.Tree, c rbox.Constraints, diag rbox.Diagnostics, hooks rbox.Hooks) *rbox.Owner {
	return rbox.NewOwner(tree, c,
		rbox.WithDiagnostics(diag),
		rbox.WithLogger(engineLoggerFromContext(ctx)),
		rbox.WithHooks(hooks),
	)
}

// countBoxes counts the boxes reachable from b.
func countBoxes(b *rbox.Box) int {
	n := 1
	b.VisitChildren(func(c *rbox.Box) bool {
		n += countBoxes(c)
		return true
	})
	return n
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-rbox/internal/canvas"
)

type paintOptions struct {
	scene          sceneFlags
	out            string
	paintSize      bool
	paintBaselines bool
	scale          float64
	border         string
}

func newPaintCmd() *cobra.Command {
	var opts paintOptions

	cmd := &cobra.Command{
		Use:   "paint <scene.yaml>",
		Short: "Paint a laid-out scene as text, or as PNG with --out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			tree, c, err := loadScene(args[0], opts.scene)
			if err != nil {
				return err
			}

			diag := cfg.RboxDiagnostics()
			if cmd.Flags().Changed("paint-size") {
				diag.PaintSize = opts.paintSize
			}
			if cmd.Flags().Changed("paint-baselines") {
				diag.PaintBaselines = opts.paintBaselines
			}
			scale := cfg.Paint.Scale
			if cmd.Flags().Changed("scale") {
				scale = opts.scale
			}
			if scale <= 0 {
				return fmt.Errorf("scale must be positive, got %v", scale)
			}
			borderName := cfg.Paint.Border
			if cmd.Flags().Changed("border") {
				borderName = opts.border
			}
			border, err := canvas.ParseBorderStyle(borderName)
			if err != nil {
				return err
			}

			owner := newOwner(ctx, tree, c, diag, nil)
			if err := owner.FlushLayout(); err != nil {
				return fmt.Errorf("layout %s: %w", args[0], err)
			}
			size := tree.Root().Size()

			if opts.out != "" {
				prog := newProgress(logger)
				r := canvas.NewRaster(size, canvas.WithPixelScale(scale))
				owner.Paint(r)
				if err := r.SavePNG(opts.out); err != nil {
					return err
				}
				prog.done("Wrote " + opts.out)
				return nil
			}

			g := canvas.GridFor(size, canvas.WithScale(scale), canvas.WithBorder(border))
			owner.Paint(g)
			fmt.Fprintln(cmd.OutOrStdout(), g.StringTrimmed())
			return nil
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write a PNG to this path instead of printing text")
	cmd.Flags().BoolVar(&opts.paintSize, "paint-size", false, "outline every box")
	cmd.Flags().BoolVar(&opts.paintBaselines, "paint-baselines", false, "draw text baselines")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "layout units per cell, or pixels per unit for PNG")
	cmd.Flags().StringVar(&opts.border, "border", "single", "outline glyphs: single, double, rounded or thick")
	return cmd
}

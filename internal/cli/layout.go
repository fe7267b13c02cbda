package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rbox "github.com/grindlemire/go-rbox"
	"github.com/grindlemire/go-rbox/internal/metrics"
)

type layoutOptions struct {
	scene           sceneFlags
	checkIntrinsics bool
	metrics         bool
}

func newLayoutCmd() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout <scene.yaml>",
		Short: "Lay out a scene and print the tree with sizes and offsets",
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
			if cmd.Flags().Changed("check-intrinsics") {
				diag.CheckIntrinsics = opts.checkIntrinsics
			}

			var hooks rbox.Hooks
			var collector *metrics.Collector
			if opts.metrics {
				collector = metrics.NewCollector()
				hooks = collector
			}

			prog := newProgress(logger)
			owner := newOwner(ctx, tree, c, diag, hooks)
			if err := owner.FlushLayout(); err != nil {
				return fmt.Errorf("layout %s: %w", args[0], err)
			}
			prog.done(fmt.Sprintf("Laid out %d boxes under %v", countBoxes(tree.Root()), c))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTree(tree.Root()))
			if collector != nil {
				fmt.Fprintln(out)
				return collector.WriteText(out)
			}
			return nil
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().BoolVar(&opts.checkIntrinsics, "check-intrinsics", false, "verify intrinsic dimensions after each layout")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print layout metrics in Prometheus text format")
	return cmd
}

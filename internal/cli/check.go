package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	rbox "github.com/grindlemire/go-rbox"
)

func newCheckCmd() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "check <scene.yaml>",
		Short: "Lay out a scene with every diagnostic enabled and report violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()
			path := args[0]

			if !rbox.DiagnosticsCompiled() {
				logger.Warn("this build excludes diagnostics; only preconditions are checked")
			}

			tree, c, err := loadScene(path, flags)
			if err != nil {
				return err
			}

			diag := rbox.Diagnostics{Enabled: true, CheckIntrinsics: true}
			owner := newOwner(ctx, tree, c, diag, nil)
			if err := owner.FlushLayout(); err != nil {
				var rerr *rbox.Error
				if !errors.As(err, &rerr) {
					return err
				}
				fmt.Fprintf(out, "%s %s\n%s\n", styleError.Render(iconError), path, rerr.Error())
				return errCheckFailed
			}

			root := tree.Root()
			s := root.Size()
			fmt.Fprintf(out, "%s %s: %d boxes, root %sx%s\n",
				styleOK.Render(iconSuccess), path, countBoxes(root), num(s.Width), num(s.Height))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

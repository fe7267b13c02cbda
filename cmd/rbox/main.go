// Package main provides the rbox command.
//
// Usage:
//
//	rbox layout <scene.yaml>    Lay out a scene and print the tree
//	rbox paint <scene.yaml>     Paint a scene as text or PNG
//	rbox check <scene.yaml>     Check a scene against the layout protocol
//	rbox version                Print version information
//
// Examples:
//
//	rbox layout --width 120 ui.yaml
//	rbox layout --metrics --check-intrinsics ui.yaml
//	rbox paint --paint-size ui.yaml
//	rbox paint --out ui.png --scale 4 ui.yaml
//	RBOX_DEBUG=/tmp/rbox.log rbox check ui.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-rbox/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-rbox/internal/config"
	"github.com/grindlemire/go-rbox/internal/debug"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information shown by `rbox version` and
// --version. The main package calls it with values injected at build time.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// errCheckFailed is returned by `rbox check` after it has printed the
// violations, so that the process exits non-zero without repeating them.
var errCheckFailed = errors.New("check failed")

// IsReported reports whether err has already been shown to the user.
func IsReported(err error) bool {
	return errors.Is(err, errCheckFailed)
}

// Execute runs the rbox CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           "rbox",
		Short:         "rbox lays out and paints box trees",
		Long:          `rbox runs the box-constraint layout engine over YAML scene files. It prints the laid-out tree, paints it as text or PNG, and checks scenes against the layout protocol.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			level := parseLevel(cfg.Log.Level)
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)

			engine, err := openEngineLog(cfg)
			if err != nil {
				return err
			}
			if engine != nil {
				logger.Debug("engine log enabled", "file", debugFile(cfg))
				ctx = withEngineLogger(ctx, engine)
			} else {
				ctx = withEngineLogger(ctx, logger.WithPrefix("engine"))
			}
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(versionString() + "\n")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to an rbox.toml settings file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newPaintCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// openEngineLog opens the engine's debug log file when log.file or
// RBOX_DEBUG names one. It returns nil when neither is set.
func openEngineLog(cfg config.Config) (*log.Logger, error) {
	if cfg.Log.File != "" {
		if err := debug.Init(cfg.Log.File); err != nil {
			return nil, err
		}
		return debug.Logger(), nil
	}
	ok, err := debug.InitFromEnv()
	if err != nil || !ok {
		return nil, err
	}
	return debug.Logger(), nil
}

func debugFile(cfg config.Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return os.Getenv(debug.EnvVar)
}

func versionString() string {
	s := "rbox " + version
	if commit != "" {
		s += fmt.Sprintf("\ncommit: %s", commit)
	}
	if date != "" {
		s += fmt.Sprintf("\nbuilt: %s", date)
	}
	return s
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

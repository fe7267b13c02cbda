// Package cli implements the rbox command-line interface.
//
// The commands load a YAML scene (see internal/scene), lay it out with the
// engine and report the result:
//
//	rbox layout scene.yaml     Print the laid-out tree
//	rbox paint scene.yaml      Paint the tree as text or PNG
//	rbox check scene.yaml      Run every diagnostic and report violations
//
// Loggers and settings travel through the command context.
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-rbox/internal/config"
)

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// parseLevel maps a config level name to a log level. Unknown names fall
// back to info; the config layer rejects them earlier.
func parseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// progress logs the elapsed time of an operation when it completes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	engineLoggerKey
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the CLI logger, or log.Default when unset.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withEngineLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, engineLoggerKey, l)
}

// engineLoggerFromContext returns the logger handed to the layout engine.
// It falls back to the CLI logger.
func engineLoggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(engineLoggerKey).(*log.Logger); ok {
		return l
	}
	return loggerFromContext(ctx)
}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the loaded settings, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// Package config loads rbox settings from a TOML file and the environment.
//
// Precedence, lowest first: defaults, the config file, RBOX_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	rbox "github.com/grindlemire/go-rbox"
	"github.com/grindlemire/go-rbox/internal/canvas"
)

// Config is the full settings tree.
type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`
	Log         Log         `toml:"log"`
	Paint       Paint       `toml:"paint"`
}

// Diagnostics mirrors rbox.Diagnostics.
type Diagnostics struct {
	Enabled         bool `toml:"enabled"`
	CheckIntrinsics bool `toml:"check_intrinsics"`
	PaintSize       bool `toml:"paint_size"`
	PaintBaselines  bool `toml:"paint_baselines"`
	PaintPointers   bool `toml:"paint_pointers"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Paint configures output surfaces.
type Paint struct {
	// Scale is layout units per grid cell, or pixels per unit for PNG.
	Scale  float64 `toml:"scale"`
	Border string  `toml:"border"` // single, double, rounded or thick
}

// Default returns the built-in settings: validation on, overlays off.
func Default() Config {
	return Config{
		Diagnostics: Diagnostics{Enabled: true},
		Log:         Log{Level: "info"},
		Paint:       Paint{Scale: 1, Border: "single"},
	}
}

// Load reads path over the defaults and then applies the environment. An
// empty path skips the file; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("parse %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from RBOX_* variables.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"RBOX_DIAGNOSTICS", &c.Diagnostics.Enabled},
		{"RBOX_CHECK_INTRINSICS", &c.Diagnostics.CheckIntrinsics},
		{"RBOX_PAINT_SIZE", &c.Diagnostics.PaintSize},
		{"RBOX_PAINT_BASELINES", &c.Diagnostics.PaintBaselines},
		{"RBOX_PAINT_POINTERS", &c.Diagnostics.PaintPointers},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = parsed
	}
	if v, ok := lookup("RBOX_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("RBOX_PAINT_SCALE"); ok && v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RBOX_PAINT_SCALE: %w", err)
		}
		c.Paint.Scale = scale
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Paint.Scale <= 0 {
		return fmt.Errorf("paint.scale must be positive, got %v", c.Paint.Scale)
	}
	if _, err := canvas.ParseBorderStyle(c.Paint.Border); err != nil {
		return fmt.Errorf("paint.border: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// RboxDiagnostics converts to the engine's toggles.
func (c Config) RboxDiagnostics() rbox.Diagnostics {
	d := c.Diagnostics
	return rbox.Diagnostics{
		Enabled:         d.Enabled,
		CheckIntrinsics: d.CheckIntrinsics,
		PaintSize:       d.PaintSize,
		PaintBaselines:  d.PaintBaselines,
		PaintPointers:   d.PaintPointers,
	}
}

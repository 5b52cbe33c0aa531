// Package config loads the lvminor TOML configuration.
//
// Files are read through a vfs.FileSystem, ${VAR} references are expanded
// before decoding, and unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/drone/envsubst"
	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/katalvlaran/lvminor/explore"
	"github.com/katalvlaran/lvminor/layout"
)

// ErrInvalid is returned when a configuration value is out of range or a key
// is unknown.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds lvminor configuration.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Tree    TreeConfig    `toml:"tree"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LayoutConfig controls the force model and its scheduler.
type LayoutConfig struct {
	Repulsion    float64  `toml:"repulsion"`
	Attraction   float64  `toml:"attraction"`
	Gravity      float64  `toml:"gravity"`
	Timestep     float64  `toml:"timestep"`
	TickInterval Duration `toml:"tick_interval"`
	MaxTicks     int      `toml:"max_ticks"` // 0 = unbounded
	Concurrency  int      `toml:"concurrency"`
}

// TreeConfig controls the exploration tree.
type TreeConfig struct {
	Branching int `toml:"branching"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"` // error, warn, info, debug, trace
}

// MetricsConfig controls the metrics endpoint of `serve`.
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string ("8ms") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Repulsion:    50,
			Attraction:   0.5,
			Gravity:      0.5,
			Timestep:     layout.DefaultTimestep,
			TickInterval: Duration{time.Second / 120},
			MaxTicks:     2000,
			Concurrency:  1,
		},
		Tree:    TreeConfig{Branching: explore.DefaultBranching},
		Log:     LogConfig{Level: "warn"},
		Metrics: MetricsConfig{Addr: ":2112"},
	}
}

// Load reads path from fs over the defaults, expanding ${VAR} references
// from the process environment. An empty path or a missing file yields the
// defaults.
func Load(fs vfs.FileSystem, path string) (*Config, error) {
	return LoadWithEnv(fs, path, os.Getenv)
}

// LoadWithEnv is Load with an explicit variable lookup.
func LoadWithEnv(fs vfs.FileSystem, path string, env func(string) string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	ok, err := vfs.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if !ok {
		return cfg, nil
	}

	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	expanded, err := envsubst.Eval(string(data), env)
	if err != nil {
		return nil, fmt.Errorf("config: expand %s: %w", path, err)
	}
	md, err := toml.Decode(expanded, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	l := c.Layout
	for name, v := range map[string]float64{
		"layout.repulsion":  l.Repulsion,
		"layout.attraction": l.Attraction,
		"layout.gravity":    l.Gravity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalid, name)
		}
	}
	switch {
	case !(l.Timestep > 0) || math.IsInf(l.Timestep, 0):
		return fmt.Errorf("%w: layout.timestep must be > 0 (%v)", ErrInvalid, l.Timestep)
	case l.TickInterval.Duration <= 0:
		return fmt.Errorf("%w: layout.tick_interval must be > 0 (%v)", ErrInvalid, l.TickInterval)
	case l.MaxTicks < 0:
		return fmt.Errorf("%w: layout.max_ticks must be ≥ 0 (%d)", ErrInvalid, l.MaxTicks)
	case l.Concurrency < 1:
		return fmt.Errorf("%w: layout.concurrency must be ≥ 1 (%d)", ErrInvalid, l.Concurrency)
	case c.Tree.Branching < 2:
		return fmt.Errorf("%w: tree.branching must be ≥ 2 (%d)", ErrInvalid, c.Tree.Branching)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}

	return nil
}

// EngineOptions converts the layout section into layout options.
func (c *Config) EngineOptions() []layout.Option {
	return []layout.Option{
		layout.WithRepulsion(c.Layout.Repulsion),
		layout.WithAttraction(c.Layout.Attraction),
		layout.WithGravity(c.Layout.Gravity),
		layout.WithTimestep(c.Layout.Timestep),
	}
}

// TreeOptions converts the tree section into explore options.
func (c *Config) TreeOptions() []explore.Option {
	return []explore.Option{explore.WithBranching(c.Tree.Branching)}
}

package config_test

import (
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvminor/internal/config"
	"github.com/katalvlaran/lvminor/layout"
)

func writeFile(t *testing.T, fs vfs.FileSystem, path, content string) {
	t.Helper()
	require.NoError(t, vfs.WriteFile(fs, path, []byte(content), 0o600))
}

func noEnv(string) string { return "" }

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	fs := memoryfs.New()

	cfg, err := config.Load(fs, "/etc/lvminor.toml")
	require.NoError(t, err)
	if diff := deep.Equal(config.Default(), cfg); diff != nil {
		t.Fatal(diff)
	}

	cfg, err = config.Load(fs, "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesAndEnv(t *testing.T) {
	fs := memoryfs.New()
	writeFile(t, fs, "/lvminor.toml", `
[layout]
repulsion = 10.5
gravity = 0
tick_interval = "20ms"
concurrency = ${LVMINOR_WORKERS}

[tree]
branching = 3

[log]
level = "${LVMINOR_LEVEL:-info}"
`)
	env := map[string]string{"LVMINOR_WORKERS": "4"}
	cfg, err := config.LoadWithEnv(fs, "/lvminor.toml", func(k string) string { return env[k] })
	require.NoError(t, err)

	want := config.Default()
	want.Layout.Repulsion = 10.5
	want.Layout.Gravity = 0
	want.Layout.TickInterval = config.Duration{Duration: 20 * time.Millisecond}
	want.Layout.Concurrency = 4
	want.Tree.Branching = 3
	want.Log.Level = "info"
	if diff := deep.Equal(want, cfg); diff != nil {
		t.Fatal(diff)
	}

	e, err := layout.NewEngine(cfg.EngineOptions()...)
	require.NoError(t, err)
	require.Equal(t, 10.5, e.Options().Repulsion)
	require.Len(t, cfg.TreeOptions(), 1)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "[layout]\nspeed = 3\n",
		"bad toml":          "[layout\n",
		"zero timestep":     "[layout]\ntimestep = 0.0\n",
		"bad interval":      "[layout]\ntick_interval = \"soon\"\n",
		"negative interval": "[layout]\ntick_interval = \"-1s\"\n",
		"zero concurrency":  "[layout]\nconcurrency = 0\n",
		"negative ticks":    "[layout]\nmax_ticks = -1\n",
		"branching one":     "[tree]\nbranching = 1\n",
		"bad level":         "[log]\nlevel = \"loud\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			fs := memoryfs.New()
			writeFile(t, fs, "/c.toml", content)
			_, err := config.LoadWithEnv(fs, "/c.toml", noEnv)
			require.Error(t, err)
		})
	}

	fs := memoryfs.New()
	writeFile(t, fs, "/c.toml", "[tree]\nbranching = 1\n")
	_, err := config.LoadWithEnv(fs, "/c.toml", noEnv)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestDuration_Text(t *testing.T) {
	var d config.Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	require.Equal(t, 90*time.Second, d.Duration)
	out, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1m30s", string(out))
}

func TestLoad_ResolvesPathOnFilesystem(t *testing.T) {
	fs := memoryfs.New()
	require.NoError(t, fs.MkdirAll("/etc/lvminor", 0o755))
	writeFile(t, fs, "/etc/lvminor/lvminor.toml", "[tree]\nbranching = 4\n")

	cfg, err := config.LoadWithEnv(fs, "/etc/lvminor/lvminor.toml", noEnv)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Tree.Branching)

	// A missing file next to an existing one falls back to the defaults.
	cfg, err = config.LoadWithEnv(fs, "/etc/lvminor/other.toml", noEnv)
	require.NoError(t, err)
	if diff := deep.Equal(config.Default(), cfg); diff != nil {
		t.Fatal(diff)
	}
}

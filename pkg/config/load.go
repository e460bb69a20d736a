package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/gridpaint/config.toml
//  2. ~/.config/gridpaint/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	if p := FindConfigFile(); p != "" {
		return LoadFromFile(p)
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// FindConfigFile returns the first existing path from the search order,
// or "" if none exists.
func FindConfigFile() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadFromFile reads configuration from a specific file path. Files ending
// in .yaml or .yml are decoded as YAML, everything else as TOML.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadFromReader(f)
	}
}

// LoadFromReader reads TOML configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode toml: %w", err)
	}
	return finish(cfg)
}

// LoadYAML reads YAML configuration from an io.Reader. An empty document
// yields the defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	return finish(cfg)
}

// finish registers preset files, expands a preset named in the file, then
// applies env overrides.
func finish(cfg *Config) (*Config, error) {
	if err := cfg.LoadPresets(); err != nil {
		return nil, err
	}
	if cfg.Grid.Preset != "" {
		if err := cfg.UsePreset(cfg.Grid.Preset); err != nil {
			return nil, err
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration: a 10x10 uniform grid
// with one-pixel strokes colored by the default theme.
func DefaultConfig() *Config {
	lc := layout.DefaultConfig()
	return &Config{
		Grid: GridConfig{
			Columns:       lc.Columns,
			Rows:          lc.Rows,
			BorderWidth:   lc.BorderWidth,
			GridLineWidth: lc.GridLineWidth,
			Uniform:       lc.UniformCell,
			CacheSize:     layout.DefaultCacheSize,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Render: RenderConfig{
			Width:  200,
			Height: 200,
			Scale:  1,
		},
		Log: LogConfig{
			Level: "info",
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: Duration{100 * time.Millisecond},
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
// Unparseable numbers are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRIDPAINT_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if n, ok := envInt("GRIDPAINT_COLUMNS"); ok {
		cfg.Grid.Columns = n
	}
	if n, ok := envInt("GRIDPAINT_ROWS"); ok {
		cfg.Grid.Rows = n
	}
	if v := os.Getenv("GRIDPAINT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "gridpaint", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "gridpaint", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

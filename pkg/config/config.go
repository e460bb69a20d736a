// Package config provides TOML and YAML file configuration for gridpaint.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
	"gitlab.com/tinyland/lab/gridpaint/pkg/preset"
	"gitlab.com/tinyland/lab/gridpaint/pkg/theme"
)

// Config is the top-level configuration file.
type Config struct {
	Grid   GridConfig   `toml:"grid" yaml:"grid"`
	Theme  ThemeConfig  `toml:"theme" yaml:"theme"`
	Render RenderConfig `toml:"render" yaml:"render"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Watch  WatchConfig  `toml:"watch" yaml:"watch"`
}

// GridConfig holds the layout parameters. Empty colors defer to the theme.
// A named preset replaces the geometry fields when the file is loaded;
// PresetFiles are registered first so the name may refer to one of them.
type GridConfig struct {
	Preset        string   `toml:"preset" yaml:"preset"`
	PresetFiles   []string `toml:"preset_files" yaml:"preset_files"`
	Columns       int      `toml:"columns" yaml:"columns"`
	Rows          int      `toml:"rows" yaml:"rows"`
	BorderWidth   int      `toml:"border_width" yaml:"border_width"`
	GridLineWidth int      `toml:"grid_line_width" yaml:"grid_line_width"`
	Uniform       bool     `toml:"uniform" yaml:"uniform"`
	BorderColor   string   `toml:"border_color" yaml:"border_color"`
	GridLineColor string   `toml:"grid_line_color" yaml:"grid_line_color"`
	CacheSize     int      `toml:"cache_size" yaml:"cache_size"`
}

// ThemeConfig selects a builtin theme, or loads one from a TOML file.
type ThemeConfig struct {
	Name string `toml:"name" yaml:"name"`
	File string `toml:"file" yaml:"file"`
}

// RenderConfig controls one-shot output.
type RenderConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	Scale  int `toml:"scale" yaml:"scale"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// WatchConfig controls config hot reload in the TUI.
type WatchConfig struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"`
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// UsePreset copies the geometry of the named preset into the grid section.
func (c *Config) UsePreset(name string) error {
	p, ok := preset.Get(name)
	if !ok {
		return fmt.Errorf("config: unknown preset %q (have %v)", name, preset.Names())
	}
	c.Grid.Preset = p.Name
	c.Grid.Columns = p.Columns
	c.Grid.Rows = p.Rows
	c.Grid.BorderWidth = p.BorderWidth
	c.Grid.GridLineWidth = p.GridLineWidth
	c.Grid.Uniform = p.Uniform
	return nil
}

// LoadPresets reads and registers every file in Grid.PresetFiles.
func (c *Config) LoadPresets() error {
	for _, path := range c.Grid.PresetFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: read preset: %w", err)
		}
		p, err := preset.LoadFromTOML(data)
		if err != nil {
			return fmt.Errorf("config: %s: %w", path, err)
		}
		if err := preset.Register(p); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// SlogLevel parses Log.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ResolveTheme returns the configured theme. A theme file is loaded and
// registered under its own name; otherwise Theme.Name is looked up among
// the registered themes.
func (c *Config) ResolveTheme() (theme.Theme, error) {
	if c.Theme.File == "" {
		return theme.Get(c.Theme.Name), nil
	}
	data, err := os.ReadFile(c.Theme.File)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("config: read theme: %w", err)
	}
	t, err := theme.LoadFromTOML(data)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("config: %s: %w", c.Theme.File, err)
	}
	if err := theme.Register(t); err != nil {
		return theme.Theme{}, fmt.Errorf("config: %w", err)
	}
	return t, nil
}

// LayoutConfig converts the grid section into a layout configuration.
// An explicit color wins over the theme color.
func (c *Config) LayoutConfig(th theme.Theme) layout.Config {
	lc := layout.Config{
		Columns:       c.Grid.Columns,
		Rows:          c.Grid.Rows,
		BorderWidth:   c.Grid.BorderWidth,
		GridLineWidth: c.Grid.GridLineWidth,
		UniformCell:   c.Grid.Uniform,
		BorderColor:   th.Border,
		GridLineColor: th.GridLine,
	}
	if c.Grid.BorderColor != "" {
		lc.BorderColor = c.Grid.BorderColor
	}
	if c.Grid.GridLineColor != "" {
		lc.GridLineColor = c.Grid.GridLineColor
	}
	return lc
}

// Apply pushes every grid field through the engine setters and returns
// the names of fields the engine rejected. Rejected fields keep their
// previous value.
func (c *Config) Apply(e *layout.Engine, th theme.Theme) []string {
	want := c.LayoutConfig(th)
	cur := e.Config()

	var rejected []string
	check := func(name string, changed bool, set func() bool) {
		if changed && !set() {
			rejected = append(rejected, name)
		}
	}
	check("grid.columns", want.Columns != cur.Columns, func() bool { return e.SetColumns(want.Columns) })
	check("grid.rows", want.Rows != cur.Rows, func() bool { return e.SetRows(want.Rows) })
	check("grid.border_width", want.BorderWidth != cur.BorderWidth, func() bool { return e.SetBorderWidth(want.BorderWidth) })
	check("grid.grid_line_width", want.GridLineWidth != cur.GridLineWidth, func() bool { return e.SetGridLineWidth(want.GridLineWidth) })
	check("grid.uniform", want.UniformCell != cur.UniformCell, func() bool { return e.SetUniformCell(want.UniformCell) })
	check("grid.border_color", want.BorderColor != cur.BorderColor, func() bool {
		return theme.IsHexColor(want.BorderColor) && e.SetBorderColor(want.BorderColor)
	})
	check("grid.grid_line_color", want.GridLineColor != cur.GridLineColor, func() bool {
		return theme.IsHexColor(want.GridLineColor) && e.SetGridLineColor(want.GridLineColor)
	})
	return rejected
}

// NewEngine builds an engine from the configuration. Invalid fields fall
// back to their defaults; their names are returned alongside the engine.
func (c *Config) NewEngine(th theme.Theme) (*layout.Engine, []string) {
	var opts []layout.Option
	if c.Grid.CacheSize > 0 {
		opts = append(opts, layout.WithCache(layout.NewCache(c.Grid.CacheSize)))
	}
	e := layout.NewEngine(layout.DefaultConfig(), opts...)
	return e, c.Apply(e, th)
}

// String summarizes the grid section for log lines.
func (g GridConfig) String() string {
	return fmt.Sprintf("%dx%d border=%d line=%d uniform=%t", g.Columns, g.Rows, g.BorderWidth, g.GridLineWidth, g.Uniform)
}

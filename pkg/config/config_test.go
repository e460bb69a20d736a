package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
	"gitlab.com/tinyland/lab/gridpaint/pkg/theme"
)

// clearEnv blanks every override so host settings cannot leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GRIDPAINT_THEME", "GRIDPAINT_COLUMNS", "GRIDPAINT_ROWS", "GRIDPAINT_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// --- Defaults and decoding ---

func TestDefaultConfigMatchesLayoutDefaults(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.LayoutConfig(theme.Get("default"))
	if diff := cmp.Diff(layout.DefaultConfig(), got); diff != "" {
		t.Errorf("layout config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Watch.Debounce.Duration != 100*time.Millisecond {
		t.Errorf("Debounce = %v, want 100ms", cfg.Watch.Debounce)
	}
}

func TestLoadFromReaderKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader(`
[grid]
columns = 4
border_color = "#ff0000"

[watch]
debounce = "250ms"
`))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Grid.Columns != 4 || cfg.Grid.Rows != 10 {
		t.Errorf("grid = %s, want 4x10", cfg.Grid)
	}
	if !cfg.Grid.Uniform {
		t.Error("Uniform lost its default")
	}
	if cfg.Grid.BorderColor != "#ff0000" {
		t.Errorf("BorderColor = %q", cfg.Grid.BorderColor)
	}
	if cfg.Watch.Debounce.Duration != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", cfg.Watch.Debounce)
	}
}

func TestLoadFromReaderSyntaxError(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[grid\ncolumns = "))
	if err == nil || !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("err = %v, want config-prefixed error", err)
	}
}

func TestLoadFromReaderBadDuration(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("[watch]\ndebounce = \"-1s\"\n")); err == nil {
		t.Error("negative duration accepted")
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, t.TempDir(), "grid.yaml", `
grid:
  columns: 3
  rows: 2
  uniform: false
  grid_line_width: 4
theme:
  name: nord
watch:
  debounce: 1s
`)
	cfg, err := LoadFromFile(p)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	want := GridConfig{Columns: 3, Rows: 2, BorderWidth: 1, GridLineWidth: 4, Uniform: false, CacheSize: layout.DefaultCacheSize}
	if diff := cmp.Diff(want, cfg.Grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("Theme.Name = %q", cfg.Theme.Name)
	}
	if cfg.Watch.Debounce.Duration != time.Second {
		t.Errorf("Debounce = %v, want 1s", cfg.Watch.Debounce)
	}
}

func TestLoadFromFileEmptyYAML(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, t.TempDir(), "empty.yml", "")
	cfg, err := LoadFromFile(p)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("empty yaml differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "gridpaint"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "gridpaint"), "config.toml", "[grid]\nrows = 7\n")

	if got := FindConfigFile(); got != filepath.Join(dir, "gridpaint", "config.toml") {
		t.Errorf("FindConfigFile = %q", got)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Rows != 7 {
		t.Errorf("Rows = %d, want 7", cfg.Grid.Rows)
	}
}

func TestLoadPresetReplacesGeometry(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader("[grid]\npreset = \"chess\"\ncolumns = 4\ngrid_line_color = \"#00ff00\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Grid.Columns != 8 || cfg.Grid.Rows != 8 || cfg.Grid.BorderWidth != 3 {
		t.Errorf("grid = %s, want chess geometry", cfg.Grid)
	}
	if cfg.Grid.GridLineColor != "#00ff00" {
		t.Errorf("preset dropped the explicit color: %q", cfg.Grid.GridLineColor)
	}
}

func TestLoadUnknownPreset(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[grid]\npreset = \"hexagon\"\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("err = %v, want unknown preset", err)
	}
}

func TestLoadPresetFileRegistersPreset(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	pf := writeFile(t, dir, "strip.toml", "name = \"strip\"\ncolumns = 12\nrows = 1\nborder_width = 2\ngrid_line_width = 1\nuniform = true\n")
	cfgPath := writeFile(t, dir, "config.toml", "[grid]\npreset = \"strip\"\npreset_files = ['"+pf+"']\n")

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Grid.Columns != 12 || cfg.Grid.Rows != 1 || cfg.Grid.BorderWidth != 2 {
		t.Errorf("grid = %s, want strip geometry", cfg.Grid)
	}
}

func TestLoadPresetFileInvalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	pf := writeFile(t, dir, "bad.toml", "name = \"bad\"\ncolumns = 0\nrows = 3\n")
	cfgPath := writeFile(t, dir, "config.toml", "[grid]\npreset_files = ['"+pf+"']\n")

	if _, err := LoadFromFile(cfgPath); err == nil {
		t.Error("expected an error for a preset with zero columns")
	}
}

// --- Env overrides ---

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRIDPAINT_THEME", "dracula")
	t.Setenv("GRIDPAINT_COLUMNS", " 6 ")
	t.Setenv("GRIDPAINT_ROWS", "many")
	t.Setenv("GRIDPAINT_LOG_LEVEL", "debug")

	cfg, err := LoadFromReader(strings.NewReader("[grid]\ncolumns = 2\nrows = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Name != "dracula" {
		t.Errorf("Theme.Name = %q, want dracula", cfg.Theme.Name)
	}
	if cfg.Grid.Columns != 6 {
		t.Errorf("Columns = %d, want 6 from env", cfg.Grid.Columns)
	}
	if cfg.Grid.Rows != 3 {
		t.Errorf("Rows = %d, unparseable env should be ignored", cfg.Grid.Rows)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
}

func TestSlogLevelFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "chatty"
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel = %v, want info", cfg.SlogLevel())
	}
}

// --- Theme and colors ---

func TestLayoutConfigExplicitColorWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.BorderColor = "#123456"
	th := theme.Get("gruvbox")

	lc := cfg.LayoutConfig(th)
	if lc.BorderColor != "#123456" {
		t.Errorf("BorderColor = %q, want explicit", lc.BorderColor)
	}
	if lc.GridLineColor != th.GridLine {
		t.Errorf("GridLineColor = %q, want theme %q", lc.GridLineColor, th.GridLine)
	}
}

func TestResolveThemeFromFile(t *testing.T) {
	th := theme.Get("nord")
	th.Name = "config-test-theme"
	data, err := theme.SaveToTOML(th)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Theme.File = writeFile(t, t.TempDir(), "theme.toml", string(data))

	got, err := cfg.ResolveTheme()
	if err != nil {
		t.Fatalf("ResolveTheme: %v", err)
	}
	if got != th {
		t.Errorf("ResolveTheme = %+v, want %+v", got, th)
	}
	if theme.Get("config-test-theme") != th {
		t.Error("theme file was not registered")
	}
}

func TestResolveThemeMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.File = filepath.Join(t.TempDir(), "missing.toml")
	if _, err := cfg.ResolveTheme(); err == nil {
		t.Error("expected error for missing theme file")
	}
}

// --- Apply ---

func TestApplyReportsRejectedFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Columns = 0
	cfg.Grid.Rows = 4
	cfg.Grid.BorderWidth = -1
	cfg.Grid.BorderColor = "red"

	th := theme.Get("default")
	e := layout.NewEngine(layout.DefaultConfig())
	rejected := cfg.Apply(e, th)

	want := []string{"grid.columns", "grid.border_width", "grid.border_color"}
	if diff := cmp.Diff(want, rejected); diff != "" {
		t.Errorf("rejected mismatch (-want +got):\n%s", diff)
	}
	got := e.Config()
	if got.Columns != 10 || got.Rows != 4 || got.BorderWidth != 1 || got.BorderColor != th.Border {
		t.Errorf("engine config = %+v", got)
	}
}

func TestApplyUnchangedIsClean(t *testing.T) {
	cfg := DefaultConfig()
	e, rejected := cfg.NewEngine(theme.Get("default"))
	if len(rejected) != 0 {
		t.Fatalf("rejected = %v", rejected)
	}
	e.Paint(nopSurface{})

	if rejected := cfg.Apply(e, theme.Get("default")); len(rejected) != 0 {
		t.Errorf("second Apply rejected %v", rejected)
	}
	if e.Dirty() != 0 {
		t.Errorf("Dirty = %b after no-op Apply", e.Dirty())
	}
}

func TestApplyThemeChangeOnlyDirtiesColors(t *testing.T) {
	cfg := DefaultConfig()
	e, _ := cfg.NewEngine(theme.Get("default"))
	e.Paint(nopSurface{})

	cfg.Apply(e, theme.Get("dracula"))
	if e.Dirty() != layout.DirtyBorder|layout.DirtyGridLines {
		t.Errorf("Dirty = %b, want border|gridlines", e.Dirty())
	}
}

type nopSurface struct{}

func (nopSurface) DrawLine(layout.Segment) {}

// --- Watch ---

func TestWatchReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	p := writeFile(t, dir, "config.toml", "[grid]\ncolumns = 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, p, 10*time.Millisecond, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// A broken write is logged and skipped; the next good one is delivered.
	writeFile(t, dir, "config.toml", "[grid\n")
	time.Sleep(50 * time.Millisecond)
	writeFile(t, dir, "config.toml", "[grid]\ncolumns = 5\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg, ok := <-ch:
			if !ok {
				t.Fatal("channel closed early")
			}
			if cfg.Grid.Columns == 5 {
				cancel()
				for range ch {
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "config.toml", "")

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, p, time.Millisecond, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	writeFile(t, dir, "other.toml", "[grid]\ncolumns = 3\n")

	select {
	case cfg := <-ch:
		t.Errorf("unexpected reload: %+v", cfg.Grid)
	case <-time.After(200 * time.Millisecond):
	}
	cancel()
	for range ch {
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "no", "such", "config.toml"), time.Millisecond, nil)
	if err == nil {
		t.Error("expected error watching a missing directory")
	}
}

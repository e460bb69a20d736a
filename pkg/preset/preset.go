// Package preset defines named grid shapes. Users select presets via
// config, CLI or the TUI, and may define custom shapes via TOML.
package preset

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
)

// GridPreset is a named grid geometry. Colors are not part of a preset;
// they stay with the theme or the explicit configuration.
type GridPreset struct {
	Name          string
	Description   string
	Columns       int
	Rows          int
	BorderWidth   int
	GridLineWidth int
	Uniform       bool
}

var (
	mu       sync.RWMutex
	registry map[string]GridPreset
)

func init() {
	registry = map[string]GridPreset{}
	for _, p := range prBuiltins() {
		registry[p.Name] = p
	}
}

// Get returns a named preset. ok is false for unknown names.
func Get(name string) (p GridPreset, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok = registry[strings.ToLower(name)]
	return p, ok
}

// Names returns all available preset names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Register adds p, replacing any preset with the same name.
func Register(p GridPreset) error {
	if err := prValidate(p); err != nil {
		return err
	}
	p.Name = strings.ToLower(p.Name)
	mu.Lock()
	registry[p.Name] = p
	mu.Unlock()
	return nil
}

// Apply returns base with the preset's geometry. Colors are kept.
func (p GridPreset) Apply(base layout.Config) layout.Config {
	base.Columns = p.Columns
	base.Rows = p.Rows
	base.BorderWidth = p.BorderWidth
	base.GridLineWidth = p.GridLineWidth
	base.UniformCell = p.Uniform
	return base
}

// Matches reports whether cfg has exactly the preset's geometry.
func (p GridPreset) Matches(cfg layout.Config) bool {
	return p.Apply(cfg) == cfg
}

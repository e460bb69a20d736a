// Package theme holds named color palettes for painting grids. A theme
// supplies the background a host clears to and the default border and
// grid line colors used when the configuration does not set them.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the palette for one grid rendering.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1a1b26"
	Foreground string // status text
	Dim        string // secondary text
	Accent     string // highlighted cell, key hints

	// Grid colors
	Border   string // outer border stroke
	GridLine string // internal grid lines
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme following name in Names order, wrapping around.
func Next(name string) Theme {
	names := Names()
	for i, n := range names {
		if n == strings.ToLower(name) {
			return Get(names[(i+1)%len(names)])
		}
	}
	return Get(names[0])
}

// Register adds a validated theme to the registry, replacing any theme
// with the same name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

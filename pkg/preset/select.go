package preset

import (
	"strings"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
)

// Next returns the preset following name in Names order, wrapping around.
// Unknown names start from the first preset.
func Next(name string) GridPreset {
	names := Names()
	next := names[0]
	for i, n := range names {
		if n == strings.ToLower(name) {
			next = names[(i+1)%len(names)]
			break
		}
	}
	p, _ := Get(next)
	return p
}

// Lookup returns the name of the preset whose geometry cfg has, or "".
func Lookup(cfg layout.Config) string {
	for _, name := range Names() {
		if p, _ := Get(name); p.Matches(cfg) {
			return name
		}
	}
	return ""
}

// Fits reports whether p laid out in viewport gives cells of at least
// minCell pixels on both axes.
func (p GridPreset) Fits(viewport layout.Size, minCell int) bool {
	g := layout.Compute(viewport, p.Apply(layout.DefaultConfig()))
	return g.CellWidth >= minCell && g.CellHeight >= minCell
}

// NextFitting returns the first preset after name, in Next order, that
// Fits viewport with cells of at least minCell pixels. When none fits it
// returns Next(name).
func NextFitting(name string, viewport layout.Size, minCell int) GridPreset {
	first := Next(name)
	p := first
	for range Names() {
		if p.Fits(viewport, minCell) {
			return p
		}
		p = Next(p.Name)
	}
	return first
}

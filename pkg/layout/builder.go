package layout

// ConfigBuilder provides a fluent API for constructing configurations.
// Build returns values as given; Compute and NewEngine replace invalid
// fields with their defaults.
type ConfigBuilder struct {
	cfg Config
}

// NewConfigBuilder creates a builder seeded with DefaultConfig.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: DefaultConfig()}
}

// Columns sets the column count.
func (b *ConfigBuilder) Columns(n int) *ConfigBuilder {
	b.cfg.Columns = n
	return b
}

// Rows sets the row count.
func (b *ConfigBuilder) Rows(n int) *ConfigBuilder {
	b.cfg.Rows = n
	return b
}

// Border sets the border width.
func (b *ConfigBuilder) Border(w int) *ConfigBuilder {
	b.cfg.BorderWidth = w
	return b
}

// GridLine sets the grid line width.
func (b *ConfigBuilder) GridLine(w int) *ConfigBuilder {
	b.cfg.GridLineWidth = w
	return b
}

// Uniform sets the uniform-cell flag.
func (b *ConfigBuilder) Uniform(on bool) *ConfigBuilder {
	b.cfg.UniformCell = on
	return b
}

// Colors sets the border and grid line colors.
func (b *ConfigBuilder) Colors(border, gridLine string) *ConfigBuilder {
	b.cfg.BorderColor = border
	b.cfg.GridLineColor = gridLine
	return b
}

// Build returns the configured snapshot.
func (b *ConfigBuilder) Build() Config {
	return b.cfg
}

// Compute lays out the configuration in a viewport of w by h pixels.
// Invalid fields fall back to their defaults.
func (b *ConfigBuilder) Compute(w, h int) *Grid {
	return Compute(Size{Width: w, Height: h}, b.cfg.sanitize())
}

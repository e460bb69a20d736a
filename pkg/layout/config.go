package layout

// Default configuration values.
const (
	DefaultColumns       = 10
	DefaultRows          = 10
	DefaultBorderWidth   = 1
	DefaultGridLineWidth = 1
	DefaultColor         = "#000000"
)

// Config is an immutable snapshot of the grid settings. Engines copy it on
// every mutation; callers never share a Config with a running layout pass.
type Config struct {
	Columns       int    `json:"columns"`
	Rows          int    `json:"rows"`
	BorderWidth   int    `json:"border_width"`
	GridLineWidth int    `json:"grid_line_width"`
	UniformCell   bool   `json:"uniform_cell"`
	BorderColor   string `json:"border_color"`
	GridLineColor string `json:"grid_line_color"`
}

// DefaultConfig returns a 10x10 uniform grid with one-pixel black border
// and grid lines.
func DefaultConfig() Config {
	return Config{
		Columns:       DefaultColumns,
		Rows:          DefaultRows,
		BorderWidth:   DefaultBorderWidth,
		GridLineWidth: DefaultGridLineWidth,
		UniformCell:   true,
		BorderColor:   DefaultColor,
		GridLineColor: DefaultColor,
	}
}

// Valid reports whether every numeric field satisfies its constraint.
func (c Config) Valid() bool {
	return validCount(c.Columns) && validCount(c.Rows) &&
		validWidth(c.BorderWidth) && validWidth(c.GridLineWidth)
}

// geometry strips the fields that do not influence layout math. Two
// configs with equal geometry produce identical Grids for any viewport.
func (c Config) geometry() Config {
	c.BorderColor = ""
	c.GridLineColor = ""
	return c
}

// sanitize replaces each invalid field with its default, leaving valid
// fields untouched.
func (c Config) sanitize() Config {
	def := DefaultConfig()
	if !validCount(c.Columns) {
		c.Columns = def.Columns
	}
	if !validCount(c.Rows) {
		c.Rows = def.Rows
	}
	if !validWidth(c.BorderWidth) {
		c.BorderWidth = def.BorderWidth
	}
	if !validWidth(c.GridLineWidth) {
		c.GridLineWidth = def.GridLineWidth
	}
	return c
}

func validCount(n int) bool { return n > 0 }

func validWidth(n int) bool { return n >= 0 }

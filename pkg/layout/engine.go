package layout

import (
	"sync"
	"sync/atomic"
)

// Surface is the drawing capability an Engine paints onto. Hosts realize
// each segment as a stroke of Pen.Width pixels centered on the segment.
type Surface interface {
	DrawLine(seg Segment)
}

// Clearer is implemented by surfaces that can erase previous strokes. The
// engine clears such surfaces before a full repaint.
type Clearer interface {
	Clear()
}

// Dirty records which parts of the drawing are out of date.
type Dirty uint8

const (
	// DirtyBorder means the border must be redrawn.
	DirtyBorder Dirty = 1 << iota
	// DirtyGridLines means the internal grid lines must be redrawn.
	DirtyGridLines
	// DirtyLayout means the geometry changed: the surface is cleared and
	// everything is redrawn.
	DirtyLayout

	// DirtyAll marks every part.
	DirtyAll = DirtyLayout | DirtyBorder | DirtyGridLines
)

// Option configures an Engine.
type Option func(*Engine)

// WithCache makes the engine share grids through c. Without it the engine
// keeps only the most recent grid.
func WithCache(c *Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// Engine owns a configuration and a viewport and hands out the grid for
// their current values. Setters validate their argument and silently
// ignore invalid or unchanged values. It is safe for concurrent use:
// mutations are serialized, and published grids are immutable.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	viewport Size
	dirty    Dirty
	cache    *Cache

	current atomic.Pointer[Grid]
}

// NewEngine creates an engine for cfg. Invalid numeric fields fall back to
// their defaults individually.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg.sanitize(),
		dirty: DirtyAll,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the current configuration snapshot.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Viewport returns the most recent viewport passed to Resize.
func (e *Engine) Viewport() Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

// Dirty returns the parts that the next Flush would redraw.
func (e *Engine) Dirty() Dirty {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Resize records a new viewport. It returns false if the size is unchanged.
func (e *Engine) Resize(s Size) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == e.viewport {
		return false
	}
	e.viewport = s
	e.dirty |= DirtyAll
	return true
}

// SetColumns sets the column count. n must be positive.
func (e *Engine) SetColumns(n int) bool {
	if !validCount(n) {
		return false
	}
	return e.mutate(DirtyAll, func(c *Config) bool {
		if c.Columns == n {
			return false
		}
		c.Columns = n
		return true
	})
}

// SetRows sets the row count. n must be positive.
func (e *Engine) SetRows(n int) bool {
	if !validCount(n) {
		return false
	}
	return e.mutate(DirtyAll, func(c *Config) bool {
		if c.Rows == n {
			return false
		}
		c.Rows = n
		return true
	})
}

// SetBorderWidth sets the outer border width. w must not be negative.
func (e *Engine) SetBorderWidth(w int) bool {
	if !validWidth(w) {
		return false
	}
	return e.mutate(DirtyAll, func(c *Config) bool {
		if c.BorderWidth == w {
			return false
		}
		c.BorderWidth = w
		return true
	})
}

// SetGridLineWidth sets the width of the internal grid lines. w must not
// be negative.
func (e *Engine) SetGridLineWidth(w int) bool {
	if !validWidth(w) {
		return false
	}
	return e.mutate(DirtyAll, func(c *Config) bool {
		if c.GridLineWidth == w {
			return false
		}
		c.GridLineWidth = w
		return true
	})
}

// SetUniformCell toggles square cells.
func (e *Engine) SetUniformCell(on bool) bool {
	return e.mutate(DirtyAll, func(c *Config) bool {
		if c.UniformCell == on {
			return false
		}
		c.UniformCell = on
		return true
	})
}

// SetBorderColor changes the border color. Only the border is redrawn.
func (e *Engine) SetBorderColor(color string) bool {
	return e.mutate(DirtyBorder, func(c *Config) bool {
		if c.BorderColor == color {
			return false
		}
		c.BorderColor = color
		return true
	})
}

// SetGridLineColor changes the grid line color. Only the grid lines are
// redrawn.
func (e *Engine) SetGridLineColor(color string) bool {
	return e.mutate(DirtyGridLines, func(c *Config) bool {
		if c.GridLineColor == color {
			return false
		}
		c.GridLineColor = color
		return true
	})
}

// Layout returns the grid for the current viewport and configuration,
// recomputing it only when one of them changed since the last call.
func (e *Engine) Layout() *Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layoutLocked()
}

// CellWidth returns the cell width of the last computed grid. Before the
// first layout pass it reports one pixel.
func (e *Engine) CellWidth() int {
	if g := e.current.Load(); g != nil {
		return g.CellWidth
	}
	return 1
}

// CellHeight returns the cell height of the last computed grid. Before the
// first layout pass it reports one pixel.
func (e *Engine) CellHeight() int {
	if g := e.current.Load(); g != nil {
		return g.CellHeight
	}
	return 1
}

// MinimumSize returns the minimum viewport for the current configuration.
func (e *Engine) MinimumSize() Size {
	return MinimumSize(e.Config())
}

// Paint draws the whole grid onto s: the border first, then the grid
// lines. It clears all dirty flags.
func (e *Engine) Paint(s Surface) {
	e.mu.Lock()
	g := e.layoutLocked()
	e.dirty = 0
	e.mu.Unlock()

	if c, ok := s.(Clearer); ok {
		c.Clear()
	}
	drawBorder(s, g)
	drawGridLines(s, g)
}

// Flush redraws only the parts marked dirty since the last Paint or Flush
// and returns them. A clean engine draws nothing.
func (e *Engine) Flush(s Surface) Dirty {
	e.mu.Lock()
	d := e.dirty
	if d == 0 {
		e.mu.Unlock()
		return 0
	}
	g := e.layoutLocked()
	e.dirty = 0
	e.mu.Unlock()

	if d&DirtyLayout != 0 {
		if c, ok := s.(Clearer); ok {
			c.Clear()
		}
	}
	if d&(DirtyLayout|DirtyBorder) != 0 {
		drawBorder(s, g)
	}
	if d&(DirtyLayout|DirtyGridLines) != 0 {
		drawGridLines(s, g)
	}
	return d
}

func (e *Engine) mutate(flag Dirty, fn func(*Config) bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.cfg
	if !fn(&next) {
		return false
	}
	e.cfg = next
	e.dirty |= flag
	return true
}

func (e *Engine) layoutLocked() *Grid {
	cur := e.current.Load()
	if cur != nil && cur.Viewport == e.viewport && cur.Config == e.cfg {
		return cur
	}

	var g *Grid
	switch {
	case cur != nil && cur.Viewport == e.viewport && cur.Config.geometry() == e.cfg.geometry():
		// Only colors changed: the cells are shared with the previous grid.
		g = cur.withConfig(e.cfg)
		if e.cache != nil {
			e.cache.Put(g)
		}
	case e.cache != nil:
		g = e.cache.Compute(e.viewport, e.cfg)
	default:
		g = Compute(e.viewport, e.cfg)
	}
	e.current.Store(g)
	return g
}

// withConfig returns a shallow copy of g carrying cfg. cfg must have the
// same geometry as g.Config.
func (g *Grid) withConfig(cfg Config) *Grid {
	cp := *g
	cp.Config = cfg
	return &cp
}

func drawBorder(s Surface, g *Grid) {
	for _, seg := range BorderSegments(g) {
		s.DrawLine(seg)
	}
}

func drawGridLines(s Surface, g *Grid) {
	for _, seg := range GridLineSegments(g) {
		s.DrawLine(seg)
	}
}

// Package layout computes pixel geometry for a bordered grid of uniform or
// near-uniform cells inside a rectangular viewport.
//
// Given a viewport size and a Config, Compute produces an immutable Grid:
// the cell size, centering margins and a row-major table of cell
// rectangles. BorderSegments and GridLineSegments derive the line segments
// a host draws to realize the border and the internal separators.
//
// All arithmetic is integer arithmetic with Go's truncating division.
// Viewports smaller than MinimumSize are not rejected: they yield zero or
// negative cell sizes and margins, exactly as the formulas produce them.
package layout

// Rect represents a rectangular area in pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the number of pixels in this rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty returns true if this rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the X coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains returns true if the point (px, py) lies within this rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Intersect returns the overlapping region of two rectangles.
// If there is no overlap, returns a zero-size Rect.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pen describes how a segment is stroked. Color is opaque to the layout
// math; hosts interpret it (hex "#RRGGBB" in this repository).
type Pen struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

// Segment is a straight line between two points, stroked with Pen. The
// points describe the centerline of the stroke.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
	Pen  Pen   `json:"pen"`
}

// Horizontal reports whether both endpoints share a Y coordinate.
func (s Segment) Horizontal() bool {
	return s.From.Y == s.To.Y
}

// Grid is one computed layout. It is never modified after Compute returns
// it; a new Grid replaces it on every recomputation.
type Grid struct {
	Viewport Size
	Config   Config

	CellWidth  int
	CellHeight int
	LeftMargin int
	TopMargin  int

	// Cells is indexed [row][column], top-to-bottom, left-to-right.
	Cells [][]Rect

	// Minimum is the smallest viewport at which every cell is at least
	// one pixel on each side.
	Minimum Size
}

// MinimumSize returns the smallest viewport in which every cell resolves to
// at least one pixel per side: the border on both sides, one pixel per
// cell and the grid lines between cells.
func MinimumSize(cfg Config) Size {
	return Size{
		Width:  cfg.BorderWidth*2 + cfg.Columns + (cfg.Columns-1)*cfg.GridLineWidth,
		Height: cfg.BorderWidth*2 + cfg.Rows + (cfg.Rows-1)*cfg.GridLineWidth,
	}
}

// Compute lays out cfg inside a viewport of the given size. cfg must be
// valid (see Config.Valid); Engine guarantees this for its callers.
func Compute(viewport Size, cfg Config) *Grid {
	cols, rows := cfg.Columns, cfg.Rows
	border, line := cfg.BorderWidth, cfg.GridLineWidth

	cellW := (viewport.Width - 2*border - line*(cols-1)) / cols
	cellH := (viewport.Height - 2*border - line*(rows-1)) / rows
	if cfg.UniformCell {
		cellW = min(cellW, cellH)
		cellH = cellW
	}

	g := &Grid{
		Viewport:   viewport,
		Config:     cfg,
		CellWidth:  cellW,
		CellHeight: cellH,
		LeftMargin: (viewport.Width - cellW*cols - 2*border - line*(cols-1)) / 2,
		TopMargin:  (viewport.Height - cellH*rows - 2*border - line*(rows-1)) / 2,
		Minimum:    MinimumSize(cfg),
	}

	g.Cells = make([][]Rect, rows)
	y := g.TopMargin + border
	for r := 0; r < rows; r++ {
		row := make([]Rect, cols)
		x := g.LeftMargin + border
		for c := 0; c < cols; c++ {
			row[c] = Rect{X: x, Y: y, Width: cellW, Height: cellH}
			x += cellW + line
		}
		g.Cells[r] = row
		y += cellH + line
	}
	return g
}

// Cell returns the rectangle at (row, col). Out-of-range indices return a
// zero Rect and false.
func (g *Grid) Cell(row, col int) (Rect, bool) {
	if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Cells[row]) {
		return Rect{}, false
	}
	return g.Cells[row][col], true
}

// CellAt returns the cell containing pixel (x, y). Points on the border,
// on a grid line or in a margin are not inside any cell. Degenerate grids
// contain no points.
func (g *Grid) CellAt(x, y int) (row, col int, ok bool) {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return 0, 0, false
	}
	col, ok = axisIndex(x-g.LeftMargin-g.Config.BorderWidth, g.CellWidth, g.Config.GridLineWidth, g.Config.Columns)
	if !ok {
		return 0, 0, false
	}
	row, ok = axisIndex(y-g.TopMargin-g.Config.BorderWidth, g.CellHeight, g.Config.GridLineWidth, g.Config.Rows)
	if !ok {
		return 0, 0, false
	}
	return row, col, true
}

// InnerSize returns the extent covered by the cells and the grid lines
// between them, excluding border and margins.
func (g *Grid) InnerSize() Size {
	c := g.Config
	return Size{
		Width:  g.CellWidth*c.Columns + c.GridLineWidth*(c.Columns-1),
		Height: g.CellHeight*c.Rows + c.GridLineWidth*(c.Rows-1),
	}
}

// axisIndex maps an offset from the first cell's edge onto a cell index
// along one axis.
func axisIndex(off, cell, line, count int) (int, bool) {
	if off < 0 {
		return 0, false
	}
	pitch := cell + line
	idx := off / pitch
	if idx >= count || off%pitch >= cell {
		return 0, false
	}
	return idx, true
}

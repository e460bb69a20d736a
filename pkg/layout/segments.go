package layout

// Border edge indices into the array returned by BorderSegments.
const (
	BorderTop = iota
	BorderLeft
	BorderBottom
	BorderRight
)

// BorderSegments returns the four border strokes in the order top, left,
// bottom, right. Each segment lies on the centerline of the border stroke
// and is extended by half the border width at both ends so adjoining edges
// overlap at the corners. Degenerate grids still yield four segments.
func BorderSegments(g *Grid) [4]Segment {
	c := g.Config
	fix := c.BorderWidth / 2
	inner := g.InnerSize()
	pen := Pen{Color: c.BorderColor, Width: c.BorderWidth}

	lt := Point{X: g.LeftMargin + fix, Y: g.TopMargin + fix}
	rt := Point{X: lt.X + inner.Width + c.BorderWidth, Y: lt.Y}
	lb := Point{X: lt.X, Y: g.TopMargin + c.BorderWidth + fix + inner.Height}
	rb := Point{X: rt.X, Y: lb.Y}

	var segs [4]Segment
	segs[BorderTop] = Segment{From: Point{lt.X - fix, lt.Y}, To: Point{rt.X + fix, rt.Y}, Pen: pen}
	segs[BorderLeft] = Segment{From: Point{lt.X, lt.Y - fix}, To: Point{lb.X, lb.Y + fix}, Pen: pen}
	segs[BorderBottom] = Segment{From: Point{lb.X - fix, lb.Y}, To: Point{rb.X + fix, rb.Y}, Pen: pen}
	segs[BorderRight] = Segment{From: Point{rt.X, rt.Y - fix}, To: Point{rb.X, rb.Y + fix}, Pen: pen}
	return segs
}

// GridLineSegments returns the internal separators: rows-1 horizontal
// segments top to bottom, then columns-1 vertical segments left to right.
// Horizontal lines are omitted when the cell height is not positive and
// vertical lines when the cell width is not positive.
func GridLineSegments(g *Grid) []Segment {
	c := g.Config
	fix := c.GridLineWidth / 2
	inner := g.InnerSize()
	pen := Pen{Color: c.GridLineColor, Width: c.GridLineWidth}

	segs := make([]Segment, 0, max(c.Rows-1, 0)+max(c.Columns-1, 0))

	if g.CellHeight > 0 {
		left := g.LeftMargin + c.BorderWidth
		right := left + inner.Width
		y := g.TopMargin + c.BorderWidth + g.CellHeight + fix
		for i := 1; i < c.Rows; i++ {
			segs = append(segs, Segment{From: Point{left, y}, To: Point{right, y}, Pen: pen})
			y += g.CellHeight + c.GridLineWidth
		}
	}

	if g.CellWidth > 0 {
		top := g.TopMargin + c.BorderWidth
		bottom := top + inner.Height
		x := g.LeftMargin + c.BorderWidth + g.CellWidth + fix
		for i := 1; i < c.Columns; i++ {
			segs = append(segs, Segment{From: Point{x, top}, To: Point{x, bottom}, Pen: pen})
			x += g.CellWidth + c.GridLineWidth
		}
	}

	return segs
}

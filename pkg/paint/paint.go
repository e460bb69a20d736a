// Package paint realizes layout segments as pixels. A Surface receives
// centerline segments from a layout.Engine and strokes them; Raster
// strokes into an RGBA image and Terminal into a half-block character
// canvas.
package paint

import (
	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
)

var (
	_ layout.Surface = (*Raster)(nil)
	_ layout.Clearer = (*Raster)(nil)
	_ layout.Surface = (*Terminal)(nil)
	_ layout.Clearer = (*Terminal)(nil)
)

// StrokeBounds returns the pixels covered by stroking seg with its pen.
// Across the segment the stroke is Pen.Width pixels wide, starting Width/2
// pixels before the centerline. Along the segment it covers both endpoints.
// Segments are axis-aligned: any segment that is not horizontal is treated
// as vertical at From.X. A zero-width pen covers nothing.
func StrokeBounds(seg layout.Segment) layout.Rect {
	w := seg.Pen.Width
	if w <= 0 {
		return layout.Rect{}
	}
	off := w / 2
	if seg.Horizontal() {
		x1, x2 := ordered(seg.From.X, seg.To.X)
		return layout.Rect{X: x1, Y: seg.From.Y - off, Width: x2 - x1 + 1, Height: w}
	}
	y1, y2 := ordered(seg.From.Y, seg.To.Y)
	return layout.Rect{X: seg.From.X - off, Y: y1, Width: w, Height: y2 - y1 + 1}
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

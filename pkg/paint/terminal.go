package paint

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
)

// upperHalf is drawn with the upper pixel as foreground and the lower pixel
// as background, packing two pixel rows into one terminal row.
const upperHalf = "▀"

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithProfile renders with the given color profile instead of the one
// detected for stdout.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(t *Terminal) {
		t.renderer.SetColorProfile(p)
	}
}

// Terminal is a pixel surface rendered as text. Each terminal cell shows
// two vertically stacked pixels, so a cols x rows terminal area is a
// cols x 2*rows pixel surface.
type Terminal struct {
	width, height int
	bg            string
	px            []string
	renderer      *lipgloss.Renderer
}

// PixelSize returns the pixel surface that fits in cols x rows terminal
// cells.
func PixelSize(cols, rows int) layout.Size {
	return layout.Size{Width: max(cols, 0), Height: 2 * max(rows, 0)}
}

// NewTerminal creates a surface filling cols x rows terminal cells,
// cleared to background (hex).
func NewTerminal(cols, rows int, background string, opts ...TerminalOption) *Terminal {
	size := PixelSize(cols, rows)
	t := &Terminal{
		width:    size.Width,
		height:   size.Height,
		bg:       background,
		px:       make([]string, size.Width*size.Height),
		renderer: lipgloss.NewRenderer(io.Discard),
	}
	t.renderer.SetColorProfile(lipgloss.ColorProfile())
	for _, opt := range opts {
		opt(t)
	}
	t.Clear()
	return t
}

// Size returns the surface dimensions in pixels.
func (t *Terminal) Size() layout.Size {
	return layout.Size{Width: t.width, Height: t.height}
}

// Clear fills the surface with the background color.
func (t *Terminal) Clear() {
	for i := range t.px {
		t.px[i] = t.bg
	}
}

// DrawLine strokes seg. Pixels outside the surface are clipped.
func (t *Terminal) DrawLine(seg layout.Segment) {
	t.Fill(StrokeBounds(seg), seg.Pen.Color)
}

// Fill paints rect with a hex color.
func (t *Terminal) Fill(rect layout.Rect, hex string) {
	r := rect.Intersect(layout.Rect{Width: t.width, Height: t.height})
	for y := r.Y; y < r.Bottom(); y++ {
		row := t.px[y*t.width : (y+1)*t.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = hex
		}
	}
}

// At returns the color of pixel (x, y), or "" outside the surface.
func (t *Terminal) At(x, y int) string {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return ""
	}
	return t.px[y*t.width+x]
}

// Render returns the surface as height/2 lines of width cells. Runs of
// cells with the same color pair share one styled span.
func (t *Terminal) Render() string {
	lines := make([]string, 0, t.height/2)
	for y := 0; y+1 < t.height; y += 2 {
		var b strings.Builder
		x := 0
		for x < t.width {
			top, bottom := t.At(x, y), t.At(x, y+1)
			run := 1
			for x+run < t.width && t.At(x+run, y) == top && t.At(x+run, y+1) == bottom {
				run++
			}
			style := t.renderer.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			b.WriteString(style.Render(strings.Repeat(upperHalf, run)))
			x += run
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

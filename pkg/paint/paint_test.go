package paint

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// thickEngine returns a 2x2 grid with two-pixel border and lines in a
// 20x20 viewport: cells at 2..8 and 11..17 on both axes.
func thickEngine() *layout.Engine {
	cfg := layout.NewConfigBuilder().
		Columns(2).
		Rows(2).
		Border(2).
		GridLine(2).
		Uniform(false).
		Colors("#ff0000", "#0000ff").
		Build()
	e := layout.NewEngine(cfg)
	e.Resize(layout.Size{Width: 20, Height: 20})
	return e
}

func seg(x1, y1, x2, y2, w int) layout.Segment {
	return layout.Segment{
		From: layout.Point{X: x1, Y: y1},
		To:   layout.Point{X: x2, Y: y2},
		Pen:  layout.Pen{Color: "#ff0000", Width: w},
	}
}

// --- StrokeBounds ---

func TestStrokeBounds(t *testing.T) {
	tests := []struct {
		name string
		seg  layout.Segment
		want layout.Rect
	}{
		{"horizontal thin", seg(4, 4, 194, 4, 1), layout.Rect{X: 4, Y: 4, Width: 191, Height: 1}},
		{"horizontal even", seg(0, 1, 20, 1, 2), layout.Rect{X: 0, Y: 0, Width: 21, Height: 2}},
		{"vertical odd", seg(10, 2, 10, 18, 3), layout.Rect{X: 9, Y: 2, Width: 3, Height: 17}},
		{"reversed", seg(10, 18, 10, 2, 1), layout.Rect{X: 10, Y: 2, Width: 1, Height: 17}},
		{"zero width", seg(0, 0, 10, 0, 0), layout.Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrokeBounds(tt.seg); got != tt.want {
				t.Errorf("StrokeBounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGridLineStrokesFillGaps(t *testing.T) {
	g := thickEngine().Layout()
	for _, s := range layout.GridLineSegments(g) {
		b := StrokeBounds(s)
		for _, row := range g.Cells {
			for _, cell := range row {
				if !b.Intersect(cell).Empty() {
					t.Errorf("grid stroke %+v overlaps cell %+v", b, cell)
				}
			}
		}
	}
}

// --- Raster ---

func TestRasterPaint(t *testing.T) {
	r := NewRaster(20, 20, "#ffffff")
	thickEngine().Paint(r)
	img := r.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top border", 5, 0, red},
		{"top border inner row", 5, 1, red},
		{"left border", 1, 10, red},
		{"bottom border", 5, 19, red},
		{"right border", 18, 5, red},
		{"cell interior", 5, 5, white},
		{"last cell interior", 15, 15, white},
		{"vertical grid line", 9, 5, blue},
		{"vertical grid line second column", 10, 5, blue},
		{"horizontal grid line", 5, 10, blue},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(4, 4, "#0000ff")
	r.Fill(layout.Rect{Width: 4, Height: 4}, "#ff0000")
	r.Clear()
	if got := r.Image().RGBAAt(2, 2); got != blue {
		t.Errorf("after Clear pixel = %v, want background", got)
	}
}

func TestRasterFillClipsAndIgnoresEmpty(t *testing.T) {
	r := NewRaster(4, 4, "#ffffff")
	r.Fill(layout.Rect{X: -2, Y: -2, Width: 3, Height: 3}, "#ff0000")
	r.Fill(layout.Rect{X: 2, Y: 2, Width: -1, Height: 5}, "#ff0000")
	if got := r.Image().RGBAAt(0, 0); got != red {
		t.Errorf("clipped fill missing: %v", got)
	}
	if got := r.Image().RGBAAt(1, 1); got != white {
		t.Errorf("fill leaked past its rect: %v", got)
	}
	if got := r.Image().RGBAAt(2, 2); got != white {
		t.Errorf("negative rect painted: %v", got)
	}
}

func TestRasterEncodeScales(t *testing.T) {
	r := NewRaster(20, 20, "#ffffff")
	thickEngine().Paint(r)

	var buf bytes.Buffer
	if err := r.Encode(&buf, 3); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
		t.Fatalf("bounds = %v, want 60x60", b)
	}
	if got := color.RGBAModel.Convert(img.At(16, 2)).(color.RGBA); got != red {
		t.Errorf("scaled top border = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(img.At(16, 16)).(color.RGBA); got != white {
		t.Errorf("scaled cell = %v, want white", got)
	}
}

func TestRasterSave(t *testing.T) {
	r := NewRaster(8, 8, "#ffffff")
	path := filepath.Join(t.TempDir(), "grid.png")
	if err := r.Save(path, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("saved file missing or empty: %v", err)
	}
}

// --- Terminal ---

func TestPixelSize(t *testing.T) {
	if got := PixelSize(80, 24); got != (layout.Size{Width: 80, Height: 48}) {
		t.Errorf("PixelSize(80,24) = %v", got)
	}
	if got := PixelSize(-1, -1); got != (layout.Size{}) {
		t.Errorf("PixelSize(-1,-1) = %v", got)
	}
}

func TestTerminalRenderDimensions(t *testing.T) {
	term := NewTerminal(10, 5, "#ffffff", WithProfile(termenv.Ascii))
	lines := strings.Split(term.Render(), "\n")
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
		if n := strings.Count(line, upperHalf); n != 10 {
			t.Errorf("line %d has %d half blocks, want 10", i, n)
		}
	}
}

func TestTerminalRenderColors(t *testing.T) {
	term := NewTerminal(4, 1, "#ffffff", WithProfile(termenv.TrueColor))
	term.Fill(layout.Rect{X: 0, Y: 0, Width: 1, Height: 1}, "#ff0000")

	out := term.Render()
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Errorf("missing red foreground in %q", out)
	}
	if !strings.Contains(out, "48;2;255;255;255") {
		t.Errorf("missing white background in %q", out)
	}
	if w := ansi.StringWidth(out); w != 4 {
		t.Errorf("width = %d, want 4", w)
	}
}

func TestTerminalPaintFromEngine(t *testing.T) {
	term := NewTerminal(20, 10, "#ffffff", WithProfile(termenv.Ascii))
	if term.Size() != (layout.Size{Width: 20, Height: 20}) {
		t.Fatalf("Size = %v", term.Size())
	}
	thickEngine().Paint(term)

	if got := term.At(5, 0); got != "#ff0000" {
		t.Errorf("top border = %q, want #ff0000", got)
	}
	if got := term.At(9, 5); got != "#0000ff" {
		t.Errorf("grid line = %q, want #0000ff", got)
	}
	if got := term.At(5, 5); got != "#ffffff" {
		t.Errorf("cell = %q, want background", got)
	}
	if got := term.At(20, 0); got != "" {
		t.Errorf("out of range = %q, want empty", got)
	}
}

func TestTerminalClearAfterFlush(t *testing.T) {
	term := NewTerminal(20, 10, "#ffffff", WithProfile(termenv.Ascii))
	e := thickEngine()
	e.Paint(term)

	e.SetColumns(1)
	e.Flush(term)
	// The old vertical grid line is gone after the relayout cleared the canvas.
	if got := term.At(9, 5); got != "#ffffff" {
		t.Errorf("stale grid line pixel = %q, want background", got)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
	"gitlab.com/tinyland/lab/gridpaint/pkg/paint"
	"gitlab.com/tinyland/lab/gridpaint/pkg/terminal"
	"gitlab.com/tinyland/lab/gridpaint/pkg/theme"
)

// gridDump is the -json output: the computed geometry and the strokes a
// host would draw for it.
type gridDump struct {
	Viewport   layout.Size      `json:"viewport"`
	Minimum    layout.Size      `json:"minimum"`
	Config     layout.Config    `json:"config"`
	CellWidth  int              `json:"cell_width"`
	CellHeight int              `json:"cell_height"`
	LeftMargin int              `json:"left_margin"`
	TopMargin  int              `json:"top_margin"`
	Cells      [][]layout.Rect  `json:"cells"`
	Border     []layout.Segment `json:"border"`
	GridLines  []layout.Segment `json:"grid_lines"`
}

func writeJSON(w io.Writer, g *layout.Grid) error {
	border := layout.BorderSegments(g)
	dump := gridDump{
		Viewport:   g.Viewport,
		Minimum:    g.Minimum,
		Config:     g.Config,
		CellWidth:  g.CellWidth,
		CellHeight: g.CellHeight,
		LeftMargin: g.LeftMargin,
		TopMargin:  g.TopMargin,
		Cells:      g.Cells,
		Border:     border[:],
		GridLines:  layout.GridLineSegments(g),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}
	return nil
}

// renderFrame paints engine into a canvas filling size, less one row so
// the shell prompt does not scroll the top border away.
func renderFrame(engine *layout.Engine, th theme.Theme, size terminal.Size, profile termenv.Profile) string {
	area := size.Reserve(1)
	canvas := paint.NewTerminal(area.Cols, area.Rows, th.Background, paint.WithProfile(profile))
	engine.Resize(canvas.Size())
	engine.Paint(canvas)
	return canvas.Render()
}

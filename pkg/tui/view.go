package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"gitlab.com/tinyland/lab/gridpaint/pkg/paint"
)

// View paints the grid into a fresh canvas and appends the status bar.
func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}

	canvas := paint.NewTerminal(m.width, m.canvasRows(), m.theme.Background, paint.WithProfile(m.profile))
	m.engine.Paint(canvas)
	if m.hovering {
		if cell, ok := m.engine.Layout().Cell(m.hoverRow, m.hoverCol); ok {
			canvas.Fill(cell, m.theme.Accent)
		}
	}

	var b strings.Builder
	if m.canvasRows() > 0 {
		b.WriteString(canvas.Render())
		b.WriteByte('\n')
	}
	if m.showHelp {
		b.WriteString(tuiFitLine(m.help.ShortHelpView(m.keys.ShortHelp()), m.width))
	} else {
		b.WriteString(m.renderStatus())
	}
	return b.String()
}

// renderStatus draws the one-line status bar: viewport, cell size, minimum
// size, theme and the hovered cell.
func (m Model) renderStatus() string {
	g := m.engine.Layout()
	minSize := g.Minimum
	text := fmt.Sprintf(" %dx%d px  cell %dx%d  min %dx%d  %s",
		g.Viewport.Width, g.Viewport.Height,
		g.CellWidth, g.CellHeight,
		minSize.Width, minSize.Height,
		m.theme.Name)
	if g.Viewport.Width < minSize.Width || g.Viewport.Height < minSize.Height {
		text += "  too small"
	}
	if m.hovering {
		text += fmt.Sprintf("  [%d,%d]", m.hoverRow, m.hoverCol)
	}

	style := m.renderer.NewStyle().
		Foreground(lipgloss.Color(m.theme.Foreground)).
		Background(lipgloss.Color(m.theme.Dim))
	return style.Render(tuiFitLine(text, m.width))
}

// tuiFitLine truncates or pads s to exactly width visible cells.
func tuiFitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += runewidth.FillRight("", pad)
	}
	return s
}

// Package tui hosts a layout engine in a full-screen bubbletea program.
// The grid is painted into a half-block canvas that fills the terminal
// above a one-line status bar; keys adjust the grid, the mouse hit-tests
// cells, and watcher reloads re-apply the configuration.
package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/gridpaint/pkg/config"
	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
	"gitlab.com/tinyland/lab/gridpaint/pkg/paint"
	"gitlab.com/tinyland/lab/gridpaint/pkg/preset"
	"gitlab.com/tinyland/lab/gridpaint/pkg/theme"
)

// statusLines is the number of terminal rows reserved below the canvas.
const statusLines = 1

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for reload and rejection messages.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithProfile renders the canvas and status bar with p.
func WithProfile(p termenv.Profile) Option {
	return func(m *Model) { m.profile = p }
}

// WithReloads subscribes the model to configs sent on ch.
func WithReloads(ch <-chan *config.Config) Option {
	return func(m *Model) { m.reloads = ch }
}

// Model is the bubbletea model for the interactive grid viewer.
type Model struct {
	engine   *layout.Engine
	theme    theme.Theme
	logger   *slog.Logger
	profile  termenv.Profile
	renderer *lipgloss.Renderer
	reloads  <-chan *config.Config

	keys     keyMap
	help     help.Model
	showHelp bool

	width, height int
	ready         bool

	hoverRow, hoverCol int
	hovering           bool
}

// New creates a model driving engine with the given theme.
func New(engine *layout.Engine, th theme.Theme, opts ...Option) Model {
	m := Model{
		engine:  engine,
		theme:   th,
		logger:  slog.Default(),
		profile: termenv.TrueColor,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.renderer = lipgloss.NewRenderer(io.Discard)
	m.renderer.SetColorProfile(m.profile)
	return m
}

// Init starts listening for config reloads, if any.
func (m Model) Init() tea.Cmd {
	return WaitForReload(m.reloads)
}

// Update handles resize, key, mouse and reload messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.engine.Resize(paint.PixelSize(m.width, m.canvasRows()))
		m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height, "viewport", m.engine.Viewport())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.hoverRow, m.hoverCol, m.hovering = m.hitTest(msg.X, msg.Y)
		return m, nil

	case ConfigReloadMsg:
		m.applyConfig(msg.Config)
		return m, WaitForReload(m.reloads)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.engine.Config()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.ColumnsUp):
		m.engine.SetColumns(cfg.Columns + 1)
	case key.Matches(msg, m.keys.ColumnsDown):
		m.engine.SetColumns(cfg.Columns - 1)
	case key.Matches(msg, m.keys.RowsUp):
		m.engine.SetRows(cfg.Rows + 1)
	case key.Matches(msg, m.keys.RowsDown):
		m.engine.SetRows(cfg.Rows - 1)
	case key.Matches(msg, m.keys.BorderUp):
		m.engine.SetBorderWidth(cfg.BorderWidth + 1)
	case key.Matches(msg, m.keys.BorderDown):
		m.engine.SetBorderWidth(cfg.BorderWidth - 1)
	case key.Matches(msg, m.keys.LineUp):
		m.engine.SetGridLineWidth(cfg.GridLineWidth + 1)
	case key.Matches(msg, m.keys.LineDown):
		m.engine.SetGridLineWidth(cfg.GridLineWidth - 1)
	case key.Matches(msg, m.keys.Uniform):
		m.engine.SetUniformCell(!cfg.UniformCell)
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(theme.Next(m.theme.Name))
	case key.Matches(msg, m.keys.Preset):
		m.setPreset(preset.NextFitting(preset.Lookup(cfg), m.engine.Viewport(), 1))
	}
	return m, nil
}

// setTheme switches palettes and recolors the strokes.
func (m *Model) setTheme(th theme.Theme) {
	m.theme = th
	m.engine.SetBorderColor(th.Border)
	m.engine.SetGridLineColor(th.GridLine)
	m.logger.Debug("theme", "name", th.Name)
}

// setPreset pushes the preset's geometry through the engine setters.
func (m *Model) setPreset(p preset.GridPreset) {
	m.engine.SetColumns(p.Columns)
	m.engine.SetRows(p.Rows)
	m.engine.SetBorderWidth(p.BorderWidth)
	m.engine.SetGridLineWidth(p.GridLineWidth)
	m.engine.SetUniformCell(p.Uniform)
	m.logger.Debug("preset", "name", p.Name)
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	th, err := cfg.ResolveTheme()
	if err != nil {
		m.logger.Warn("config reload: theme", "error", err)
		th = m.theme
	}
	m.theme = th
	if rejected := cfg.Apply(m.engine, th); len(rejected) > 0 {
		m.logger.Warn("config reload: rejected fields", "fields", rejected)
	}
	m.logger.Info("config reloaded", "grid", cfg.Grid.String(), "theme", th.Name)
}

// hitTest maps a terminal cell to the grid cell under it. Each terminal
// row holds two pixel rows; the upper one is tried first.
func (m Model) hitTest(x, y int) (row, col int, ok bool) {
	if y >= m.canvasRows() {
		return 0, 0, false
	}
	g := m.engine.Layout()
	if row, col, ok = g.CellAt(x, 2*y); ok {
		return row, col, true
	}
	return g.CellAt(x, 2*y+1)
}

func (m Model) canvasRows() int {
	return max(m.height-statusLines, 0)
}

// Engine returns the engine the model drives.
func (m Model) Engine() *layout.Engine { return m.engine }

// Theme returns the active theme.
func (m Model) Theme() theme.Theme { return m.theme }

// Width returns the terminal width in columns.
func (m Model) Width() int { return m.width }

// Height returns the terminal height in rows.
func (m Model) Height() int { return m.height }

// Ready reports whether a WindowSizeMsg has been received.
func (m Model) Ready() bool { return m.ready }

// ShowHelp reports whether the key help replaces the status bar.
func (m Model) ShowHelp() bool { return m.showHelp }

// Hover returns the grid cell under the mouse, if any.
func (m Model) Hover() (row, col int, ok bool) {
	return m.hoverRow, m.hoverCol, m.hovering
}

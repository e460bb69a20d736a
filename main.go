// gridpaint computes and paints the geometry of an N×M grid display: an
// outer border, equally sized cells, and the grid lines between them.
//
// It renders a grid once as a terminal frame, a PNG or a JSON dump of the
// computed geometry, or runs an interactive Bubbletea viewer that tracks
// the terminal size and reloads its configuration file on change.
//
// Usage:
//
//	gridpaint [flags]
//
// Flags:
//
//	-config string   Path to configuration file (default: ~/.config/gridpaint/config.toml)
//	-columns int     Number of columns
//	-rows int        Number of rows
//	-border int      Border width in pixels
//	-line int        Grid line width in pixels
//	-uniform         Force square cells (default true)
//	-preset string   Named grid shape (calendar, chess, default, go, sudoku, tictactoe)
//	-theme string    Color theme (default, dracula, gruvbox, nord, tokyonight)
//	-width int       Viewport width in pixels for -png and -json
//	-height int      Viewport height in pixels for -png and -json
//	-png string      Write the grid to a PNG file
//	-scale int       Upscale factor for -png
//	-json            Print the computed grid as JSON
//	-tui             Launch interactive Bubbletea viewer
//	-verbose         Enable verbose logging
//	-version         Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/gridpaint/pkg/config"
	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
	"gitlab.com/tinyland/lab/gridpaint/pkg/paint"
	"gitlab.com/tinyland/lab/gridpaint/pkg/terminal"
	"gitlab.com/tinyland/lab/gridpaint/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		columns     = flag.Int("columns", layout.DefaultColumns, "Number of columns")
		rows        = flag.Int("rows", layout.DefaultRows, "Number of rows")
		border      = flag.Int("border", layout.DefaultBorderWidth, "Border width in pixels")
		line        = flag.Int("line", layout.DefaultGridLineWidth, "Grid line width in pixels")
		uniform     = flag.Bool("uniform", true, "Force square cells")
		presetName  = flag.String("preset", "", "Named grid shape")
		themeName   = flag.String("theme", "", "Color theme name")
		width       = flag.Int("width", 0, "Viewport width in pixels for -png and -json (0 = config)")
		height      = flag.Int("height", 0, "Viewport height in pixels for -png and -json (0 = config)")
		pngPath     = flag.String("png", "", "Write the grid to a PNG file")
		scale       = flag.Int("scale", 0, "Upscale factor for -png (0 = config)")
		dumpJSON    = flag.Bool("json", false, "Print the computed grid as JSON")
		runTUI      = flag.Bool("tui", false, "Launch interactive Bubbletea viewer")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("gridpaint %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	cfgFile := *configPath
	if cfgFile == "" {
		cfgFile = config.FindConfigFile()
	}
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over the file; a preset is applied before the
	// individual geometry flags so they can adjust it.
	if *presetName != "" {
		if err := cfg.UsePreset(*presetName); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "columns":
			cfg.Grid.Columns = *columns
		case "rows":
			cfg.Grid.Rows = *rows
		case "border":
			cfg.Grid.BorderWidth = *border
		case "line":
			cfg.Grid.GridLineWidth = *line
		case "uniform":
			cfg.Grid.Uniform = *uniform
		case "theme":
			cfg.Theme.Name = *themeName
			cfg.Theme.File = ""
		case "width":
			cfg.Render.Width = *width
		case "height":
			cfg.Render.Height = *height
		case "scale":
			cfg.Render.Scale = *scale
		}
	})

	logLevel := cfg.SlogLevel()
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	th, err := cfg.ResolveTheme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
		os.Exit(1)
	}

	engine, rejected := cfg.NewEngine(th)
	if len(rejected) > 0 {
		logger.Warn("invalid grid settings ignored", "fields", rejected)
	}
	profile := terminal.ColorProfile()
	logger.Debug("grid configured",
		"grid", cfg.Grid.String(),
		"theme", th.Name,
		"profile", terminal.ProfileName(profile),
		"config", cfgFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Determine operation mode
	switch {
	case *runTUI:
		if !terminal.IsTTY(os.Stdout.Fd()) {
			fmt.Fprintln(os.Stderr, "-tui requires a terminal on stdout")
			os.Exit(1)
		}
		opts := []tui.Option{
			tui.WithLogger(logger),
			tui.WithProfile(profile),
		}
		if cfgFile != "" && cfg.Watch.Enabled {
			reloads, err := config.Watch(ctx, cfgFile, cfg.Watch.Debounce.Duration, logger)
			if err != nil {
				logger.Warn("config watch disabled", "error", err)
			} else {
				opts = append(opts, tui.WithReloads(reloads))
			}
		}
		p := tea.NewProgram(tui.New(engine, th, opts...),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
		)
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			logger.Error("TUI error", "error", err)
			os.Exit(1)
		}

	case *pngPath != "":
		engine.Resize(layout.Size{Width: cfg.Render.Width, Height: cfg.Render.Height})
		raster := paint.NewRaster(cfg.Render.Width, cfg.Render.Height, th.Background)
		engine.Paint(raster)
		if err := raster.Save(*pngPath, cfg.Render.Scale); err != nil {
			logger.Error("png export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote png", "path", *pngPath, "viewport", engine.Viewport(), "scale", cfg.Render.Scale)

	case *dumpJSON:
		engine.Resize(layout.Size{Width: cfg.Render.Width, Height: cfg.Render.Height})
		if err := writeJSON(os.Stdout, engine.Layout()); err != nil {
			logger.Error("json export failed", "error", err)
			os.Exit(1)
		}

	default:
		// Default: print a single frame sized to the terminal.
		fmt.Println(renderFrame(engine, th, terminal.GetSize(), profile))
	}
}

// loadConfig reads path, or the defaults when no file was found.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromFile(path)
}

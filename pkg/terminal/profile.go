package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// trueColorPrograms are TERM_PROGRAM values known to render 24-bit color.
var trueColorPrograms = map[string]bool{
	"ghostty":   true,
	"kitty":     true,
	"wezterm":   true,
	"iterm.app": true,
	"vscode":    true,
	"alacritty": true,
}

// ColorProfile picks the color profile for terminal canvases from the
// environment. No I/O is performed, so the result is stable when output
// is piped. Signals are checked in order:
//
//  1. NO_COLOR set, or TERM=dumb -> Ascii
//  2. COLORTERM=truecolor/24bit, a known TERM_PROGRAM, or VTE -> TrueColor
//  3. TERM containing 256color -> ANSI256
//  4. any other TERM -> ANSI
//  5. no TERM -> Ascii
func ColorProfile() termenv.Profile {
	term := os.Getenv("TERM")
	if os.Getenv("NO_COLOR") != "" || term == "dumb" {
		return termenv.Ascii
	}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	}
	if trueColorPrograms[strings.ToLower(os.Getenv("TERM_PROGRAM"))] {
		return termenv.TrueColor
	}
	if term == "xterm-ghostty" || term == "xterm-kitty" || os.Getenv("VTE_VERSION") != "" {
		return termenv.TrueColor
	}

	switch {
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	case term != "":
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// ProfileName returns a short name for p, used in log lines.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

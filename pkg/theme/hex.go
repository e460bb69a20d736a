package theme

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses a hex color string into r, g, b components.
// Accepts "#RRGGBB" or "RRGGBB" formats.
func ParseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// RGBA converts a hex color to an opaque color.RGBA. Malformed input
// yields fallback.
func RGBA(hex string, fallback color.RGBA) color.RGBA {
	r, g, b, ok := ParseHex(hex)
	if !ok {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

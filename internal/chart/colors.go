package chart

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// namedColors covers the CSS color keywords series are usually configured
// with.
var namedColors = map[string]string{
	"black":   "000000",
	"white":   "ffffff",
	"red":     "ff0000",
	"green":   "008000",
	"lime":    "00ff00",
	"blue":    "0000ff",
	"navy":    "000080",
	"magenta": "ff00ff",
	"fuchsia": "ff00ff",
	"purple":  "800080",
	"orange":  "ffa500",
	"gold":    "ffd700",
	"yellow":  "ffff00",
	"teal":    "008080",
	"cyan":    "00ffff",
	"aqua":    "00ffff",
	"gray":    "808080",
	"grey":    "808080",
	"brown":   "a52a2a",
	"pink":    "ffc0cb",
}

// colorHex resolves a CSS keyword or #hex color to bare hex digits. Anything
// unrecognised becomes magenta.
func colorHex(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if hex, ok := namedColors[c]; ok {
		return hex
	}
	if h := strings.TrimPrefix(c, "#"); h != c && isHex(h) && (len(h) == 3 || len(h) == 6) {
		return h
	}
	return namedColors[DefaultColor]
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

func drawingColor(c string) drawing.Color {
	return drawing.ColorFromHex(colorHex(c))
}

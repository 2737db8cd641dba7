package styles

import (
	"strconv"
	"strings"
)

// Palette is the fill cycle for top-level items without an explicit color.
var Palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// PaletteColor returns the i-th palette entry, wrapping around.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// ParseHex parses "#rgb" or "#rrggbb" into its components.
func ParseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// ValidColor reports whether s is a hex color the renderers understand.
func ValidColor(s string) bool {
	_, _, _, ok := ParseHex(s)
	return ok
}

// TextColor returns near-black or white, whichever reads better on fill.
func TextColor(fill string) string {
	r, g, b, ok := ParseHex(fill)
	if !ok {
		return "#000000"
	}
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if lum > 150 {
		return "#1a1a1a"
	}
	return "#ffffff"
}

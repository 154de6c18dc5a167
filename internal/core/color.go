package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
type Color uint8

// Predefined colors. Hosts map them to ANSI 256-color codes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = []string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_red", "bright_green", "bright_yellow", "bright_blue",
	"bright_magenta", "bright_cyan", "bright_white", "orange", "gray",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", c)
}

// ParseColor resolves a theme color name. Matching ignores case, and
// "purple" and "grey" are accepted as aliases.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "none":
		return ColorDefault, nil
	case "purple":
		return ColorMagenta, nil
	case "grey":
		return ColorGray, nil
	}
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}
